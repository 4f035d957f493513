// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/amirphl/signage-admin/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// StoreRepository defines read operations for stores
type StoreRepository interface {
	// ByID loads the store with its company so the concept can be resolved
	ByID(ctx context.Context, id uint) (*models.Store, error)
	ListIDs(ctx context.Context) ([]uint, error)
}

// PlacementGroupRepository defines read operations for placement groups
type PlacementGroupRepository interface {
	ByID(ctx context.Context, id uint) (*models.PlacementGroup, error)
}

// DaypartDefinitionRepository defines operations for daypart definitions
type DaypartDefinitionRepository interface {
	ByID(ctx context.Context, id uint) (*models.DaypartDefinition, error)
	ByIDs(ctx context.Context, ids []uint) ([]*models.DaypartDefinition, error)
	// EffectiveForStore returns the definitions that apply to the store, one per daypart name,
	// the most specific scope winning, ordered by sort_order then id
	EffectiveForStore(ctx context.Context, store *models.Store) ([]*models.DaypartDefinition, error)
}

// DaypartScheduleRepository defines operations for store-level default schedules
type DaypartScheduleRepository interface {
	Repository[models.DaypartSchedule, models.DaypartScheduleFilter]
}

// PlacementOverrideRepository defines operations for placement-level schedule overrides
type PlacementOverrideRepository interface {
	Repository[models.PlacementDaypartOverride, models.PlacementOverrideFilter]
	Update(ctx context.Context, override *models.PlacementDaypartOverride) error
	Delete(ctx context.Context, placementGroupID, id uint) (int64, error)
	// ReplaceForPlacement atomically swaps every override of a placement group for the given set
	ReplaceForPlacement(ctx context.Context, placementGroupID uint, overrides []*models.PlacementDaypartOverride) error
}

// ScheduleAuditLogRepository records placement schedule writes
type ScheduleAuditLogRepository interface {
	Save(ctx context.Context, log *models.ScheduleAuditLog) error
	ListByPlacementGroup(ctx context.Context, placementGroupID uint, limit, offset int) ([]*models.ScheduleAuditLog, error)
}
