package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirphl/signage-admin/models"
	"gorm.io/gorm"
)

// PlacementOverrideRepositoryImpl implements PlacementOverrideRepository interface
type PlacementOverrideRepositoryImpl struct {
	*BaseRepository[models.PlacementDaypartOverride, models.PlacementOverrideFilter]
}

// NewPlacementOverrideRepository creates a new placement override repository
func NewPlacementOverrideRepository(db *gorm.DB) PlacementOverrideRepository {
	return &PlacementOverrideRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PlacementDaypartOverride, models.PlacementOverrideFilter](db),
	}
}

// ByID retrieves a placement override by its ID
func (r *PlacementOverrideRepositoryImpl) ByID(ctx context.Context, id uint) (*models.PlacementDaypartOverride, error) {
	db := r.getDB(ctx)

	var row models.PlacementDaypartOverride
	if err := db.Last(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *PlacementOverrideRepositoryImpl) applyFilter(query *gorm.DB, filter models.PlacementOverrideFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.PlacementGroupID != nil {
		query = query.Where("placement_group_id = ?", *filter.PlacementGroupID)
	}
	if filter.DaypartDefinitionID != nil {
		query = query.Where("daypart_definition_id = ?", *filter.DaypartDefinitionID)
	}
	if filter.ScheduleType != nil {
		query = query.Where("schedule_type = ?", *filter.ScheduleType)
	}
	return query
}

// ByFilter retrieves placement overrides based on filter criteria
func (r *PlacementOverrideRepositoryImpl) ByFilter(ctx context.Context, filter models.PlacementOverrideFilter, orderBy string, limit, offset int) ([]*models.PlacementDaypartOverride, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PlacementDaypartOverride{}), filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.PlacementDaypartOverride
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of placement overrides matching the filter
func (r *PlacementOverrideRepositoryImpl) Count(ctx context.Context, filter models.PlacementOverrideFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PlacementDaypartOverride{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any placement override matching the filter exists
func (r *PlacementOverrideRepositoryImpl) Exists(ctx context.Context, filter models.PlacementOverrideFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Update writes every column of an existing override, scoped to its placement group
func (r *PlacementOverrideRepositoryImpl) Update(ctx context.Context, override *models.PlacementDaypartOverride) (err error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}
	defer func() { err = finish(db, shouldCommit, err) }()

	res := db.Model(&models.PlacementDaypartOverride{}).
		Where("id = ? AND placement_group_id = ?", override.ID, override.PlacementGroupID).
		Select("*").
		Omit("id", "uuid", "placement_group_id", "created_at").
		Updates(override)
	if res.Error != nil {
		err = fmt.Errorf("failed to update placement override %d: %w", override.ID, res.Error)
		return err
	}
	if res.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
		return err
	}
	return nil
}

// Delete removes one override of a placement group and reports the affected row count
func (r *PlacementOverrideRepositoryImpl) Delete(ctx context.Context, placementGroupID, id uint) (affected int64, err error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { err = finish(db, shouldCommit, err) }()

	res := db.Where("id = ? AND placement_group_id = ?", id, placementGroupID).Delete(&models.PlacementDaypartOverride{})
	if res.Error != nil {
		err = fmt.Errorf("failed to delete placement override %d: %w", id, res.Error)
		return 0, err
	}
	return res.RowsAffected, nil
}

// ReplaceForPlacement deletes every override of the placement group and inserts the given set
// inside one transaction; on any failure nothing changes
func (r *PlacementOverrideRepositoryImpl) ReplaceForPlacement(ctx context.Context, placementGroupID uint, overrides []*models.PlacementDaypartOverride) error {
	return WithTransaction(ctx, r.DB, func(txCtx context.Context) error {
		db := r.getDB(txCtx)

		if err := db.Where("placement_group_id = ?", placementGroupID).Delete(&models.PlacementDaypartOverride{}).Error; err != nil {
			return fmt.Errorf("failed to delete placement overrides: %w", err)
		}

		for _, o := range overrides {
			o.PlacementGroupID = placementGroupID
		}
		if err := r.SaveBatch(txCtx, overrides); err != nil {
			return err
		}
		return nil
	})
}
