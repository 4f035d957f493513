package repository

import (
	"context"
	"fmt"

	"github.com/amirphl/signage-admin/models"
	"gorm.io/gorm"
)

// ScheduleAuditLogRepositoryImpl implements ScheduleAuditLogRepository interface
type ScheduleAuditLogRepositoryImpl struct {
	*BaseRepository[models.ScheduleAuditLog, struct{}]
}

// NewScheduleAuditLogRepository creates a new schedule audit log repository
func NewScheduleAuditLogRepository(db *gorm.DB) ScheduleAuditLogRepository {
	return &ScheduleAuditLogRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ScheduleAuditLog, struct{}](db),
	}
}

// ListByPlacementGroup retrieves the audit trail of a placement group, newest first
func (r *ScheduleAuditLogRepositoryImpl) ListByPlacementGroup(ctx context.Context, placementGroupID uint, limit, offset int) ([]*models.ScheduleAuditLog, error) {
	db := r.getDB(ctx)

	var logs []*models.ScheduleAuditLog
	query := db.Where("placement_group_id = ?", placementGroupID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedule audit logs: %w", err)
	}

	return logs, nil
}
