package repository

import (
	"context"
	"errors"

	"github.com/amirphl/signage-admin/models"
	"gorm.io/gorm"
)

// DaypartScheduleRepositoryImpl implements DaypartScheduleRepository interface
type DaypartScheduleRepositoryImpl struct {
	*BaseRepository[models.DaypartSchedule, models.DaypartScheduleFilter]
}

// NewDaypartScheduleRepository creates a new store-level schedule repository
func NewDaypartScheduleRepository(db *gorm.DB) DaypartScheduleRepository {
	return &DaypartScheduleRepositoryImpl{
		BaseRepository: NewBaseRepository[models.DaypartSchedule, models.DaypartScheduleFilter](db),
	}
}

// ByID retrieves a store-level schedule by its ID
func (r *DaypartScheduleRepositoryImpl) ByID(ctx context.Context, id uint) (*models.DaypartSchedule, error) {
	db := r.getDB(ctx)

	var row models.DaypartSchedule
	if err := db.Last(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *DaypartScheduleRepositoryImpl) applyFilter(query *gorm.DB, filter models.DaypartScheduleFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.DaypartDefinitionIDs != nil {
		query = query.Where("daypart_definition_id IN ?", filter.DaypartDefinitionIDs)
	}
	if filter.ScheduleType != nil {
		query = query.Where("schedule_type = ?", *filter.ScheduleType)
	}
	return query
}

// ByFilter retrieves store-level schedules based on filter criteria.
// A non-nil but empty DaypartDefinitionIDs matches nothing.
func (r *DaypartScheduleRepositoryImpl) ByFilter(ctx context.Context, filter models.DaypartScheduleFilter, orderBy string, limit, offset int) ([]*models.DaypartSchedule, error) {
	if filter.DaypartDefinitionIDs != nil && len(filter.DaypartDefinitionIDs) == 0 {
		return []*models.DaypartSchedule{}, nil
	}

	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.DaypartSchedule{}), filter)

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

	var rows []*models.DaypartSchedule
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of store-level schedules matching the filter
func (r *DaypartScheduleRepositoryImpl) Count(ctx context.Context, filter models.DaypartScheduleFilter) (int64, error) {
	if filter.DaypartDefinitionIDs != nil && len(filter.DaypartDefinitionIDs) == 0 {
		return 0, nil
	}

	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.DaypartSchedule{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any store-level schedule matching the filter exists
func (r *DaypartScheduleRepositoryImpl) Exists(ctx context.Context, filter models.DaypartScheduleFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
