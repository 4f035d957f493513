package repository

import (
	"context"
	"errors"

	"github.com/amirphl/signage-admin/models"
	"gorm.io/gorm"
)

// PlacementGroupRepositoryImpl implements PlacementGroupRepository interface
type PlacementGroupRepositoryImpl struct {
	*BaseRepository[models.PlacementGroup, struct{}]
}

// NewPlacementGroupRepository creates a new placement group repository
func NewPlacementGroupRepository(db *gorm.DB) PlacementGroupRepository {
	return &PlacementGroupRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PlacementGroup, struct{}](db),
	}
}

// ByID retrieves a placement group by its ID
func (r *PlacementGroupRepositoryImpl) ByID(ctx context.Context, id uint) (*models.PlacementGroup, error) {
	db := r.getDB(ctx)

	var group models.PlacementGroup
	if err := db.Last(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}
