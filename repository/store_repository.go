package repository

import (
	"context"
	"errors"

	"github.com/amirphl/signage-admin/models"
	"gorm.io/gorm"
)

// StoreRepositoryImpl implements StoreRepository interface
type StoreRepositoryImpl struct {
	*BaseRepository[models.Store, struct{}]
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &StoreRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Store, struct{}](db),
	}
}

// ByID retrieves a store with its company by ID
func (r *StoreRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Store, error) {
	db := r.getDB(ctx)

	var store models.Store
	err := db.Preload("Company").Last(&store, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &store, nil
}

// ListIDs returns the ids of all stores in ascending order
func (r *StoreRepositoryImpl) ListIDs(ctx context.Context) ([]uint, error) {
	db := r.getDB(ctx)

	var ids []uint
	if err := db.Model(&models.Store{}).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
