package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/amirphl/signage-admin/models"
	"gorm.io/gorm"
)

// DaypartDefinitionRepositoryImpl implements DaypartDefinitionRepository interface
type DaypartDefinitionRepositoryImpl struct {
	*BaseRepository[models.DaypartDefinition, struct{}]
}

// NewDaypartDefinitionRepository creates a new daypart definition repository
func NewDaypartDefinitionRepository(db *gorm.DB) DaypartDefinitionRepository {
	return &DaypartDefinitionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.DaypartDefinition, struct{}](db),
	}
}

// ByID retrieves a daypart definition by its ID
func (r *DaypartDefinitionRepositoryImpl) ByID(ctx context.Context, id uint) (*models.DaypartDefinition, error) {
	db := r.getDB(ctx)

	var def models.DaypartDefinition
	if err := db.Last(&def, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

// ByIDs retrieves daypart definitions for a list of ids, ordered by id
func (r *DaypartDefinitionRepositoryImpl) ByIDs(ctx context.Context, ids []uint) ([]*models.DaypartDefinition, error) {
	if len(ids) == 0 {
		return []*models.DaypartDefinition{}, nil
	}
	db := r.getDB(ctx)

	var rows []*models.DaypartDefinition
	if err := db.Where("id IN ?", ids).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// EffectiveForStore selects global, concept and store scoped definitions visible to the store
// and collapses them by daypart name
func (r *DaypartDefinitionRepositoryImpl) EffectiveForStore(ctx context.Context, store *models.Store) ([]*models.DaypartDefinition, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.DaypartDefinition{})
	conceptID := store.ConceptID()
	if conceptID != 0 {
		query = query.Where(
			"scope = ? OR (scope = ? AND concept_id = ?) OR (scope = ? AND store_id = ?)",
			models.DaypartScopeGlobal,
			models.DaypartScopeConcept, conceptID,
			models.DaypartScopeStore, store.ID,
		)
	} else {
		query = query.Where(
			"scope = ? OR (scope = ? AND store_id = ?)",
			models.DaypartScopeGlobal,
			models.DaypartScopeStore, store.ID,
		)
	}

	var rows []*models.DaypartDefinition
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	return resolveDefinitions(rows), nil
}

// resolveDefinitions keeps the most specific definition per daypart name and orders the
// result by sort_order, ties by id
func resolveDefinitions(rows []*models.DaypartDefinition) []*models.DaypartDefinition {
	byName := make(map[string]*models.DaypartDefinition, len(rows))
	for _, row := range rows {
		current, ok := byName[row.DaypartName]
		if !ok || models.ScopeRank(row.Scope) > models.ScopeRank(current.Scope) {
			byName[row.DaypartName] = row
		}
	}

	result := make([]*models.DaypartDefinition, 0, len(byName))
	for _, def := range byName {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].ID < result[j].ID
	})
	return result
}
