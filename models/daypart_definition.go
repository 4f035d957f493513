package models

import "time"

// Daypart definition scopes, from least to most specific
const (
	DaypartScopeGlobal  = "global"
	DaypartScopeConcept = "concept"
	DaypartScopeStore   = "store"
)

// DaypartDefinition is a named time-of-day category such as "Breakfast" or "Lunch".
// DaypartName is the stable key; within one store's effective set names are unique.
// Table: daypart_definitions
type DaypartDefinition struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DaypartName  string    `gorm:"size:100;not null;index:idx_daypart_definitions_name" json:"daypart_name"`
	DisplayLabel string    `gorm:"size:255;not null" json:"display_label"`
	Color        string    `gorm:"size:50" json:"color"`
	Icon         string    `gorm:"size:100" json:"icon"`
	SortOrder    int       `gorm:"not null;default:0;index:idx_daypart_definitions_sort_order" json:"sort_order"`
	Scope        string    `gorm:"size:20;not null;index:idx_daypart_definitions_scope" json:"scope"`
	ConceptID    *uint     `gorm:"index:idx_daypart_definitions_concept_id" json:"concept_id,omitempty"`
	StoreID      *uint     `gorm:"index:idx_daypart_definitions_store_id" json:"store_id,omitempty"`
	CreatedAt    time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (DaypartDefinition) TableName() string {
	return "daypart_definitions"
}

// ScopeRank orders scopes so that a higher rank is more specific
func ScopeRank(scope string) int {
	switch scope {
	case DaypartScopeStore:
		return 2
	case DaypartScopeConcept:
		return 1
	default:
		return 0
	}
}
