package models

import "time"

// PlacementGroup is a named area within a store that display devices are assigned to.
// Placement groups may nest (ParentID), but schedule inheritance is always resolved
// against the owning store, never against ancestor placement groups.
// Table: placement_groups
type PlacementGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StoreID   uint      `gorm:"not null;index:idx_placement_groups_store_id" json:"store_id"`
	ParentID  *uint     `gorm:"index:idx_placement_groups_parent_id" json:"parent_id,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (PlacementGroup) TableName() string {
	return "placement_groups"
}
