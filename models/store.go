// Package models contains domain entities for the signage administration service
package models

import "time"

// Concept is the top of the tenant hierarchy (a brand)
// Table: concepts
type Concept struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Concept) TableName() string {
	return "concepts"
}

// Company operates stores under a concept
// Table: companies
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ConceptID uint      `gorm:"not null;index:idx_companies_concept_id" json:"concept_id"`
	Concept   *Concept  `gorm:"foreignKey:ConceptID;references:ID" json:"concept,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

// Store is a physical location owned by a company
// Table: stores
// Timezone is an IANA name used to interpret schedule wall-clock times
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index:idx_stores_company_id" json:"company_id"`
	Company   *Company  `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Timezone  string    `gorm:"size:64;not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}

// ConceptID returns the concept the store belongs to, or 0 when the company was not loaded
func (s Store) ConceptID() uint {
	if s.Company == nil {
		return 0
	}
	return s.Company.ConceptID
}
