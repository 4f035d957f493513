package testing

import (
	"fmt"
	"time"

	"github.com/amirphl/signage-admin/models"
	"github.com/amirphl/signage-admin/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// Tenant is one concept/company/store chain with a placement group
type Tenant struct {
	Concept        *models.Concept
	Company        *models.Company
	Store          *models.Store
	PlacementGroup *models.PlacementGroup
}

// CreateTenant creates a concept, company, store and placement group
func (tf *TestFixtures) CreateTenant(timezone string) (*Tenant, error) {
	now := utils.UTCNow()
	concept := &models.Concept{Name: "Test Concept", CreatedAt: now, UpdatedAt: now}
	if err := tf.DB.DB.Create(concept).Error; err != nil {
		return nil, fmt.Errorf("failed to create concept: %w", err)
	}
	company := &models.Company{ConceptID: concept.ID, Name: "Test Company", CreatedAt: now, UpdatedAt: now}
	if err := tf.DB.DB.Create(company).Error; err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	if timezone == "" {
		timezone = "UTC"
	}
	store := &models.Store{CompanyID: company.ID, Name: "Test Store", Timezone: timezone, CreatedAt: now, UpdatedAt: now}
	if err := tf.DB.DB.Create(store).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	pg, err := tf.CreatePlacementGroup(store.ID, nil, "Front Counter")
	if err != nil {
		return nil, err
	}
	return &Tenant{Concept: concept, Company: company, Store: store, PlacementGroup: pg}, nil
}

// CreatePlacementGroup creates a placement group in a store
func (tf *TestFixtures) CreatePlacementGroup(storeID uint, parentID *uint, name string) (*models.PlacementGroup, error) {
	now := utils.UTCNow()
	pg := &models.PlacementGroup{StoreID: storeID, ParentID: parentID, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := tf.DB.DB.Create(pg).Error; err != nil {
		return nil, fmt.Errorf("failed to create placement group: %w", err)
	}
	return pg, nil
}

// CreateDaypart creates a daypart definition. conceptID or storeID must be set for those scopes.
func (tf *TestFixtures) CreateDaypart(name, scope string, sortOrder int, conceptID, storeID *uint) (*models.DaypartDefinition, error) {
	now := utils.UTCNow()
	def := &models.DaypartDefinition{
		DaypartName:  name,
		DisplayLabel: name,
		Color:        "#ffaa00",
		SortOrder:    sortOrder,
		Scope:        scope,
		ConceptID:    conceptID,
		StoreID:      storeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := tf.DB.DB.Create(def).Error; err != nil {
		return nil, fmt.Errorf("failed to create daypart %s: %w", name, err)
	}
	return def, nil
}

// Window builds a regular schedule window
func Window(daypartID uint, days []int32, start string, end *string) models.ScheduleWindow {
	return models.ScheduleWindow{
		DaypartDefinitionID: daypartID,
		DaysOfWeek:          pq.Int32Array(days),
		StartTime:           start,
		EndTime:             end,
		RunsOnDays:          true,
		ScheduleType:        models.ScheduleTypeRegular,
		RecurrenceType:      models.RecurrenceNone,
		RecurrenceConfig:    datatypes.JSON(`{}`),
	}
}

// EventWindow builds an event/holiday schedule window on the given YYYY-MM-DD date
func EventWindow(daypartID uint, name, date, start string, end *string, recurrence string) models.ScheduleWindow {
	w := Window(daypartID, []int32{}, start, end)
	w.ScheduleType = models.ScheduleTypeEventHoliday
	w.EventName = &name
	parsed, _ := time.Parse(models.EventDateLayout, date)
	d := datatypes.Date(parsed)
	w.EventDate = &d
	if recurrence != "" {
		w.RecurrenceType = recurrence
	}
	return w
}

// CreateStoreSchedule creates a store-level default schedule
func (tf *TestFixtures) CreateStoreSchedule(w models.ScheduleWindow) (*models.DaypartSchedule, error) {
	now := utils.UTCNow()
	s := &models.DaypartSchedule{ScheduleWindow: w, CreatedAt: now, UpdatedAt: now}
	if err := tf.DB.DB.Create(s).Error; err != nil {
		return nil, fmt.Errorf("failed to create store schedule: %w", err)
	}
	return s, nil
}

// CreateOverride creates a placement-level schedule
func (tf *TestFixtures) CreateOverride(placementGroupID uint, w models.ScheduleWindow) (*models.PlacementDaypartOverride, error) {
	now := utils.UTCNow()
	o := &models.PlacementDaypartOverride{
		UUID:             uuid.New(),
		PlacementGroupID: placementGroupID,
		ScheduleWindow:   w,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := tf.DB.DB.Create(o).Error; err != nil {
		return nil, fmt.Errorf("failed to create placement override: %w", err)
	}
	return o, nil
}
