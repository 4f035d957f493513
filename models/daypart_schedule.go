package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Schedule types
const (
	ScheduleTypeRegular      = "regular"
	ScheduleTypeEventHoliday = "event_holiday"
)

// Recurrence types for event/holiday schedules
const (
	RecurrenceNone   = "none"
	RecurrenceYearly = "yearly"
)

// EventDateLayout is the wire and key format of event dates
const EventDateLayout = "2006-01-02"

// ScheduleWindow holds the columns shared by store-level defaults and placement-level overrides.
// DaysOfWeek uses 0=Sunday..6=Saturday; an empty set means "not yet assigned to any day".
// Times are HH:MM:SS 24-hour strings; a nil EndTime is open-ended until the next window.
// RunsOnDays=false marks a suppression record: the daypart explicitly does not run on those days.
type ScheduleWindow struct {
	DaypartDefinitionID uint            `gorm:"not null" json:"daypart_definition_id"`
	DaysOfWeek          pq.Int32Array   `gorm:"type:integer[];not null" json:"days_of_week"`
	StartTime           string          `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime             *string         `gorm:"type:varchar(8)" json:"end_time,omitempty"`
	RunsOnDays          bool            `gorm:"not null" json:"runs_on_days"`
	ScheduleType        string          `gorm:"type:varchar(20);not null" json:"schedule_type"`
	ScheduleName        *string         `gorm:"size:255" json:"schedule_name,omitempty"`
	EventName           *string         `gorm:"size:255" json:"event_name,omitempty"`
	EventDate           *datatypes.Date `gorm:"type:date" json:"event_date,omitempty"`
	RecurrenceType      string          `gorm:"type:varchar(20);not null" json:"recurrence_type"`
	RecurrenceConfig    datatypes.JSON  `gorm:"type:jsonb;not null" json:"recurrence_config"`
	PriorityLevel       int             `gorm:"not null" json:"priority_level"`
}

// IsEvent reports whether the window is a dated event/holiday exception
func (w ScheduleWindow) IsEvent() bool {
	return w.ScheduleType == ScheduleTypeEventHoliday
}

// EventDateString returns the event date as YYYY-MM-DD or "" when absent
func (w ScheduleWindow) EventDateString() string {
	if w.EventDate == nil {
		return ""
	}
	return time.Time(*w.EventDate).Format(EventDateLayout)
}

// ScheduleNameString returns the schedule name or "" when absent
func (w ScheduleWindow) ScheduleNameString() string {
	if w.ScheduleName == nil {
		return ""
	}
	return *w.ScheduleName
}

// Days returns the weekdays as plain ints
func (w ScheduleWindow) Days() []int {
	out := make([]int, 0, len(w.DaysOfWeek))
	for _, d := range w.DaysOfWeek {
		out = append(out, int(d))
	}
	return out
}

// DaypartSchedule is a store-level default schedule attached to a daypart definition.
// Table: daypart_schedules
type DaypartSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ScheduleWindow
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (DaypartSchedule) TableName() string {
	return "daypart_schedules"
}

// Record returns the logical schedule record of a store default
func (s DaypartSchedule) Record() ScheduleRecord {
	return ScheduleRecord{ID: s.ID, ScheduleWindow: s.ScheduleWindow}
}

// DaypartScheduleFilter represents filter criteria for store-level schedule queries
type DaypartScheduleFilter struct {
	ID                   *uint
	DaypartDefinitionIDs []uint
	ScheduleType         *string
}

// PlacementDaypartOverride is a placement-level schedule that customizes a daypart for one placement group.
// Table: placement_daypart_overrides
type PlacementDaypartOverride struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UUID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_placement_daypart_overrides_uuid" json:"uuid"`
	PlacementGroupID uint      `gorm:"not null;index:idx_placement_daypart_overrides_placement_group_id" json:"placement_group_id"`
	ScheduleWindow
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (PlacementDaypartOverride) TableName() string {
	return "placement_daypart_overrides"
}

// Record returns the logical schedule record of a placement override
func (o PlacementDaypartOverride) Record() ScheduleRecord {
	placementGroupID := o.PlacementGroupID
	return ScheduleRecord{ID: o.ID, UUID: o.UUID, PlacementGroupID: &placementGroupID, ScheduleWindow: o.ScheduleWindow}
}

// PlacementOverrideFilter represents filter criteria for placement-level schedule queries
type PlacementOverrideFilter struct {
	ID                  *uint
	PlacementGroupID    *uint
	DaypartDefinitionID *uint
	ScheduleType        *string
}

// ScheduleRecord is the single logical shape of both schedule sources.
// PlacementGroupID is nil for store-level defaults.
type ScheduleRecord struct {
	ID               uint      `json:"id"`
	UUID             uuid.UUID `json:"uuid"`
	PlacementGroupID *uint     `json:"placement_group_id,omitempty"`
	ScheduleWindow
}

// IsStoreDefault reports whether the record comes from the store-level table
func (r ScheduleRecord) IsStoreDefault() bool {
	return r.PlacementGroupID == nil
}
