package dto

import "encoding/json"

// DaypartDefinitionDTO represents a resolved daypart definition
type DaypartDefinitionDTO struct {
	ID           uint   `json:"id"`
	DaypartName  string `json:"daypart_name"`
	DisplayLabel string `json:"display_label"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	SortOrder    int    `json:"sort_order"`
	Scope        string `json:"scope"`
}

// StoreDaypartsResponse lists the effective daypart definitions of a store in display order
type StoreDaypartsResponse struct {
	Message  string                 `json:"message"`
	StoreID  uint                   `json:"store_id"`
	Dayparts []DaypartDefinitionDTO `json:"dayparts"`
}

// EffectiveScheduleDTO represents one schedule in force for a placement group
type EffectiveScheduleDTO struct {
	ID                  uint            `json:"id,omitempty"`
	UUID                string          `json:"uuid,omitempty"`
	PlacementGroupID    *uint           `json:"placement_group_id,omitempty"`
	DaypartDefinitionID uint            `json:"daypart_definition_id"`
	DaypartName         string          `json:"daypart_name"`
	DaysOfWeek          []int           `json:"days_of_week"`
	DayLabels           []string        `json:"day_labels"`
	DaySummary          string          `json:"day_summary"`
	StartTime           string          `json:"start_time"`
	EndTime             *string         `json:"end_time,omitempty"`
	DisplayTime         string          `json:"display_time"`
	RunsOnDays          bool            `json:"runs_on_days"`
	ScheduleType        string          `json:"schedule_type"`
	ScheduleName        *string         `json:"schedule_name,omitempty"`
	EventName           *string         `json:"event_name,omitempty"`
	EventDate           *string         `json:"event_date,omitempty"`
	RecurrenceType      string          `json:"recurrence_type"`
	RecurrenceConfig    json.RawMessage `json:"recurrence_config,omitempty" swaggertype:"object"`
	PriorityLevel       int             `json:"priority_level"`
	IsInherited         bool            `json:"is_inherited"`
}

// DaypartScheduleGroupDTO groups the effective schedules of one daypart
type DaypartScheduleGroupDTO struct {
	Daypart              DaypartDefinitionDTO   `json:"daypart"`
	Regular              []EffectiveScheduleDTO `json:"regular"`
	Events               []EffectiveScheduleDTO `json:"events"`
	UnscheduledDays      []int                  `json:"unscheduled_days"`
	UnscheduledDayLabels []string               `json:"unscheduled_day_labels"`
}

// PlacementScheduleViewResponse is the effective schedule of a placement group grouped by daypart
type PlacementScheduleViewResponse struct {
	Message          string                    `json:"message"`
	PlacementGroupID uint                      `json:"placement_group_id"`
	StoreID          uint                      `json:"store_id"`
	Dayparts         []DaypartScheduleGroupDTO `json:"dayparts"`
	Unassigned       []EffectiveScheduleDTO    `json:"unassigned"`
}

// ScheduleOverrideRequest represents a placement-level schedule to create or update
type ScheduleOverrideRequest struct {
	DaypartDefinitionID uint           `json:"daypart_definition_id" validate:"required"`
	DaysOfWeek          []int          `json:"days_of_week" validate:"omitempty,dive,min=0,max=6"`
	StartTime           string         `json:"start_time" validate:"required,hhmm"`
	EndTime             *string        `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	RunsOnDays          *bool          `json:"runs_on_days,omitempty"`
	ScheduleType        string         `json:"schedule_type,omitempty" validate:"omitempty,oneof=regular event_holiday"`
	ScheduleName        *string        `json:"schedule_name,omitempty" validate:"omitempty,max=255"`
	EventName           *string        `json:"event_name,omitempty" validate:"omitempty,max=255"`
	EventDate           *string        `json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RecurrenceType      string         `json:"recurrence_type,omitempty" validate:"omitempty,oneof=none yearly"`
	RecurrenceConfig    map[string]any `json:"recurrence_config,omitempty"`
	PriorityLevel       int            `json:"priority_level" validate:"min=0,max=1000"`
}

// ReplaceScheduleOverridesRequest replaces every placement-level schedule of a placement group
type ReplaceScheduleOverridesRequest struct {
	Schedules []ScheduleOverrideRequest `json:"schedules" validate:"dive"`
}

// ScheduleOverrideResponse returns a saved placement-level schedule
type ScheduleOverrideResponse struct {
	Message  string               `json:"message"`
	Schedule EffectiveScheduleDTO `json:"schedule"`
}

// ReplaceScheduleOverridesResponse reports the outcome of an atomic replace
type ReplaceScheduleOverridesResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// DeleteScheduleOverrideResponse reports a deleted placement-level schedule
type DeleteScheduleOverrideResponse struct {
	Message string `json:"message"`
}

// ScheduleDraftResponse carries an unsaved placement-level schedule prefilled for editing
type ScheduleDraftResponse struct {
	Message string               `json:"message"`
	Draft   EffectiveScheduleDTO `json:"draft"`
}

// ActiveDaypartResponse reports the daypart in force at a given time
type ActiveDaypartResponse struct {
	Message  string                `json:"message"`
	At       string                `json:"at"`
	Active   bool                  `json:"active"`
	Daypart  *DaypartDefinitionDTO `json:"daypart,omitempty"`
	Schedule *EffectiveScheduleDTO `json:"schedule,omitempty"`
	StartsAt string                `json:"starts_at,omitempty"`
	EndsAt   *string               `json:"ends_at,omitempty"`
}

// ScheduleAuditLogDTO is one recorded write against the schedules of a placement group
type ScheduleAuditLogDTO struct {
	ID           uint    `json:"id"`
	ScheduleID   *uint   `json:"schedule_id,omitempty"`
	Action       string  `json:"action"`
	Description  *string `json:"description,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	UserAgent    *string `json:"user_agent,omitempty"`
	RequestID    *string `json:"request_id,omitempty"`
	Success      bool    `json:"success"`
	ErrorMessage *string `json:"error_message,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ScheduleAuditLogResponse is a page of the schedule audit trail, newest first
type ScheduleAuditLogResponse struct {
	Message          string                `json:"message"`
	PlacementGroupID uint                  `json:"placement_group_id"`
	Limit            int                   `json:"limit"`
	Offset           int                   `json:"offset"`
	Entries          []ScheduleAuditLogDTO `json:"entries"`
}
