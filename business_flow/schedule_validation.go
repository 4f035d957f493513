package businessflow

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/amirphl/signage-admin/app/dto"
	"github.com/amirphl/signage-admin/models"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// buildWindow validates a schedule request and normalizes it into a schedule window
func buildWindow(req *dto.ScheduleOverrideRequest) (models.ScheduleWindow, error) {
	w := models.ScheduleWindow{
		DaypartDefinitionID: req.DaypartDefinitionID,
		RunsOnDays:          true,
		ScheduleType:        models.ScheduleTypeRegular,
		RecurrenceType:      models.RecurrenceNone,
		PriorityLevel:       req.PriorityLevel,
	}
	if req.RunsOnDays != nil {
		w.RunsOnDays = *req.RunsOnDays
	}

	switch req.ScheduleType {
	case "", models.ScheduleTypeRegular:
	case models.ScheduleTypeEventHoliday:
		w.ScheduleType = models.ScheduleTypeEventHoliday
	default:
		return w, NewBusinessError("INVALID_SCHEDULE_TYPE", "Schedule type must be regular or event_holiday", ErrInvalidScheduleType)
	}

	switch req.RecurrenceType {
	case "", models.RecurrenceNone:
	case models.RecurrenceYearly:
		w.RecurrenceType = models.RecurrenceYearly
	default:
		return w, NewBusinessError("INVALID_RECURRENCE_TYPE", "Recurrence type must be none or yearly", ErrInvalidRecurrence)
	}

	days := make(pq.Int32Array, 0, len(req.DaysOfWeek))
	seen := [7]bool{}
	for _, d := range req.DaysOfWeek {
		if d < 0 || d > 6 {
			return w, NewBusinessErrorf("INVALID_WEEKDAY", "Invalid weekday %d", ErrInvalidWeekday, d)
		}
		seen[d] = true
	}
	for d, ok := range seen {
		if ok {
			days = append(days, int32(d))
		}
	}
	w.DaysOfWeek = days
	if !w.IsEvent() && len(days) == 0 {
		return w, NewBusinessError("DAYS_OF_WEEK_REQUIRED", "Select at least one day", ErrDaysOfWeekRequired)
	}

	start, err := NormalizeTime(req.StartTime)
	if err != nil {
		return w, NewBusinessError("INVALID_TIME_FORMAT", "Start time must be HH:MM or HH:MM:SS", err)
	}
	w.StartTime = start
	if req.EndTime != nil && strings.TrimSpace(*req.EndTime) != "" {
		end, err := NormalizeTime(*req.EndTime)
		if err != nil {
			return w, NewBusinessError("INVALID_TIME_FORMAT", "End time must be HH:MM or HH:MM:SS", err)
		}
		if end == start {
			return w, NewBusinessError("EMPTY_TIME_WINDOW", "End time must differ from start time", ErrEmptyTimeWindow)
		}
		w.EndTime = &end
	}

	w.ScheduleName = trimmedOrNil(req.ScheduleName)

	if w.IsEvent() {
		w.EventName = trimmedOrNil(req.EventName)
		if w.EventName == nil {
			return w, NewBusinessError("EVENT_NAME_REQUIRED", "Event name is required", ErrEventNameRequired)
		}
		if req.EventDate == nil || strings.TrimSpace(*req.EventDate) == "" {
			return w, NewBusinessError("EVENT_DATE_REQUIRED", "Event date is required", ErrEventDateRequired)
		}
		parsed, err := time.Parse(models.EventDateLayout, strings.TrimSpace(*req.EventDate))
		if err != nil {
			return w, NewBusinessError("INVALID_EVENT_DATE", "Event date must be YYYY-MM-DD", ErrInvalidEventDate)
		}
		date := datatypes.Date(parsed)
		w.EventDate = &date
	}

	config := req.RecurrenceConfig
	if config == nil {
		config = map[string]any{}
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return w, NewBusinessError("INVALID_RECURRENCE_CONFIG", "Recurrence config must be a JSON object", ErrValidation)
	}
	w.RecurrenceConfig = datatypes.JSON(raw)

	return w, nil
}

// checkDaypart ensures the window's daypart is usable by the placement group
func checkDaypart(agg *ScheduleAggregate, w models.ScheduleWindow) (*models.DaypartDefinition, error) {
	def, ok := agg.definition(w.DaypartDefinitionID)
	if !ok {
		return nil, NewBusinessErrorf("DAYPART_NOT_APPLICABLE", "Daypart %d is not defined for this store", ErrDaypartNotApplicable, w.DaypartDefinitionID)
	}
	return def, nil
}

// checkDayConflicts rejects a regular record whose days collide with siblings of the same daypart
func checkDayConflicts(def *models.DaypartDefinition, candidate models.ScheduleRecord, siblings []models.ScheduleRecord) error {
	conflicts := DetectDayConflicts(candidate, siblings)
	if len(conflicts) == 0 {
		return nil
	}
	return NewBusinessErrorf(
		"DAY_CONFLICT",
		"%s already has a schedule on %s",
		&DayConflictError{DaypartName: def.DaypartName, Days: conflicts},
		def.DisplayLabel, strings.Join(DayLabels(conflicts), ", "),
	)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
