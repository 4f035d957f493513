package businessflow

import (
	"errors"
	"testing"

	"github.com/amirphl/signage-admin/app/dto"
	"github.com/amirphl/signage-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWindow(t *testing.T) {
	t.Run("RegularDefaults", func(t *testing.T) {
		w, err := buildWindow(&dto.ScheduleOverrideRequest{
			DaypartDefinitionID: 3,
			DaysOfWeek:          []int{5, 1, 1, 3},
			StartTime:           "6:00",
			EndTime:             strPtr("11:00"),
			ScheduleName:        strPtr("  weekday  "),
			PriorityLevel:       2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), w.DaypartDefinitionID)
		assert.Equal(t, []int{1, 3, 5}, w.Days())
		assert.Equal(t, "06:00:00", w.StartTime)
		assert.Equal(t, "11:00:00", *w.EndTime)
		assert.True(t, w.RunsOnDays)
		assert.Equal(t, models.ScheduleTypeRegular, w.ScheduleType)
		assert.Equal(t, models.RecurrenceNone, w.RecurrenceType)
		assert.Equal(t, "weekday", w.ScheduleNameString())
		assert.JSONEq(t, `{}`, string(w.RecurrenceConfig))
		assert.Equal(t, 2, w.PriorityLevel)
		assert.Nil(t, w.EventDate)
	})

	t.Run("BlankEndIsOpenEnded", func(t *testing.T) {
		w, err := buildWindow(&dto.ScheduleOverrideRequest{DaypartDefinitionID: 1, DaysOfWeek: []int{1}, StartTime: "06:00", EndTime: strPtr(" ")})
		require.NoError(t, err)
		assert.Nil(t, w.EndTime)
		assert.Nil(t, w.ScheduleName)
	})

	t.Run("Suppression", func(t *testing.T) {
		off := false
		w, err := buildWindow(&dto.ScheduleOverrideRequest{DaypartDefinitionID: 1, DaysOfWeek: []int{0}, StartTime: "00:00", RunsOnDays: &off})
		require.NoError(t, err)
		assert.False(t, w.RunsOnDays)
	})

	t.Run("Event", func(t *testing.T) {
		w, err := buildWindow(&dto.ScheduleOverrideRequest{
			DaypartDefinitionID: 1,
			StartTime:           "08:00",
			ScheduleType:        models.ScheduleTypeEventHoliday,
			EventName:           strPtr("Christmas"),
			EventDate:           strPtr("2026-12-25"),
			RecurrenceType:      models.RecurrenceYearly,
			RecurrenceConfig:    map[string]any{"observed": true},
		})
		require.NoError(t, err)
		assert.True(t, w.IsEvent())
		assert.Empty(t, w.DaysOfWeek)
		assert.Equal(t, "2026-12-25", w.EventDateString())
		assert.Equal(t, models.RecurrenceYearly, w.RecurrenceType)
		assert.JSONEq(t, `{"observed":true}`, string(w.RecurrenceConfig))
	})

	invalid := []struct {
		name string
		req  dto.ScheduleOverrideRequest
		code string
		err  error
	}{
		{"NoDays", dto.ScheduleOverrideRequest{StartTime: "06:00"}, "DAYS_OF_WEEK_REQUIRED", ErrDaysOfWeekRequired},
		{"BadWeekday", dto.ScheduleOverrideRequest{DaysOfWeek: []int{7}, StartTime: "06:00"}, "INVALID_WEEKDAY", ErrInvalidWeekday},
		{"BadStart", dto.ScheduleOverrideRequest{DaysOfWeek: []int{1}, StartTime: "6am"}, "INVALID_TIME_FORMAT", ErrInvalidTimeFormat},
		{"BadEnd", dto.ScheduleOverrideRequest{DaysOfWeek: []int{1}, StartTime: "06:00", EndTime: strPtr("25:00")}, "INVALID_TIME_FORMAT", ErrInvalidTimeFormat},
		{"EmptyWindow", dto.ScheduleOverrideRequest{DaysOfWeek: []int{1}, StartTime: "06:00", EndTime: strPtr("06:00:00")}, "EMPTY_TIME_WINDOW", ErrEmptyTimeWindow},
		{"BadType", dto.ScheduleOverrideRequest{DaysOfWeek: []int{1}, StartTime: "06:00", ScheduleType: "weekly"}, "INVALID_SCHEDULE_TYPE", ErrInvalidScheduleType},
		{"BadRecurrence", dto.ScheduleOverrideRequest{DaysOfWeek: []int{1}, StartTime: "06:00", RecurrenceType: "monthly"}, "INVALID_RECURRENCE_TYPE", ErrInvalidRecurrence},
		{"EventWithoutName", dto.ScheduleOverrideRequest{StartTime: "06:00", ScheduleType: models.ScheduleTypeEventHoliday, EventDate: strPtr("2026-12-25")}, "EVENT_NAME_REQUIRED", ErrEventNameRequired},
		{"EventWithoutDate", dto.ScheduleOverrideRequest{StartTime: "06:00", ScheduleType: models.ScheduleTypeEventHoliday, EventName: strPtr("x")}, "EVENT_DATE_REQUIRED", ErrEventDateRequired},
		{"EventBadDate", dto.ScheduleOverrideRequest{StartTime: "06:00", ScheduleType: models.ScheduleTypeEventHoliday, EventName: strPtr("x"), EventDate: strPtr("25/12/2026")}, "INVALID_EVENT_DATE", ErrInvalidEventDate},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildWindow(&tc.req)
			require.Error(t, err)
			var be *BusinessError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tc.code, be.Code)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCheckDayConflicts(t *testing.T) {
	def := daypart(1, "breakfast", 10)
	siblings := []models.ScheduleRecord{regular(1, 1, []int32{1, 2}, "06:00:00", nil)}

	err := checkDayConflicts(def, regular(0, 1, []int32{2, 3}, "07:00:00", nil), siblings)
	require.Error(t, err)
	assert.True(t, IsDayConflict(err))
	assert.True(t, IsValidation(err))

	var conflict *DayConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "breakfast", conflict.DaypartName)
	assert.Equal(t, []int{2}, conflict.Days)
	assert.Contains(t, err.Error(), "Tue")

	assert.NoError(t, checkDayConflicts(def, regular(0, 1, []int32{4}, "07:00:00", nil), siblings))
}

func TestIndexed(t *testing.T) {
	err := indexed(1, NewBusinessError("INVALID_WEEKDAY", "Invalid weekday 9", ErrInvalidWeekday))
	var be *BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "INVALID_WEEKDAY", be.Code)
	assert.Equal(t, "schedule 2: Invalid weekday 9", be.Message)
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}
