package businessflow

import (
	"time"

	"github.com/amirphl/signage-admin/models"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func daypart(id uint, name string, sortOrder int) *models.DaypartDefinition {
	return &models.DaypartDefinition{
		ID:           id,
		DaypartName:  name,
		DisplayLabel: name,
		SortOrder:    sortOrder,
		Scope:        models.DaypartScopeGlobal,
	}
}

func regular(id, defID uint, days []int32, start string, end *string) models.ScheduleRecord {
	return models.ScheduleRecord{
		ID: id,
		ScheduleWindow: models.ScheduleWindow{
			DaypartDefinitionID: defID,
			DaysOfWeek:          pq.Int32Array(days),
			StartTime:           start,
			EndTime:             end,
			RunsOnDays:          true,
			ScheduleType:        models.ScheduleTypeRegular,
			RecurrenceType:      models.RecurrenceNone,
			RecurrenceConfig:    datatypes.JSON(`{}`),
		},
	}
}

func event(id, defID uint, name, date, start string, end *string) models.ScheduleRecord {
	r := regular(id, defID, []int32{}, start, end)
	r.ScheduleType = models.ScheduleTypeEventHoliday
	r.EventName = &name
	parsed, err := time.Parse(models.EventDateLayout, date)
	if err != nil {
		panic(err)
	}
	d := datatypes.Date(parsed)
	r.EventDate = &d
	return r
}

func placement(r models.ScheduleRecord, placementGroupID uint) models.ScheduleRecord {
	pg := placementGroupID
	r.PlacementGroupID = &pg
	return r
}

func named(r models.ScheduleRecord, name string) models.ScheduleRecord {
	r.ScheduleName = &name
	return r
}

func ids(effective []EffectiveSchedule) []uint {
	out := make([]uint, 0, len(effective))
	for _, e := range effective {
		out = append(out, e.ID)
	}
	return out
}
