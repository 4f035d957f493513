package businessflow

import (
	"github.com/amirphl/signage-admin/models"
)

// ScheduleAggregate is every schedule relevant to one placement group, partitioned by source and type
type ScheduleAggregate struct {
	PlacementGroup *models.PlacementGroup
	Store          *models.Store
	// Dayparts is the store's resolved definition list in display order
	Dayparts []*models.DaypartDefinition
	// ExtraDefinitions are referenced by placement records but not part of Dayparts
	ExtraDefinitions []*models.DaypartDefinition

	PlacementRegular []models.ScheduleRecord
	PlacementEvents  []models.ScheduleRecord
	StoreRegular     []models.ScheduleRecord
	StoreEvents      []models.ScheduleRecord
}

// PlacementRecords returns every placement-level record
func (a *ScheduleAggregate) PlacementRecords() []models.ScheduleRecord {
	out := make([]models.ScheduleRecord, 0, len(a.PlacementRegular)+len(a.PlacementEvents))
	out = append(out, a.PlacementRegular...)
	return append(out, a.PlacementEvents...)
}

// StoreRecords returns every store-level record
func (a *ScheduleAggregate) StoreRecords() []models.ScheduleRecord {
	out := make([]models.ScheduleRecord, 0, len(a.StoreRegular)+len(a.StoreEvents))
	out = append(out, a.StoreRegular...)
	return append(out, a.StoreEvents...)
}

// Definitions returns the resolved and extra definitions together
func (a *ScheduleAggregate) Definitions() []*models.DaypartDefinition {
	out := make([]*models.DaypartDefinition, 0, len(a.Dayparts)+len(a.ExtraDefinitions))
	out = append(out, a.Dayparts...)
	return append(out, a.ExtraDefinitions...)
}

// Effective merges the aggregate into the schedules in force for the placement group
func (a *ScheduleAggregate) Effective() []EffectiveSchedule {
	effective := MergeEffective(a.StoreRecords(), a.PlacementRecords(), a.Definitions())

	scheduleMergesTotal.Inc()
	inherited := 0
	for _, e := range effective {
		if e.IsInherited {
			inherited++
		}
	}
	suppressedStoreSchedulesTotal.Add(float64(len(a.StoreRegular) + len(a.StoreEvents) - inherited))

	return effective
}

// definition looks up a definition usable by the placement group
func (a *ScheduleAggregate) definition(id uint) (*models.DaypartDefinition, bool) {
	for _, d := range a.Definitions() {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// daypartNamed returns the resolved definition with the given name
func (a *ScheduleAggregate) daypartNamed(name string) (*models.DaypartDefinition, bool) {
	for _, d := range a.Dayparts {
		if d.DaypartName == name {
			return d, true
		}
	}
	return nil, false
}

// siblingsOf returns placement regular records sharing the daypart name of def
func (a *ScheduleAggregate) siblingsOf(def *models.DaypartDefinition) []models.ScheduleRecord {
	idx := newDefinitionIndex(a.Definitions())
	var out []models.ScheduleRecord
	for _, r := range a.PlacementRegular {
		if d, ok := idx[r.DaypartDefinitionID]; ok && d.DaypartName == def.DaypartName {
			out = append(out, r)
		}
	}
	return out
}

// partitionRecords splits records into regular and event/holiday
func partitionRecords(records []models.ScheduleRecord) (regular, events []models.ScheduleRecord) {
	regular = []models.ScheduleRecord{}
	events = []models.ScheduleRecord{}
	for _, r := range records {
		if r.ScheduleType == models.ScheduleTypeEventHoliday {
			events = append(events, r)
		} else {
			regular = append(regular, r)
		}
	}
	return regular, events
}
