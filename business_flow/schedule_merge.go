package businessflow

import (
	"sort"

	"github.com/amirphl/signage-admin/models"
)

// DaypartKey identifies every schedule of one daypart for one schedule type and event date.
// Any placement record with a given DaypartKey supersedes all store records sharing it.
// DefinitionID is set only when the daypart name could not be resolved, so that orphaned
// records never collide with each other through an empty name.
type DaypartKey struct {
	DaypartName  string
	ScheduleType string
	EventDate    string
	DefinitionID uint
}

// ExactKey identifies one logical schedule: an override pair shares the same ExactKey
type ExactKey struct {
	DaypartKey
	ScheduleName string
}

// EffectiveSchedule is a schedule record in force for a placement group, annotated with
// its resolved daypart and whether it is inherited from the store defaults
type EffectiveSchedule struct {
	models.ScheduleRecord
	DaypartName string
	Daypart     *models.DaypartDefinition
	IsInherited bool
}

// definitionIndex maps definition ids to definitions
type definitionIndex map[uint]*models.DaypartDefinition

func newDefinitionIndex(defs []*models.DaypartDefinition) definitionIndex {
	idx := make(definitionIndex, len(defs))
	for _, d := range defs {
		if d != nil {
			idx[d.ID] = d
		}
	}
	return idx
}

func (idx definitionIndex) daypartKey(r models.ScheduleRecord) DaypartKey {
	key := DaypartKey{
		ScheduleType: r.ScheduleType,
		EventDate:    r.EventDateString(),
	}
	if def, ok := idx[r.DaypartDefinitionID]; ok {
		key.DaypartName = def.DaypartName
	} else {
		key.DefinitionID = r.DaypartDefinitionID
	}
	return key
}

func (idx definitionIndex) exactKey(r models.ScheduleRecord) ExactKey {
	return ExactKey{DaypartKey: idx.daypartKey(r), ScheduleName: r.ScheduleNameString()}
}

func (idx definitionIndex) effective(r models.ScheduleRecord, inherited bool) EffectiveSchedule {
	e := EffectiveSchedule{ScheduleRecord: r, IsInherited: inherited}
	if def, ok := idx[r.DaypartDefinitionID]; ok {
		e.Daypart = def
		e.DaypartName = def.DaypartName
	}
	return e
}

// MergeEffective computes the schedules in force for a placement group.
// Every placement record is kept. A store record is inherited only when no placement record
// shares its ExactKey or its DaypartKey; customizing any window of a daypart therefore
// supersedes all store windows of that daypart, type and date.
// Output holds placement records by id, then inherited store records by id. Inputs are not modified.
func MergeEffective(storeRecords, placementRecords []models.ScheduleRecord, defs []*models.DaypartDefinition) []EffectiveSchedule {
	idx := newDefinitionIndex(defs)

	exact := make(map[ExactKey]struct{}, len(placementRecords))
	customized := make(map[DaypartKey]struct{}, len(placementRecords))
	for _, p := range placementRecords {
		exact[idx.exactKey(p)] = struct{}{}
		customized[idx.daypartKey(p)] = struct{}{}
	}

	out := make([]EffectiveSchedule, 0, len(placementRecords)+len(storeRecords))
	for _, p := range sortedByID(placementRecords) {
		out = append(out, idx.effective(p, false))
	}
	for _, s := range sortedByID(storeRecords) {
		if _, ok := exact[idx.exactKey(s)]; ok {
			continue
		}
		if _, ok := customized[idx.daypartKey(s)]; ok {
			continue
		}
		out = append(out, idx.effective(s, true))
	}
	return out
}

func sortedByID(records []models.ScheduleRecord) []models.ScheduleRecord {
	sorted := make([]models.ScheduleRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
