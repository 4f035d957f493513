package businessflow

import (
	"github.com/amirphl/signage-admin/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AllWeekdays is the full 0 (Sunday) .. 6 (Saturday) day set
var AllWeekdays = []int{0, 1, 2, 3, 4, 5, 6}

// DaypartScheduleGroup holds the effective schedules of one daypart for presentation
type DaypartScheduleGroup struct {
	Daypart *models.DaypartDefinition
	Regular []EffectiveSchedule
	Events  []EffectiveSchedule
	// UnscheduledDays is only computed once the placement has its own regular schedule for the daypart
	UnscheduledDays []int
}

// ScheduleView is the grouped effective schedule of a placement group
type ScheduleView struct {
	Groups []DaypartScheduleGroup
	// Unassigned holds schedules whose daypart is not part of the store's resolved set
	Unassigned []EffectiveSchedule
}

// BuildScheduleView groups effective schedules by daypart in resolution order, splitting
// regular from event/holiday schedules. Dayparts are matched by name.
func BuildScheduleView(effective []EffectiveSchedule, dayparts []*models.DaypartDefinition) ScheduleView {
	view := ScheduleView{
		Groups:     make([]DaypartScheduleGroup, 0, len(dayparts)),
		Unassigned: []EffectiveSchedule{},
	}

	position := make(map[string]int, len(dayparts))
	for _, d := range dayparts {
		position[d.DaypartName] = len(view.Groups)
		view.Groups = append(view.Groups, DaypartScheduleGroup{
			Daypart: d,
			Regular: []EffectiveSchedule{},
			Events:  []EffectiveSchedule{},
		})
	}

	for _, e := range effective {
		i, ok := position[e.DaypartName]
		if !ok || e.DaypartName == "" {
			view.Unassigned = append(view.Unassigned, e)
			continue
		}
		if e.IsEvent() {
			view.Groups[i].Events = append(view.Groups[i].Events, e)
		} else {
			view.Groups[i].Regular = append(view.Groups[i].Regular, e)
		}
	}

	for i := range view.Groups {
		var own []models.ScheduleRecord
		for _, e := range view.Groups[i].Regular {
			if !e.IsInherited {
				own = append(own, e.ScheduleRecord)
			}
		}
		if len(own) > 0 {
			view.Groups[i].UnscheduledDays = RemainingDays(own)
		}
	}

	return view
}

// RemainingDays returns the weekdays not claimed by any of the given regular records.
// Records marked as not running still claim their days.
func RemainingDays(records []models.ScheduleRecord) []int {
	claimed := [7]bool{}
	for _, r := range records {
		if r.IsEvent() {
			continue
		}
		for _, d := range r.DaysOfWeek {
			if d >= 0 && d <= 6 {
				claimed[d] = true
			}
		}
	}

	remaining := []int{}
	for _, d := range AllWeekdays {
		if !claimed[d] {
			remaining = append(remaining, d)
		}
	}
	return remaining
}

// DetectDayConflicts returns the weekdays the candidate shares with sibling regular records
// of the same daypart. The candidate itself is skipped when it is already persisted.
func DetectDayConflicts(candidate models.ScheduleRecord, siblings []models.ScheduleRecord) []int {
	if candidate.IsEvent() {
		return nil
	}

	wanted := [7]bool{}
	for _, d := range candidate.DaysOfWeek {
		if d >= 0 && d <= 6 {
			wanted[d] = true
		}
	}

	hit := [7]bool{}
	for _, s := range siblings {
		if s.IsEvent() {
			continue
		}
		if candidate.ID != 0 && s.ID == candidate.ID {
			continue
		}
		for _, d := range s.DaysOfWeek {
			if d >= 0 && d <= 6 && wanted[d] {
				hit[d] = true
			}
		}
	}

	var conflicts []int
	for _, d := range AllWeekdays {
		if hit[d] {
			conflicts = append(conflicts, d)
		}
	}
	return conflicts
}

// CloneInherited turns an inherited schedule into an unsaved placement-level record carrying
// over every field. Saving it supersedes all store schedules of that daypart.
func CloneInherited(e EffectiveSchedule, placementGroupID uint) models.ScheduleRecord {
	pg := placementGroupID
	return models.ScheduleRecord{
		UUID:             uuid.Nil,
		PlacementGroupID: &pg,
		ScheduleWindow:   copyWindow(e.ScheduleWindow),
	}
}

// DraftRemaining builds an unsaved record for the given days using template's daypart,
// times and schedule name. The draft always runs and carries the default priority.
func DraftRemaining(template models.ScheduleRecord, placementGroupID uint, days []int) models.ScheduleRecord {
	draft := CloneInherited(EffectiveSchedule{ScheduleRecord: template}, placementGroupID)
	draft.DaysOfWeek = toInt32Array(days)
	draft.RunsOnDays = true
	draft.PriorityLevel = 0
	return draft
}

// remainingTemplate picks the lowest-id running record, falling back to the lowest id overall
func remainingTemplate(siblings []models.ScheduleRecord) models.ScheduleRecord {
	sorted := sortedByID(siblings)
	for _, r := range sorted {
		if r.RunsOnDays {
			return r
		}
	}
	return sorted[0]
}

func copyWindow(w models.ScheduleWindow) models.ScheduleWindow {
	out := w
	out.DaysOfWeek = append(pq.Int32Array{}, w.DaysOfWeek...)
	out.EndTime = copyString(w.EndTime)
	out.ScheduleName = copyString(w.ScheduleName)
	out.EventName = copyString(w.EventName)
	if w.EventDate != nil {
		d := *w.EventDate
		out.EventDate = &d
	}
	if w.RecurrenceConfig != nil {
		out.RecurrenceConfig = append([]byte{}, w.RecurrenceConfig...)
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func toInt32Array(days []int) pq.Int32Array {
	out := make(pq.Int32Array, 0, len(days))
	for _, d := range days {
		out = append(out, int32(d))
	}
	return out
}
