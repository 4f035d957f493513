package businessflow

import (
	"sort"
	"time"

	"github.com/amirphl/signage-admin/models"
)

const secondsPerDay = 24 * 60 * 60

// ActiveDaypart is the schedule in force at a given instant
type ActiveDaypart struct {
	Daypart  *models.DaypartDefinition
	Schedule EffectiveSchedule
	// StartsAt and EndsAt are local wall-clock bounds; EndsAt is nil when the window runs to the end of the day
	StartsAt time.Time
	EndsAt   *time.Time
}

type activeWindow struct {
	schedule EffectiveSchedule
	start    int
	end      int // exclusive; may exceed secondsPerDay for windows that wrap past midnight
	day      time.Time
}

// ActiveDaypartAt returns the daypart in force at the local time at, or nil when none runs.
//
// For each daypart, event/holiday schedules dated for that day (exact date or yearly on the
// same month and day) replace its regular schedules. A schedule that does not run suppresses
// its daypart for those days. Open-ended windows last until the next start of that day.
// A window whose end is before its start wraps past midnight. When windows overlap the
// highest priority wins, then the latest start.
func ActiveDaypartAt(effective []EffectiveSchedule, at time.Time) *ActiveDaypart {
	now := secondsSinceMidnight(at)
	today := truncateDay(at)
	yesterday := today.AddDate(0, 0, -1)

	var candidates []activeWindow
	for _, w := range windowsForDay(effective, today) {
		if now >= w.start && now < w.end {
			candidates = append(candidates, w)
		}
	}
	for _, w := range windowsForDay(effective, yesterday) {
		if w.end > secondsPerDay && now < w.end-secondsPerDay {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.schedule.PriorityLevel != b.schedule.PriorityLevel {
			return a.schedule.PriorityLevel > b.schedule.PriorityLevel
		}
		if !a.day.Equal(b.day) {
			return a.day.After(b.day)
		}
		if a.start != b.start {
			return a.start > b.start
		}
		return a.schedule.ID < b.schedule.ID
	})

	best := candidates[0]
	active := &ActiveDaypart{
		Daypart:  best.schedule.Daypart,
		Schedule: best.schedule,
		StartsAt: best.day.Add(time.Duration(best.start) * time.Second),
	}
	if best.end < secondsPerDay || best.schedule.EndTime != nil {
		ends := best.day.Add(time.Duration(best.end) * time.Second)
		active.EndsAt = &ends
	}
	return active
}

// windowsForDay returns the running windows of the given local day
func windowsForDay(effective []EffectiveSchedule, day time.Time) []activeWindow {
	weekday := int32(day.Weekday())

	events := make(map[string][]EffectiveSchedule)
	regular := make(map[string][]EffectiveSchedule)
	var order []string
	seen := make(map[string]bool)
	for _, e := range effective {
		name := e.DaypartName
		if name == "" {
			continue
		}
		if e.IsEvent() {
			if !eventMatches(e.ScheduleWindow, day) {
				continue
			}
			events[name] = append(events[name], e)
		} else {
			if !containsDay(e.DaysOfWeek, weekday) {
				continue
			}
			regular[name] = append(regular[name], e)
		}
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	var running []EffectiveSchedule
	for _, name := range order {
		set := regular[name]
		if len(events[name]) > 0 {
			set = events[name]
		}
		suppressed := false
		for _, e := range set {
			if !e.RunsOnDays {
				suppressed = true
				break
			}
		}
		if suppressed {
			continue
		}
		running = append(running, set...)
	}

	starts := make([]int, 0, len(running))
	for _, e := range running {
		if s, ok := secondsOfDay(e.StartTime); ok {
			starts = append(starts, s)
		}
	}
	sort.Ints(starts)

	windows := make([]activeWindow, 0, len(running))
	for _, e := range running {
		start, ok := secondsOfDay(e.StartTime)
		if !ok {
			continue
		}
		end := secondsPerDay
		if e.EndTime != nil && *e.EndTime != "" {
			parsed, ok := secondsOfDay(*e.EndTime)
			if !ok || parsed == start {
				continue
			}
			end = parsed
			if end < start {
				end += secondsPerDay
			}
		} else {
			for _, s := range starts {
				if s > start {
					end = s
					break
				}
			}
		}
		windows = append(windows, activeWindow{schedule: e, start: start, end: end, day: day})
	}
	return windows
}

func eventMatches(w models.ScheduleWindow, day time.Time) bool {
	if w.EventDate == nil {
		return false
	}
	date := time.Time(*w.EventDate)
	if w.RecurrenceType == models.RecurrenceYearly {
		return date.Month() == day.Month() && date.Day() == day.Day()
	}
	return date.Year() == day.Year() && date.Month() == day.Month() && date.Day() == day.Day()
}

func containsDay(days []int32, day int32) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func secondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
