package businessflow

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const doesNotRunLabel = "Does Not Run"

var weekdayShortNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatTime converts a stored HH:MM:SS (or HH:MM) 24-hour time to 12-hour display, e.g. "13:05:00" -> "1:05 PM".
// Minutes are passed through verbatim. Values that do not parse are returned unchanged.
func FormatTime(value string) string {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return value
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return value
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], suffix)
}

// FormatTimeRange renders a schedule window for display.
// A suppression record renders as "Does Not Run" whatever its times are.
func FormatTimeRange(start string, end *string, runsOnDays bool) string {
	if !runsOnDays {
		return doesNotRunLabel
	}
	if end == nil || *end == "" {
		return FormatTime(start)
	}
	return FormatTime(start) + " - " + FormatTime(*end)
}

// NormalizeTime validates an HH:MM or HH:MM:SS 24-hour time and returns it as HH:MM:SS
func NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", ErrInvalidTimeFormat
	}

	limits := []int{23, 59, 59}
	nums := []int{0, 0, 0}
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 || (i > 0 && len(p) != 2) {
			return "", ErrInvalidTimeFormat
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return "", ErrInvalidTimeFormat
		}
		nums[i] = n
	}
	return fmt.Sprintf("%02d:%02d:%02d", nums[0], nums[1], nums[2]), nil
}

// secondsOfDay parses a normalized HH:MM:SS time
func secondsOfDay(value string) (int, bool) {
	normalized, err := NormalizeTime(value)
	if err != nil {
		return 0, false
	}
	h, _ := strconv.Atoi(normalized[0:2])
	m, _ := strconv.Atoi(normalized[3:5])
	s, _ := strconv.Atoi(normalized[6:8])
	return h*3600 + m*60 + s, true
}

// DayLabels returns short weekday names for the given days in Sunday-first order
func DayLabels(days []int) []string {
	sorted := uniqueDays(days)
	labels := make([]string, 0, len(sorted))
	for _, d := range sorted {
		labels = append(labels, weekdayShortNames[d])
	}
	return labels
}

// DaySummary collapses consecutive weekdays into ranges, e.g. [1,2,3,4,5] -> "Mon-Fri"
func DaySummary(days []int) string {
	sorted := uniqueDays(days)
	switch len(sorted) {
	case 0:
		return ""
	case 7:
		return "Every day"
	}

	var parts []string
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		switch {
		case j == i:
			parts = append(parts, weekdayShortNames[sorted[i]])
		case j == i+1:
			parts = append(parts, weekdayShortNames[sorted[i]], weekdayShortNames[sorted[j]])
		default:
			parts = append(parts, weekdayShortNames[sorted[i]]+"-"+weekdayShortNames[sorted[j]])
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

// uniqueDays drops out-of-range and duplicate days and sorts the rest
func uniqueDays(days []int) []int {
	seen := [7]bool{}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
