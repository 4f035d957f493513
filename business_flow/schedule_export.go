package businessflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var scheduleSheetHeader = []string{"id", "source", "schedule_type", "schedule_name", "days", "time", "start_time", "end_time", "event_name", "event_date", "recurrence", "priority"}

// ExportSchedules renders the effective schedule of a placement group as an Excel workbook
// with one sheet per daypart
func (f *DaypartScheduleFlowImpl) ExportSchedules(ctx context.Context, placementGroupID uint) (string, []byte, error) {
	agg, err := f.AggregateSchedules(ctx, placementGroupID)
	if err != nil {
		return "", nil, err
	}
	view := BuildScheduleView(agg.Effective(), agg.Dayparts)

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	used := map[string]bool{}
	sheets := 0
	addSheet := func(title string, rows []EffectiveSchedule) error {
		name := uniqueSheetName(title, used)
		if sheets == 0 {
			if err := xl.SetSheetName(xl.GetSheetName(0), name); err != nil {
				return err
			}
		} else if _, err := xl.NewSheet(name); err != nil {
			return err
		}
		sheets++

		header := scheduleSheetHeader
		if err := xl.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for i, e := range rows {
			record := scheduleSheetRow(e)
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := xl.SetSheetRow(name, cell, &record); err != nil {
				return err
			}
		}
		return nil
	}

	for _, g := range view.Groups {
		rows := make([]EffectiveSchedule, 0, len(g.Regular)+len(g.Events))
		rows = append(rows, g.Regular...)
		rows = append(rows, g.Events...)
		title := g.Daypart.DisplayLabel
		if strings.TrimSpace(title) == "" {
			title = g.Daypart.DaypartName
		}
		if err := addSheet(title, rows); err != nil {
			return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
		}
	}
	if len(view.Unassigned) > 0 || sheets == 0 {
		if err := addSheet("Unassigned", view.Unassigned); err != nil {
			return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}
	filename := fmt.Sprintf("placement_group_%d_schedules.xlsx", placementGroupID)
	return filename, buf.Bytes(), nil
}

func scheduleSheetRow(e EffectiveSchedule) []string {
	source := "placement"
	if e.IsInherited {
		source = "inherited"
	}
	end := ""
	if e.EndTime != nil {
		end = *e.EndTime
	}
	eventName := ""
	if e.EventName != nil {
		eventName = *e.EventName
	}
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		source,
		e.ScheduleType,
		e.ScheduleNameString(),
		DaySummary(e.Days()),
		FormatTimeRange(e.StartTime, e.EndTime, e.RunsOnDays),
		e.StartTime,
		end,
		eventName,
		e.EventDateString(),
		e.RecurrenceType,
		strconv.Itoa(e.PriorityLevel),
	}
}

const maxSheetNameLength = 31

// uniqueSheetName sanitizes title and appends _N until it differs from every name in used.
// Excel compares sheet names case-insensitively, so used is keyed by the lower-cased name.
func uniqueSheetName(title string, used map[string]bool) string {
	base := sanitizeSheetName(title)
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := "_" + strconv.Itoa(n)
		name = truncateSheetName(base, maxSheetNameLength-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func sanitizeSheetName(name string) string {
	// Excel sheet names cannot contain: : \ / ? * [ ] and must be <= 31 chars
	replacer := strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")
	name = strings.Trim(strings.TrimSpace(replacer.Replace(name)), "'")
	if name == "" {
		return "Sheet"
	}
	return truncateSheetName(name, maxSheetNameLength)
}

// truncateSheetName cuts name to at most limit runes
func truncateSheetName(name string, limit int) string {
	runes := []rune(name)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return name
}
