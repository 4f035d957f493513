package businessflow

import (
	"testing"

	"github.com/amirphl/signage-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEffective(t *testing.T) {
	breakfast := daypart(1, "breakfast", 10)
	lunch := daypart(2, "lunch", 20)
	defs := []*models.DaypartDefinition{breakfast, lunch}

	t.Run("NoOverridesInheritsEverything", func(t *testing.T) {
		store := []models.ScheduleRecord{
			regular(11, 2, []int32{1, 2, 3, 4, 5}, "11:00:00", strPtr("14:00:00")),
			regular(10, 1, []int32{1, 2, 3, 4, 5}, "06:00:00", strPtr("11:00:00")),
		}
		effective := MergeEffective(store, nil, defs)
		require.Len(t, effective, 2)
		assert.Equal(t, []uint{10, 11}, ids(effective))
		for _, e := range effective {
			assert.True(t, e.IsInherited)
		}
		assert.Equal(t, "breakfast", effective[0].DaypartName)
		assert.Same(t, breakfast, effective[0].Daypart)
	})

	t.Run("OverrideSupersedesWholeDaypart", func(t *testing.T) {
		store := []models.ScheduleRecord{
			regular(10, 1, []int32{1, 2, 3, 4, 5}, "06:00:00", strPtr("11:00:00")),
			regular(12, 1, []int32{0, 6}, "07:00:00", strPtr("12:00:00")),
			regular(11, 2, []int32{1, 2, 3, 4, 5}, "11:00:00", strPtr("14:00:00")),
		}
		overrides := []models.ScheduleRecord{
			placement(regular(100, 1, []int32{1}, "05:00:00", strPtr("10:00:00")), 7),
		}
		effective := MergeEffective(store, overrides, defs)
		assert.Equal(t, []uint{100, 11}, ids(effective))
		assert.False(t, effective[0].IsInherited)
		assert.True(t, effective[1].IsInherited)
	})

	t.Run("EventOverrideLeavesRegularInherited", func(t *testing.T) {
		store := []models.ScheduleRecord{
			regular(10, 1, []int32{1, 2, 3, 4, 5}, "06:00:00", strPtr("11:00:00")),
			event(20, 1, "New Year", "2026-01-01", "08:00:00", strPtr("12:00:00")),
			event(21, 1, "Labor Day", "2026-09-07", "08:00:00", strPtr("12:00:00")),
		}
		overrides := []models.ScheduleRecord{
			placement(event(200, 1, "New Year", "2026-01-01", "09:00:00", strPtr("13:00:00")), 7),
		}
		effective := MergeEffective(store, overrides, defs)
		assert.Equal(t, []uint{200, 10, 21}, ids(effective))
	})

	t.Run("PlacementRecordsAlwaysKept", func(t *testing.T) {
		overrides := []models.ScheduleRecord{
			placement(named(regular(101, 1, []int32{1}, "06:00:00", nil), "a"), 7),
			placement(named(regular(100, 1, []int32{1}, "06:00:00", nil), "a"), 7),
		}
		effective := MergeEffective(nil, overrides, defs)
		assert.Equal(t, []uint{100, 101}, ids(effective))
	})

	t.Run("NamesWithUnderscoresDoNotCollide", func(t *testing.T) {
		lateNight := daypart(3, "late_night", 30)
		late := daypart(4, "late", 40)
		store := []models.ScheduleRecord{
			named(regular(10, 3, []int32{5}, "22:00:00", nil), "x"),
			named(regular(11, 4, []int32{5}, "22:00:00", nil), "night_x"),
		}
		overrides := []models.ScheduleRecord{
			placement(named(regular(100, 4, []int32{6}, "22:00:00", nil), "night_x"), 7),
		}
		effective := MergeEffective(store, overrides, []*models.DaypartDefinition{lateNight, late})
		assert.Equal(t, []uint{100, 10}, ids(effective))
	})

	t.Run("OrphanDefinitionsDoNotCollide", func(t *testing.T) {
		store := []models.ScheduleRecord{
			regular(10, 98, []int32{1}, "06:00:00", nil),
		}
		overrides := []models.ScheduleRecord{
			placement(regular(100, 99, []int32{1}, "06:00:00", nil), 7),
		}
		effective := MergeEffective(store, overrides, defs)
		assert.Equal(t, []uint{100, 10}, ids(effective))
		assert.Empty(t, effective[0].DaypartName)
		assert.Nil(t, effective[1].Daypart)
	})

	t.Run("SameNameDifferentDefinitionSupersedes", func(t *testing.T) {
		globalLunch := daypart(2, "lunch", 20)
		storeLunch := daypart(5, "lunch", 20)
		store := []models.ScheduleRecord{
			regular(11, 2, []int32{1, 2, 3}, "11:00:00", strPtr("14:00:00")),
		}
		overrides := []models.ScheduleRecord{
			placement(regular(100, 5, []int32{1}, "12:00:00", strPtr("15:00:00")), 7),
		}
		effective := MergeEffective(store, overrides, []*models.DaypartDefinition{globalLunch, storeLunch})
		assert.Equal(t, []uint{100}, ids(effective))
	})

	t.Run("OverrideSupersedesDifferentlyNamedStoreRecords", func(t *testing.T) {
		store := []models.ScheduleRecord{
			named(regular(10, 2, []int32{1, 2, 3, 4, 5}, "11:00:00", strPtr("14:00:00")), "AM"),
			named(regular(11, 2, []int32{0, 6}, "12:00:00", strPtr("15:00:00")), "PM"),
		}
		overrides := []models.ScheduleRecord{
			placement(named(regular(100, 2, []int32{1, 2, 3, 4, 5}, "11:30:00", nil), "Holiday Lunch"), 7),
		}
		effective := MergeEffective(store, overrides, defs)
		assert.Equal(t, []uint{100}, ids(effective))
		assert.False(t, effective[0].IsInherited)
	})

	t.Run("LunchInheritedUntilPlacementOverrides", func(t *testing.T) {
		lunchDef := daypart(3, "Lunch", 20)
		lunchDefs := []*models.DaypartDefinition{lunchDef}
		store := []models.ScheduleRecord{
			regular(10, 3, []int32{1, 2, 3, 4, 5}, "11:00:00", strPtr("14:00:00")),
		}

		effective := MergeEffective(store, nil, lunchDefs)
		require.Len(t, effective, 1)
		assert.True(t, effective[0].IsInherited)
		assert.Equal(t, "Lunch", effective[0].DaypartName)
		assert.Equal(t, "11:00 AM - 2:00 PM", FormatTimeRange(effective[0].StartTime, effective[0].EndTime, effective[0].RunsOnDays))
		assert.Equal(t, "Mon-Fri", DaySummary(effective[0].Days()))

		overrides := []models.ScheduleRecord{
			placement(named(regular(100, 3, []int32{1, 2, 3, 4, 5}, "11:30:00", nil), "Holiday Lunch"), 7),
		}
		effective = MergeEffective(store, overrides, lunchDefs)
		require.Len(t, effective, 1)
		assert.Equal(t, uint(100), effective[0].ID)
		assert.False(t, effective[0].IsInherited)
		assert.Equal(t, "Holiday Lunch", effective[0].ScheduleNameString())

		view := BuildScheduleView(effective, lunchDefs)
		require.Len(t, view.Groups, 1)
		require.Len(t, view.Groups[0].Regular, 1)
		assert.Equal(t, uint(100), view.Groups[0].Regular[0].ID)
		assert.False(t, view.Groups[0].Regular[0].IsInherited)
	})

	t.Run("InputsAreNotModified", func(t *testing.T) {
		store := []models.ScheduleRecord{
			regular(12, 2, []int32{1}, "11:00:00", nil),
			regular(10, 1, []int32{1}, "06:00:00", nil),
		}
		overrides := []models.ScheduleRecord{
			placement(regular(101, 1, []int32{2}, "06:00:00", nil), 7),
			placement(regular(100, 1, []int32{1}, "06:00:00", nil), 7),
		}
		MergeEffective(store, overrides, defs)
		assert.Equal(t, uint(12), store[0].ID)
		assert.Equal(t, uint(101), overrides[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		effective := MergeEffective(nil, nil, defs)
		assert.NotNil(t, effective)
		assert.Empty(t, effective)
	})
}
