package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"00:00:00": "12:00 AM",
		"06:30:00": "6:30 AM",
		"12:00:00": "12:00 PM",
		"13:05:00": "1:05 PM",
		"23:59":    "11:59 PM",
		"garbage":  "garbage",
		"25:00:00": "25:00:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatTime(in), in)
	}
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "6:00 AM - 11:00 AM", FormatTimeRange("06:00:00", strPtr("11:00:00"), true))
	assert.Equal(t, "6:00 AM", FormatTimeRange("06:00:00", nil, true))
	assert.Equal(t, "6:00 AM", FormatTimeRange("06:00:00", strPtr(""), true))
	assert.Equal(t, "Does Not Run", FormatTimeRange("06:00:00", strPtr("11:00:00"), false))
}

func TestNormalizeTime(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cases := map[string]string{
			"6:00":     "06:00:00",
			"06:00":    "06:00:00",
			"23:59:59": "23:59:59",
			" 07:15 ":  "07:15:00",
		}
		for in, want := range cases {
			got, err := NormalizeTime(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []string{"", "6", "24:00", "12:60", "12:5", "12:00:60", "a:00", "1:2:3:4", "123:00"} {
			_, err := NormalizeTime(in)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
			assert.True(t, IsValidation(err), in)
		}
	})
}

func TestDayLabels(t *testing.T) {
	assert.Equal(t, []string{"Sun", "Wed", "Sat"}, DayLabels([]int{6, 0, 3, 3}))
	assert.Equal(t, []string{}, DayLabels([]int{7, -1}))
}

func TestDaySummary(t *testing.T) {
	cases := []struct {
		days []int
		want string
	}{
		{[]int{1, 2, 3, 4, 5}, "Mon-Fri"},
		{[]int{0, 1, 2, 3, 4, 5, 6}, "Every day"},
		{[]int{1, 2}, "Mon, Tue"},
		{[]int{0, 6}, "Sun, Sat"},
		{[]int{1, 2, 3, 5}, "Mon-Wed, Fri"},
		{[]int{5, 4, 3, 3}, "Wed-Fri"},
		{nil, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaySummary(tc.days), "%v", tc.days)
	}
}
