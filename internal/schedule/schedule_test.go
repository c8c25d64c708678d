package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxfit/gym-scheduler/internal/schedule"
)

func TestParseClock(t *testing.T) {
	t.Run("valid labels", func(t *testing.T) {
		cases := []struct {
			label  string
			hour   int
			minute int
		}{
			{"6:00 AM", 6, 0},
			{"9:30 AM", 9, 30},
			{"12:00 PM", 12, 0},
			{"12:30 AM", 0, 30},
			{"4:00 PM", 16, 0},
			{"11:45 PM", 23, 45},
		}

		for _, tc := range cases {
			h, m, err := schedule.ParseClock(tc.label)
			require.NoError(t, err, tc.label)
			assert.Equal(t, tc.hour, h, tc.label)
			assert.Equal(t, tc.minute, m, tc.label)
		}
	})

	t.Run("invalid labels", func(t *testing.T) {
		for _, label := range []string{"", "6:00", "6:00 am", "13:00 PM", "0:00 AM", "6:5 PM", "06:00AM", "noon"} {
			_, _, err := schedule.ParseClock(label)
			assert.Error(t, err, label)
		}
	})
}

func TestNextOccurrence(t *testing.T) {
	loc := time.Local

	t.Run("later weekday in same week", func(t *testing.T) {
		// Wednesday -> next Monday.
		now := time.Date(2026, 8, 26, 10, 0, 0, 0, loc)
		require.Equal(t, time.Wednesday, now.Weekday())

		got, err := schedule.NextOccurrence(now, "Monday", "6:00 AM")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 31, 6, 0, 0, 0, loc), got)
		assert.Equal(t, time.Monday, got.Weekday())
	})

	t.Run("same weekday uses today", func(t *testing.T) {
		// Monday evening, booking Monday 6 AM still resolves to today.
		now := time.Date(2026, 8, 31, 20, 0, 0, 0, loc)
		require.Equal(t, time.Monday, now.Weekday())

		got, err := schedule.NextOccurrence(now, "Monday", "6:00 AM")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 31, 6, 0, 0, 0, loc), got)
	})

	t.Run("seconds zeroed", func(t *testing.T) {
		now := time.Date(2026, 8, 26, 10, 12, 44, 991, loc)

		got, err := schedule.NextOccurrence(now, "Friday", "5:00 PM")
		require.NoError(t, err)
		assert.Zero(t, got.Second())
		assert.Zero(t, got.Nanosecond())
		assert.Equal(t, 17, got.Hour())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		now := time.Date(2026, 8, 26, 10, 0, 0, 0, loc)

		_, err := schedule.NextOccurrence(now, "Sunday", "6:00 AM")
		assert.Error(t, err)

		_, err = schedule.NextOccurrence(now, "Monday", "25:00 AM")
		assert.Error(t, err)
	})
}

func TestWeekStart(t *testing.T) {
	loc := time.Local
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, loc)

	cases := []struct {
		name string
		now  time.Time
	}{
		{"monday itself", time.Date(2026, 8, 24, 9, 30, 0, 0, loc)},
		{"midweek", time.Date(2026, 8, 26, 23, 59, 59, 0, loc)},
		{"sunday belongs to previous monday", time.Date(2026, 8, 30, 12, 0, 0, 0, loc)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, monday, schedule.WeekStart(tc.now))
		})
	}
}

func TestGridShape(t *testing.T) {
	assert.Len(t, schedule.Days, 6)
	assert.Len(t, schedule.Times, 8)
	assert.Equal(t, -1, schedule.DayIndex("Sunday"))
	assert.Equal(t, 0, schedule.DayIndex("Monday"))

	for _, d := range schedule.Days {
		assert.True(t, schedule.IsDay(d))
	}
	for _, tl := range schedule.Times {
		assert.True(t, schedule.IsTimeLabel(tl))
	}
}
