package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	booking "github.com/boxfit/gym-scheduler/internal/domain/booking"
)

func TestMerge(t *testing.T) {
	loc := time.Local
	monday := time.Date(2026, 8, 31, 6, 0, 0, 0, loc)
	tuesday := time.Date(2026, 9, 1, 7, 0, 0, 0, loc)

	t.Run("manager entry shadows same-user reservation", func(t *testing.T) {
		reservations := []booking.Entry{
			{ID: 1, UserID: 10, Day: "Monday", Time: "6:00 AM", Date: monday},
		}
		managers := []booking.Entry{
			{ID: 5, UserID: 10, Day: "Monday", Time: "6:00 AM", Date: monday},
		}

		merged := booking.Merge(reservations, managers)
		require.Len(t, merged, 1)
		assert.Equal(t, booking.SourceManager, merged[0].Source)
		assert.Equal(t, uint(5), merged[0].ID)
	})

	t.Run("different users both appear", func(t *testing.T) {
		reservations := []booking.Entry{
			{ID: 1, UserID: 10, Day: "Monday", Time: "6:00 AM", Date: monday},
		}
		managers := []booking.Entry{
			{ID: 5, UserID: 11, Day: "Monday", Time: "6:00 AM", Date: monday},
		}

		merged := booking.Merge(reservations, managers)
		require.Len(t, merged, 2)
	})

	t.Run("sorted ascending by date", func(t *testing.T) {
		reservations := []booking.Entry{
			{ID: 2, UserID: 10, Day: "Tuesday", Time: "7:00 AM", Date: tuesday},
			{ID: 1, UserID: 10, Day: "Monday", Time: "6:00 AM", Date: monday},
		}

		merged := booking.Merge(reservations, nil)
		require.Len(t, merged, 2)
		assert.Equal(t, "Monday", merged[0].Day)
		assert.Equal(t, "Tuesday", merged[1].Day)
		for _, e := range merged {
			assert.Equal(t, booking.SourceReservation, e.Source)
		}
	})

	t.Run("clock difference on the same calendar day still shadows", func(t *testing.T) {
		// Manager records may carry a date-only timestamp; the occurrence
		// key compares calendar days.
		dateOnly := time.Date(2026, 8, 31, 0, 0, 0, 0, loc)

		reservations := []booking.Entry{
			{ID: 1, UserID: 10, Day: "Monday", Time: "6:00 AM", Date: monday},
		}
		managers := []booking.Entry{
			{ID: 7, UserID: 10, Day: "Monday", Time: "6:00 AM", Date: dateOnly},
		}

		merged := booking.Merge(reservations, managers)
		require.Len(t, merged, 1)
		assert.Equal(t, booking.SourceManager, merged[0].Source)
	})
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 14, booking.Remaining(14, 0))
	assert.Equal(t, 1, booking.Remaining(14, 13))
	assert.Equal(t, 0, booking.Remaining(14, 14))
	assert.Equal(t, 0, booking.Remaining(14, 20))
}
