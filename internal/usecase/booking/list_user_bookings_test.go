package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/models"
	booking "github.com/boxfit/gym-scheduler/internal/usecase/booking"
)

func TestListUserBookings(t *testing.T) {
	loc := time.Local
	// testNow is Wednesday 2026-08-26; week starts Monday 2026-08-24.
	thisMonday := time.Date(2026, 8, 24, 6, 0, 0, 0, loc)
	thisFriday := time.Date(2026, 8, 28, 17, 0, 0, 0, loc)
	lastWeek := time.Date(2026, 8, 17, 6, 0, 0, 0, loc)

	t.Run("manager entry shadows the matching reservation", func(t *testing.T) {
		repo := newFakeRepo()
		user := approvedClient(repo)
		repo.addReservation(models.Reservation{UserID: user.ID, Day: "Friday", Time: "5:00 PM", Date: thisFriday})
		repo.addAttendee(models.ManagerAttendee{UserID: user.ID, Day: "Friday", Time: "5:00 PM", Date: thisFriday, AddedBy: 99})

		uc := booking.NewListUserBookings(repo)
		entries, err := uc.Execute(context.Background(), user.ID, testNow)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.SourceManager, entries[0].Source)
	})

	t.Run("sorted ascending by date", func(t *testing.T) {
		repo := newFakeRepo()
		user := approvedClient(repo)
		repo.addReservation(models.Reservation{UserID: user.ID, Day: "Friday", Time: "5:00 PM", Date: thisFriday})
		repo.addReservation(models.Reservation{UserID: user.ID, Day: "Monday", Time: "6:00 AM", Date: thisMonday})

		uc := booking.NewListUserBookings(repo)
		entries, err := uc.Execute(context.Background(), user.ID, testNow)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Monday", entries[0].Day)
		assert.Equal(t, "Friday", entries[1].Day)
	})

	t.Run("stale reservation is hidden and swept from storage", func(t *testing.T) {
		repo := newFakeRepo()
		user := approvedClient(repo)
		repo.addReservation(models.Reservation{UserID: user.ID, Day: "Monday", Time: "6:00 AM", Date: lastWeek})
		repo.addReservation(models.Reservation{UserID: user.ID, Day: "Friday", Time: "5:00 PM", Date: thisFriday})

		uc := booking.NewListUserBookings(repo)
		entries, err := uc.Execute(context.Background(), user.ID, testNow)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Friday", entries[0].Day)

		// The sweep runs asynchronously after the read returns.
		assert.Eventually(t, func() bool {
			return repo.reservationCount() == 1
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("stale attendee is hidden but never deleted", func(t *testing.T) {
		repo := newFakeRepo()
		user := approvedClient(repo)
		repo.addAttendee(models.ManagerAttendee{UserID: user.ID, Day: "Monday", Time: "6:00 AM", Date: lastWeek, AddedBy: 99})

		uc := booking.NewListUserBookings(repo)
		entries, err := uc.Execute(context.Background(), user.ID, testNow)

		require.NoError(t, err)
		assert.Empty(t, entries)

		atts, err := repo.ListUserAttendees(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Len(t, atts, 1)
	})
}

func TestListSlotBookings(t *testing.T) {
	loc := time.Local
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, loc)
	occurrence := time.Date(2026, 8, 31, 6, 0, 0, 0, loc)

	t.Run("merges both kinds with manager precedence", func(t *testing.T) {
		repo := newFakeRepo()
		a := approvedClient(repo)
		b := approvedClient(repo)
		repo.addReservation(models.Reservation{UserID: a.ID, Day: "Monday", Time: "6:00 AM", Date: occurrence})
		repo.addReservation(models.Reservation{UserID: b.ID, Day: "Monday", Time: "6:00 AM", Date: occurrence})
		repo.addAttendee(models.ManagerAttendee{UserID: b.ID, Day: "Monday", Time: "6:00 AM", Date: occurrence, AddedBy: 99})

		uc := booking.NewListSlotBookings(repo)
		entries, err := uc.Execute(context.Background(), booking.ListSlotBookingsInput{
			Day: "Monday", Date: date, Time: "6:00 AM",
		})

		require.NoError(t, err)
		require.Len(t, entries, 2)

		bySource := map[string]int{}
		for _, e := range entries {
			bySource[e.Source]++
		}
		assert.Equal(t, 1, bySource[domain.SourceReservation])
		assert.Equal(t, 1, bySource[domain.SourceManager])
	})

	t.Run("time filter narrows the day", func(t *testing.T) {
		repo := newFakeRepo()
		u := approvedClient(repo)
		repo.addReservation(models.Reservation{UserID: u.ID, Day: "Monday", Time: "6:00 AM", Date: occurrence})
		repo.addReservation(models.Reservation{UserID: u.ID, Day: "Monday", Time: "7:00 AM", Date: occurrence.Add(time.Hour)})

		uc := booking.NewListSlotBookings(repo)
		entries, err := uc.Execute(context.Background(), booking.ListSlotBookingsInput{
			Day: "Monday", Date: date, Time: "7:00 AM",
		})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "7:00 AM", entries[0].Time)
	})
}
