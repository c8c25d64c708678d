package booking

import (
	"context"
	"log"
	"time"

	domain "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/schedule"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

// Execute returns the user's merged bookings from the current week onward.
// Reservations dated before the week start are purged in the background as
// a side effect; manager attendee records are filtered from the view but
// never deleted here.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
	now time.Time,
) ([]domain.Entry, error) {

	weekStart := schedule.WeekStart(now)

	reservations, err := uc.repo.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, err
	}

	attendees, err := uc.repo.ListUserAttendees(ctx, userID)
	if err != nil {
		return nil, err
	}

	stale := false
	resEntries := make([]domain.Entry, 0, len(reservations))
	for _, r := range reservations {
		if r.Date.Before(weekStart) {
			stale = true
			continue
		}
		resEntries = append(resEntries, domain.Entry{
			ID:     r.ID,
			UserID: r.UserID,
			Day:    r.Day,
			Time:   r.Time,
			Date:   r.Date,
			Source: domain.SourceReservation,
		})
	}

	attEntries := make([]domain.Entry, 0, len(attendees))
	for _, a := range attendees {
		if a.Date.Before(weekStart) {
			continue
		}
		attEntries = append(attEntries, domain.Entry{
			ID:            a.ID,
			UserID:        a.UserID,
			Day:           a.Day,
			Time:          a.Time,
			Date:          a.Date,
			Source:        domain.SourceManager,
			ReservationID: a.ReservationID,
		})
	}

	if stale {
		// Best-effort cleanup; never blocks or fails the read.
		go func() {
			sweepCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.repo.DeleteUserReservationsBefore(sweepCtx, userID, weekStart); err != nil {
				log.Printf("retention sweep failed for user %d: %v", userID, err)
			}
		}()
	}

	return domain.Merge(resEntries, attEntries), nil
}
