package booking

import (
	"context"
	"time"

	domain "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/validators"
)

type ListSlotBookingsInput struct {
	Day  string
	Date time.Time

	// Optional; empty lists every class time of the day.
	Time string
}

type ListSlotBookings struct {
	repo domain.Repository
}

func NewListSlotBookings(repo domain.Repository) *ListSlotBookings {
	return &ListSlotBookings{repo: repo}
}

// Execute is the manager view of who is in a class on a concrete date,
// with manager-assigned attendance shadowing same-user reservations.
func (uc *ListSlotBookings) Execute(
	ctx context.Context,
	in ListSlotBookingsInput,
) ([]domain.Entry, error) {

	if !validators.IsValidDay(in.Day) {
		return nil, httperr.ErrBusiness("invalid_day")
	}
	if in.Time != "" && !validators.IsValidTimeLabel(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	reservations, err := uc.repo.ListSlotReservations(ctx, in.Day, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	attendees, err := uc.repo.ListSlotAttendees(ctx, in.Day, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	resEntries := make([]domain.Entry, 0, len(reservations))
	for _, r := range reservations {
		resEntries = append(resEntries, domain.Entry{
			ID:       r.ID,
			UserID:   r.UserID,
			UserName: r.User.Name,
			Day:      r.Day,
			Time:     r.Time,
			Date:     r.Date,
			Source:   domain.SourceReservation,
		})
	}

	attEntries := make([]domain.Entry, 0, len(attendees))
	for _, a := range attendees {
		attEntries = append(attEntries, domain.Entry{
			ID:            a.ID,
			UserID:        a.UserID,
			UserName:      a.User.Name,
			Day:           a.Day,
			Time:          a.Time,
			Date:          a.Date,
			Source:        domain.SourceManager,
			ReservationID: a.ReservationID,
		})
	}

	return domain.Merge(resEntries, attEntries), nil
}
