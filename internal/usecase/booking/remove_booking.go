package booking

import (
	"context"

	"github.com/boxfit/gym-scheduler/internal/audit"
	domain "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/models"
)

const (
	KindReservation = "reservation"
	KindAttendee    = "attendee"
)

type RemoveBookingInput struct {
	ActorID   uint
	ActorRole string

	Kind string
	ID   uint
}

type RemoveBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewRemoveBooking(
	repo domain.Repository,
	audit Auditor,
) *RemoveBooking {
	return &RemoveBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes a booking record. Users may remove only their own
// reservations; managers may remove any reservation or attendee record.
func (uc *RemoveBooking) Execute(
	ctx context.Context,
	in RemoveBookingInput,
) error {

	switch in.Kind {
	case KindReservation:
		res, err := uc.repo.GetReservation(ctx, in.ID)
		if err != nil {
			return err
		}

		if in.ActorRole != models.RoleManager && res.UserID != in.ActorID {
			return httperr.ErrBusiness("not_allowed")
		}

		if err := uc.repo.DeleteReservation(ctx, in.ID); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "reservation_deleted",
			Entity:   "reservation",
			EntityID: &in.ID,
		})
		return nil

	case KindAttendee:
		if in.ActorRole != models.RoleManager {
			return httperr.ErrBusiness("not_allowed")
		}

		if _, err := uc.repo.GetAttendee(ctx, in.ID); err != nil {
			return err
		}

		if err := uc.repo.DeleteAttendee(ctx, in.ID); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "attendee_removed",
			Entity:   "manager_attendee",
			EntityID: &in.ID,
		})
		return nil

	default:
		return httperr.ErrBusiness("invalid_booking_kind")
	}
}
