package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/audit"
	domain "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/httperr"
	"github.com/boxfit/gym-scheduler/internal/models"
	"github.com/boxfit/gym-scheduler/internal/schedule"
	"github.com/boxfit/gym-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	UserID uint
	Role   string

	Day  string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateReservation(
	repo domain.Repository,
	audit Auditor,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
	now time.Time,
) (*models.Reservation, error) {

	if !validators.IsValidDay(in.Day) {
		return nil, httperr.ErrBusiness("invalid_day")
	}
	if !validators.IsValidTimeLabel(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// Managers book freely; clients need approval and a live subscription.
	if in.Role != models.RoleManager {
		user, err := uc.repo.GetUserByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if !user.Approved {
			return nil, httperr.ErrBusiness("pending_approval")
		}
		if user.SubscriptionExpires != nil && user.SubscriptionExpires.Before(now) {
			return nil, httperr.ErrBusiness("subscription_expired")
		}
	}

	exists, err := uc.repo.HasReservation(ctx, in.UserID, in.Day, in.Time)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("duplicate_booking")
	}

	slot, err := uc.repo.EnsureSlot(ctx, in.Day, in.Time)
	if err != nil {
		return nil, err
	}
	if !slot.Available {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// Occupancy is recomputed fresh; the count and the insert below are
	// deliberately separate statements (see DESIGN.md on the accepted race).
	resCount, err := uc.repo.CountReservations(ctx, in.Day, in.Time)
	if err != nil {
		return nil, err
	}
	attCount, err := uc.repo.CountAttendees(ctx, in.Day, in.Time)
	if err != nil {
		return nil, err
	}
	if resCount+attCount >= int64(slot.Capacity) {
		return nil, httperr.ErrBusiness("slot_full")
	}

	date, err := schedule.NextOccurrence(now, in.Day, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	res := &models.Reservation{
		UserID: in.UserID,
		Day:    in.Day,
		Time:   in.Time,
		Date:   date,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness("duplicate_booking")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{"day": in.Day, "time": in.Time},
	})

	return res, nil
}
