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

type CreateAttendeeInput struct {
	ManagerID uint
	UserID    uint

	Day  string
	Time string

	// Zero value means "next occurrence of day/time".
	Date time.Time

	ReservationID *uint
}

type CreateAttendee struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateAttendee(
	repo domain.Repository,
	audit Auditor,
) *CreateAttendee {
	return &CreateAttendee{
		repo:  repo,
		audit: audit,
	}
}

// Execute records manager-assigned attendance. Capacity is intentionally
// not checked: a manager squeezing someone into a full class is allowed.
func (uc *CreateAttendee) Execute(
	ctx context.Context,
	in CreateAttendeeInput,
	now time.Time,
) (*models.ManagerAttendee, error) {

	if !validators.IsValidDay(in.Day) {
		return nil, httperr.ErrBusiness("invalid_day")
	}
	if !validators.IsValidTimeLabel(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		var err error
		date, err = schedule.NextOccurrence(now, in.Day, in.Time)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
	}

	exists, err := uc.repo.HasAttendee(ctx, in.UserID, in.Day, in.Time, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("duplicate_attendee")
	}

	a := &models.ManagerAttendee{
		UserID:        in.UserID,
		Day:           in.Day,
		Time:          in.Time,
		Date:          date,
		AddedBy:       in.ManagerID,
		ReservationID: in.ReservationID,
	}

	if err := uc.repo.CreateAttendee(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness("duplicate_attendee")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ManagerID,
		Action:   "attendee_added",
		Entity:   "manager_attendee",
		EntityID: &a.ID,
		Metadata: map[string]any{"user_id": in.UserID, "day": in.Day, "time": in.Time},
	})

	return a, nil
}
