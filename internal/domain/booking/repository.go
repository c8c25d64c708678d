package booking

import (
	"context"
	"time"

	"github.com/boxfit/gym-scheduler/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Slot grid --------
	ListSlotKeys(
		ctx context.Context,
	) ([]SlotKey, error)

	CreateSlots(
		ctx context.Context,
		keys []SlotKey,
	) error

	GetSlot(
		ctx context.Context,
		day string,
		timeLabel string,
	) (*models.Slot, error)

	// EnsureSlot materializes the default slot when the cell has not been
	// persisted yet.
	EnsureSlot(
		ctx context.Context,
		day string,
		timeLabel string,
	) (*models.Slot, error)

	// -------- Occupancy --------
	CountReservations(
		ctx context.Context,
		day string,
		timeLabel string,
	) (int64, error)

	CountAttendees(
		ctx context.Context,
		day string,
		timeLabel string,
	) (int64, error)

	// -------- Reservation --------
	HasReservation(
		ctx context.Context,
		userID uint,
		day string,
		timeLabel string,
	) (bool, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	DeleteReservation(
		ctx context.Context,
		id uint,
	) error

	DeleteUserReservationsBefore(
		ctx context.Context,
		userID uint,
		cutoff time.Time,
	) error

	ListUserReservations(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)

	ListSlotReservations(
		ctx context.Context,
		day string,
		date time.Time,
		timeLabel string,
	) ([]models.Reservation, error)

	// -------- Manager attendee --------
	HasAttendee(
		ctx context.Context,
		userID uint,
		day string,
		timeLabel string,
		date time.Time,
	) (bool, error)

	CreateAttendee(
		ctx context.Context,
		a *models.ManagerAttendee,
	) error

	GetAttendee(
		ctx context.Context,
		id uint,
	) (*models.ManagerAttendee, error)

	DeleteAttendee(
		ctx context.Context,
		id uint,
	) error

	ListUserAttendees(
		ctx context.Context,
		userID uint,
	) ([]models.ManagerAttendee, error)

	ListSlotAttendees(
		ctx context.Context,
		day string,
		date time.Time,
		timeLabel string,
	) ([]models.ManagerAttendee, error)
}
