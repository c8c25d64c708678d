package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	booking "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Slot grid
// --------------------------------------------------

func (r *BookingGormRepository) ListSlotKeys(
	ctx context.Context,
) ([]booking.SlotKey, error) {

	var keys []booking.SlotKey
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Select("day", "time").
		Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *BookingGormRepository) CreateSlots(
	ctx context.Context,
	keys []booking.SlotKey,
) error {

	if len(keys) == 0 {
		return nil
	}

	slots := make([]models.Slot, 0, len(keys))
	for _, k := range keys {
		slots = append(slots, models.Slot{
			Day:       k.Day,
			Time:      k.Time,
			Capacity:  models.DefaultSlotCapacity,
			Available: true,
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slots).Error
}

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	day string,
	timeLabel string,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Where("day = ? AND time = ?", day, timeLabel).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) EnsureSlot(
	ctx context.Context,
	day string,
	timeLabel string,
) (*models.Slot, error) {

	slot, err := r.GetSlot(ctx, day, timeLabel)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Lost races with another materializer are fine; re-read after insert.
	if err := r.CreateSlots(ctx, []booking.SlotKey{{Day: day, Time: timeLabel}}); err != nil {
		return nil, err
	}

	return r.GetSlot(ctx, day, timeLabel)
}

// --------------------------------------------------
// Occupancy
// --------------------------------------------------

func (r *BookingGormRepository) CountReservations(
	ctx context.Context,
	day string,
	timeLabel string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("day = ? AND time = ?", day, timeLabel).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) CountAttendees(
	ctx context.Context,
	day string,
	timeLabel string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ManagerAttendee{}).
		Where("day = ? AND time = ?", day, timeLabel).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *BookingGormRepository) HasReservation(
	ctx context.Context,
	userID uint,
	day string,
	timeLabel string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("user_id = ? AND day = ? AND time = ?", userID, day, timeLabel).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *BookingGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *BookingGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Reservation{}, id).Error
}

func (r *BookingGormRepository) DeleteUserReservationsBefore(
	ctx context.Context,
	userID uint,
	cutoff time.Time,
) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND date < ?", userID, cutoff).
		Delete(&models.Reservation{}).Error
}

func (r *BookingGormRepository) ListUserReservations(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListSlotReservations(
	ctx context.Context,
	day string,
	date time.Time,
	timeLabel string,
) ([]models.Reservation, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	q := r.db.WithContext(ctx).
		Preload("User").
		Where("day = ? AND date >= ? AND date < ?", day, dayStart, dayEnd)

	if timeLabel != "" {
		q = q.Where("time = ?", timeLabel)
	}

	var out []models.Reservation
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Manager attendee
// --------------------------------------------------

func (r *BookingGormRepository) HasAttendee(
	ctx context.Context,
	userID uint,
	day string,
	timeLabel string,
	date time.Time,
) (bool, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ManagerAttendee{}).
		Where(
			"user_id = ? AND day = ? AND time = ? AND date >= ? AND date < ?",
			userID, day, timeLabel, dayStart, dayEnd,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateAttendee(
	ctx context.Context,
	a *models.ManagerAttendee,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *BookingGormRepository) GetAttendee(
	ctx context.Context,
	id uint,
) (*models.ManagerAttendee, error) {

	var a models.ManagerAttendee
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BookingGormRepository) DeleteAttendee(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.ManagerAttendee{}, id).Error
}

func (r *BookingGormRepository) ListUserAttendees(
	ctx context.Context,
	userID uint,
) ([]models.ManagerAttendee, error) {

	var out []models.ManagerAttendee
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListSlotAttendees(
	ctx context.Context,
	day string,
	date time.Time,
	timeLabel string,
) ([]models.ManagerAttendee, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	q := r.db.WithContext(ctx).
		Preload("User").
		Where("day = ? AND date >= ? AND date < ?", day, dayStart, dayEnd)

	if timeLabel != "" {
		q = q.Where("time = ?", timeLabel)
	}

	var out []models.ManagerAttendee
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
