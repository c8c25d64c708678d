package booking_test

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/audit"
	domain "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/models"
)

type nopAudit struct{}

func (nopAudit) Dispatch(audit.Event) {}

// fakeRepo is an in-memory booking.Repository used by the use case tests.
type fakeRepo struct {
	mu sync.Mutex

	users        map[uint]*models.User
	slots        map[domain.SlotKey]*models.Slot
	reservations map[uint]*models.Reservation
	attendees    map[uint]*models.ManagerAttendee

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		slots:        map[domain.SlotKey]*models.Slot{},
		reservations: map[uint]*models.Reservation{},
		attendees:    map[uint]*models.ManagerAttendee{},
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) addUser(u models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == 0 {
		u.ID = f.id()
	}
	f.users[u.ID] = &u
	return &u
}

func (f *fakeRepo) addSlot(s models.Slot) *models.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == 0 {
		s.ID = f.id()
	}
	f.slots[domain.SlotKey{Day: s.Day, Time: s.Time}] = &s
	return &s
}

func (f *fakeRepo) addReservation(r models.Reservation) *models.Reservation {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		r.ID = f.id()
	}
	f.reservations[r.ID] = &r
	return &r
}

func (f *fakeRepo) addAttendee(a models.ManagerAttendee) *models.ManagerAttendee {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.id()
	}
	f.attendees[a.ID] = &a
	return &a
}

func (f *fakeRepo) reservationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reservations)
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// -------- booking.Repository --------

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) ListSlotKeys(_ context.Context) ([]domain.SlotKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]domain.SlotKey, 0, len(f.slots))
	for k := range f.slots {
		keys = append(keys, k)
	}
	return keys, nil
}

func (f *fakeRepo) CreateSlots(_ context.Context, keys []domain.SlotKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		if _, ok := f.slots[k]; ok {
			continue
		}
		f.slots[k] = &models.Slot{
			ID:        f.id(),
			Day:       k.Day,
			Time:      k.Time,
			Capacity:  models.DefaultSlotCapacity,
			Available: true,
		}
	}
	return nil
}

func (f *fakeRepo) GetSlot(_ context.Context, day, timeLabel string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[domain.SlotKey{Day: day, Time: timeLabel}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepo) EnsureSlot(ctx context.Context, day, timeLabel string) (*models.Slot, error) {
	if s, err := f.GetSlot(ctx, day, timeLabel); err == nil {
		return s, nil
	}
	if err := f.CreateSlots(ctx, []domain.SlotKey{{Day: day, Time: timeLabel}}); err != nil {
		return nil, err
	}
	return f.GetSlot(ctx, day, timeLabel)
}

func (f *fakeRepo) CountReservations(_ context.Context, day, timeLabel string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reservations {
		if r.Day == day && r.Time == timeLabel {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountAttendees(_ context.Context, day, timeLabel string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.attendees {
		if a.Day == day && a.Time == timeLabel {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) HasReservation(_ context.Context, userID uint, day, timeLabel string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.UserID == userID && r.Day == day && r.Time == timeLabel {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.reservations {
		if existing.UserID == r.UserID && existing.Day == r.Day && existing.Time == r.Time {
			return gorm.ErrDuplicatedKey
		}
	}
	r.ID = f.id()
	cp := *r
	f.reservations[r.ID] = &cp
	return nil
}

func (f *fakeRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRepo) DeleteReservation(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reservations, id)
	return nil
}

func (f *fakeRepo) DeleteUserReservationsBefore(_ context.Context, userID uint, cutoff time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.reservations {
		if r.UserID == userID && r.Date.Before(cutoff) {
			delete(f.reservations, id)
		}
	}
	return nil
}

func (f *fakeRepo) ListUserReservations(_ context.Context, userID uint) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSlotReservations(_ context.Context, day string, date time.Time, timeLabel string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.Day != day || !sameCalendarDay(r.Date, date) {
			continue
		}
		if timeLabel != "" && r.Time != timeLabel {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) HasAttendee(_ context.Context, userID uint, day, timeLabel string, date time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attendees {
		if a.UserID == userID && a.Day == day && a.Time == timeLabel && sameCalendarDay(a.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateAttendee(_ context.Context, a *models.ManagerAttendee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.attendees {
		if existing.UserID == a.UserID && existing.Day == a.Day && existing.Time == a.Time && sameCalendarDay(existing.Date, a.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	a.ID = f.id()
	cp := *a
	f.attendees[a.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAttendee(_ context.Context, id uint) (*models.ManagerAttendee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.attendees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeRepo) DeleteAttendee(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.attendees, id)
	return nil
}

func (f *fakeRepo) ListUserAttendees(_ context.Context, userID uint) ([]models.ManagerAttendee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ManagerAttendee
	for _, a := range f.attendees {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSlotAttendees(_ context.Context, day string, date time.Time, timeLabel string) ([]models.ManagerAttendee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ManagerAttendee
	for _, a := range f.attendees {
		if a.Day != day || !sameCalendarDay(a.Date, date) {
			continue
		}
		if timeLabel != "" && a.Time != timeLabel {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
