package booking

import (
	"sort"
	"time"
)

const (
	SourceReservation = "reservation"
	SourceManager     = "manager"
)

// Entry is one row of the merged booking view, tagged with the record it
// came from.
type Entry struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	UserName string    `json:"user_name,omitempty"`
	Day      string    `json:"day"`
	Time     string    `json:"time"`
	Date     time.Time `json:"date"`
	Source   string    `json:"source"`

	// Set on manager entries that were promoted from a reservation.
	ReservationID *uint `json:"reservation_id,omitempty"`
}

type entryKey struct {
	userID uint
	day    string
	time   string
	date   string
}

func keyOf(e Entry) entryKey {
	return entryKey{
		userID: e.UserID,
		day:    e.Day,
		time:   e.Time,
		date:   e.Date.Format("2006-01-02"),
	}
}

// Merge combines reservation and manager entries into a single view.
// When both kinds exist for the same (user, day, time, date) occurrence the
// manager entry is authoritative and the reservation is dropped, so the
// occurrence appears (and counts) exactly once. Output is ascending by date.
func Merge(reservations, managers []Entry) []Entry {
	taken := make(map[entryKey]struct{}, len(managers))

	out := make([]Entry, 0, len(reservations)+len(managers))
	for _, e := range managers {
		e.Source = SourceManager
		taken[keyOf(e)] = struct{}{}
		out = append(out, e)
	}

	for _, e := range reservations {
		e.Source = SourceReservation
		if _, shadowed := taken[keyOf(e)]; shadowed {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Remaining is the number of free seats, never negative.
func Remaining(capacity int, occupancy int64) int {
	if r := capacity - int(occupancy); r > 0 {
		return r
	}
	return 0
}
