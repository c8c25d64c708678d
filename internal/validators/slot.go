package validators

import "github.com/boxfit/gym-scheduler/internal/schedule"

// Slot field validation. Day must be one of the six canonical grid days.
// Time only needs to match the 12-hour label shape; managers may add class
// times beyond the canonical eight.

func IsValidDay(day string) bool {
	return schedule.IsDay(day)
}

func IsValidTimeLabel(label string) bool {
	return schedule.IsTimeLabel(label)
}

func IsValidCapacity(capacity int) bool {
	return capacity >= 1
}
