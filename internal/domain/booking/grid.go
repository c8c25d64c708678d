package booking

import "github.com/boxfit/gym-scheduler/internal/schedule"

// SlotKey identifies a cell of the weekly grid.
type SlotKey struct {
	Day  string
	Time string
}

// CanonicalGrid returns all 48 (day, time) combinations in grid order.
func CanonicalGrid() []SlotKey {
	keys := make([]SlotKey, 0, len(schedule.Days)*len(schedule.Times))
	for _, d := range schedule.Days {
		for _, t := range schedule.Times {
			keys = append(keys, SlotKey{Day: d, Time: t})
		}
	}
	return keys
}

// MissingSlotKeys computes which canonical combinations are absent from the
// given set. Pure function; the caller inserts the result under an
// on-conflict-ignore policy so concurrent healing attempts are harmless.
func MissingSlotKeys(existing []SlotKey) []SlotKey {
	seen := make(map[SlotKey]struct{}, len(existing))
	for _, k := range existing {
		seen[k] = struct{}{}
	}

	var missing []SlotKey
	for _, k := range CanonicalGrid() {
		if _, ok := seen[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
