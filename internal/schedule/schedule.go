package schedule

import (
	"fmt"
	"regexp"
	"time"
)

// The weekly class grid is fixed: 6 days times 8 class times. Sunday is a
// rest day and never carries slots.

var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var Times = []string{
	"6:00 AM",
	"7:00 AM",
	"8:00 AM",
	"9:00 AM",
	"12:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
}

var weekdays = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

var timeLabelRe = regexp.MustCompile(`^(\d{1,2}):([0-5]\d) (AM|PM)$`)

func IsDay(name string) bool {
	_, ok := weekdays[name]
	return ok
}

func IsTimeLabel(label string) bool {
	_, _, err := ParseClock(label)
	return err == nil
}

// DayIndex returns the position of a day within the grid, or -1.
func DayIndex(name string) int {
	for i, d := range Days {
		if d == name {
			return i
		}
	}
	return -1
}

// ParseClock converts a 12-hour "H:MM AM|PM" label to a 24-hour clock.
func ParseClock(label string) (hour, minute int, err error) {
	m := timeLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid time label %q", label)
	}

	fmt.Sscanf(m[1], "%d", &hour)
	fmt.Sscanf(m[2], "%d", &minute)

	if hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("invalid time label %q", label)
	}

	switch m[3] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	return hour, minute, nil
}

// NextOccurrence resolves a weekly (day, time) pair to its nearest calendar
// occurrence at or after now. If now already falls on that weekday the
// occurrence is today, regardless of the clock.
func NextOccurrence(now time.Time, day, label string) (time.Time, error) {
	wd, ok := weekdays[day]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid day %q", day)
	}

	hour, minute, err := ParseClock(label)
	if err != nil {
		return time.Time{}, err
	}

	delta := (int(wd) - int(now.Weekday()) + 7) % 7
	d := now.AddDate(0, 0, delta)

	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, now.Location()), nil
}

// WeekStart returns Monday 00:00:00 of the week containing now.
func WeekStart(now time.Time) time.Time {
	d := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}
