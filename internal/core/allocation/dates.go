package allocation

import "time"

// millisPerDay is the millisecond count of one day; all day arithmetic in
// this package happens at whole-day granularity.
const millisPerDay = 24 * 60 * 60 * 1000

// dayFloor normalizes a timestamp to midnight UTC.
func dayFloor(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference between two timestamps,
// rounding the millisecond delta of the day-floored values.
func daysBetween(from, to time.Time) int {
	ms := dayFloor(to).Sub(dayFloor(from)).Milliseconds()
	if ms >= 0 {
		return int((ms + millisPerDay/2) / millisPerDay)
	}
	return -int((-ms + millisPerDay/2) / millisPerDay)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Window is an inclusive reporting date range, normalized to whole days.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a Window from the given bounds, flooring both to midnight UTC.
func NewWindow(from, to time.Time) Window {
	return Window{Start: dayFloor(from), End: dayFloor(to)}
}

// Contains reports whether the given date falls inside the window, inclusive
// of both bounds, comparing at day granularity.
func (w Window) Contains(t time.Time) bool {
	d := dayFloor(t)
	return !d.Before(w.Start) && !d.After(w.End)
}
