package screening

import "fmt"

// ScheduleWindow is a daily time-of-day range during which auto-response is
// active. A window whose start is later than its end crosses midnight
// (e.g. 22:00-07:00 covers late evening through early morning).
type ScheduleWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewScheduleWindow creates a schedule window from start and end times
func NewScheduleWindow(start, end TimeOfDay) ScheduleWindow {
	return ScheduleWindow{Start: start, End: end}
}

// WrapsMidnight reports whether the window crosses midnight
func (w ScheduleWindow) WrapsMidnight() bool {
	return w.Start.MinutesSinceMidnight() > w.End.MinutesSinceMidnight()
}

// Contains reports whether now falls inside the window, bounds inclusive.
// Same-day windows (start <= end) match start <= now <= end. Midnight-crossing
// windows (start > end) match now >= start or now <= end. A window with
// start == end is the single instant start, not the whole day.
func (w ScheduleWindow) Contains(now TimeOfDay) bool {
	n := now.MinutesSinceMidnight()
	start := w.Start.MinutesSinceMidnight()
	end := w.End.MinutesSinceMidnight()

	if start <= end {
		return n >= start && n <= end
	}
	return n >= start || n <= end
}

// String returns the "HH:MM-HH:MM" display form used in status text
func (w ScheduleWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}
