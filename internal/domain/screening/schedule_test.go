package screening

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tod(s string) TimeOfDay {
	return MustParseTimeOfDay(s)
}

func TestScheduleWindow_Contains(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		now    string
		inside bool
	}{
		// Same-day window, bounds inclusive
		{name: "same-day middle", start: "09:00", end: "17:00", now: "12:00", inside: true},
		{name: "same-day at start", start: "09:00", end: "17:00", now: "09:00", inside: true},
		{name: "same-day at end", start: "09:00", end: "17:00", now: "17:00", inside: true},
		{name: "same-day before start", start: "09:00", end: "17:00", now: "08:59", inside: false},
		{name: "same-day after end", start: "09:00", end: "17:00", now: "17:01", inside: false},
		{name: "same-day late night", start: "09:00", end: "17:00", now: "23:30", inside: false},

		// Midnight-crossing window
		{name: "wrap late evening", start: "22:00", end: "07:00", now: "23:30", inside: true},
		{name: "wrap early morning", start: "22:00", end: "07:00", now: "03:00", inside: true},
		{name: "wrap at start", start: "22:00", end: "07:00", now: "22:00", inside: true},
		{name: "wrap at end", start: "22:00", end: "07:00", now: "07:00", inside: true},
		{name: "wrap midday", start: "22:00", end: "07:00", now: "12:00", inside: false},
		{name: "wrap just before start", start: "22:00", end: "07:00", now: "21:59", inside: false},
		{name: "wrap just after end", start: "22:00", end: "07:00", now: "07:01", inside: false},

		// start == end is the single instant start, never "all day"
		{name: "degenerate at instant", start: "12:00", end: "12:00", now: "12:00", inside: true},
		{name: "degenerate one minute later", start: "12:00", end: "12:00", now: "12:01", inside: false},
		{name: "degenerate one minute earlier", start: "12:00", end: "12:00", now: "11:59", inside: false},
		{name: "degenerate midnight", start: "00:00", end: "00:00", now: "00:00", inside: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewScheduleWindow(tod(tt.start), tod(tt.end))
			assert.Equal(t, tt.inside, w.Contains(tod(tt.now)))
		})
	}
}

// Sweep every minute of the day against representative windows and check
// membership against the minutes-since-midnight definition directly.
func TestScheduleWindow_Contains_FullDaySweep(t *testing.T) {
	windows := []struct {
		start string
		end   string
	}{
		{"09:00", "17:00"},
		{"22:00", "07:00"},
		{"00:00", "23:59"},
		{"12:00", "12:00"},
		{"23:59", "00:00"},
	}

	for _, win := range windows {
		t.Run(fmt.Sprintf("%s-%s", win.start, win.end), func(t *testing.T) {
			w := NewScheduleWindow(tod(win.start), tod(win.end))
			start := w.Start.MinutesSinceMidnight()
			end := w.End.MinutesSinceMidnight()

			for minute := 0; minute < 24*60; minute++ {
				now, err := NewTimeOfDay(minute/60, minute%60)
				assert.NoError(t, err)

				var want bool
				if start <= end {
					want = minute >= start && minute <= end
				} else {
					want = minute >= start || minute <= end
				}

				assert.Equal(t, want, w.Contains(now), "minute %02d:%02d", minute/60, minute%60)
			}
		})
	}
}

func TestScheduleWindow_StartAlwaysInside(t *testing.T) {
	// The start bound is inclusive for every window shape.
	for _, win := range []ScheduleWindow{
		NewScheduleWindow(tod("09:00"), tod("17:00")),
		NewScheduleWindow(tod("22:00"), tod("07:00")),
		NewScheduleWindow(tod("12:00"), tod("12:00")),
		NewScheduleWindow(tod("00:00"), tod("00:00")),
	} {
		assert.True(t, win.Contains(win.Start), "window %s", win)
	}
}

func TestScheduleWindow_WrapsMidnight(t *testing.T) {
	assert.False(t, NewScheduleWindow(tod("09:00"), tod("17:00")).WrapsMidnight())
	assert.True(t, NewScheduleWindow(tod("22:00"), tod("07:00")).WrapsMidnight())
	assert.False(t, NewScheduleWindow(tod("12:00"), tod("12:00")).WrapsMidnight())
}

func TestScheduleWindow_String(t *testing.T) {
	w := NewScheduleWindow(tod("22:00"), tod("07:00"))
	assert.Equal(t, "22:00-07:00", w.String())
}
