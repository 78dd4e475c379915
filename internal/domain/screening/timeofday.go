package screening

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeOfDay represents a wall-clock time value with minute precision
type TimeOfDay struct {
	hour   int
	minute int
}

// "HH:MM" zero-padded, 00:00 through 23:59
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// NewTimeOfDay creates a TimeOfDay value object with validation
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute out of range: %d", minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay parses the "HH:MM" zero-padded serialization
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day format: %q", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// MustParseTimeOfDay parses "HH:MM" and panics on error (for constants/tests)
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFrom extracts the wall-clock time of day from a time.Time,
// in that value's location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

// Hour returns the hour component (0-23)
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute component (0-59)
func (t TimeOfDay) Minute() int {
	return t.minute
}

// MinutesSinceMidnight returns the time as minutes since 00:00 (0-1439)
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.hour*60 + t.minute
}

// String returns the zero-padded "HH:MM" serialization
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Equal checks if two TimeOfDay values are equal
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// Before reports whether t is strictly earlier in the day than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinutesSinceMidnight() < other.MinutesSinceMidnight()
}

// MarshalJSON implements json.Marshaler
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
