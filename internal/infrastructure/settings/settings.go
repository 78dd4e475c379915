package settings

import (
	"github.com/priit2000/out-of-android/internal/domain/screening"
)

// Persisted key layout. Kept stable for compatibility with existing stores:
// renaming a key would silently reset that setting to its default.
const (
	KeyAutoResponseEnabled = "auto_response_enabled"
	KeyAutoResponseMessage = "auto_response_message"
	KeyWhitelistEnabled    = "whitelist_enabled"
	KeyWhitelistContacts   = "whitelist_contacts"
	KeyScheduledEnabled    = "scheduled_enabled"
	KeyScheduleStartTime   = "schedule_start_time"
	KeyScheduleEndTime     = "schedule_end_time"
)

// DefaultAutoResponseMessage is the fallback text sent when no custom message
// has been configured.
const DefaultAutoResponseMessage = "Sorry, I'm currently unavailable. I'll get back to you soon!"

const (
	defaultScheduleStart = "09:00"
	defaultScheduleEnd   = "17:00"
)

// Settings is a point-in-time snapshot of the full configuration, assembled
// from the store with documented defaults filled in for absent or unparseable
// keys. It is a plain value: mutating a snapshot does not write anything back.
type Settings struct {
	AutoResponseEnabled  bool                 `json:"auto_response_enabled"`
	AutoResponseMessage  string               `json:"auto_response_message"`
	WhitelistEnabled     bool                 `json:"whitelist_enabled"`
	WhitelistNumbers     []string             `json:"whitelist_numbers"`
	ScheduledModeEnabled bool                 `json:"scheduled_enabled"`
	ScheduleStart        screening.TimeOfDay  `json:"schedule_start_time"`
	ScheduleEnd          screening.TimeOfDay  `json:"schedule_end_time"`
}

// Defaults returns the documented default for every setting
func Defaults() Settings {
	return Settings{
		AutoResponseEnabled:  false,
		AutoResponseMessage:  DefaultAutoResponseMessage,
		WhitelistEnabled:     false,
		WhitelistNumbers:     nil,
		ScheduledModeEnabled: false,
		ScheduleStart:        screening.MustParseTimeOfDay(defaultScheduleStart),
		ScheduleEnd:          screening.MustParseTimeOfDay(defaultScheduleEnd),
	}
}

// Whitelist builds the domain whitelist from the snapshot
func (s Settings) Whitelist() screening.Whitelist {
	return screening.NewWhitelist(s.WhitelistEnabled, s.WhitelistNumbers)
}

// Window builds the domain schedule window from the snapshot
func (s Settings) Window() screening.ScheduleWindow {
	return screening.NewScheduleWindow(s.ScheduleStart, s.ScheduleEnd)
}
