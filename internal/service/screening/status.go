package screening

import (
	"fmt"

	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/settings"
)

// Status strings shown in notification surfaces. The scheduled variants carry
// the window so a user can see at a glance when responses fire.
const (
	statusInactive = "Auto-responder inactive"
	statusActive   = "Auto-responder active"
)

// ComposeStatus derives the human-readable responder status from the current
// settings and wall-clock time. Pure; it shares ScheduleWindow.Contains with
// the decision engine so status text and screening verdicts can never
// disagree about window membership.
func ComposeStatus(cfg settings.Settings, now screening.TimeOfDay) string {
	if !cfg.AutoResponseEnabled {
		return statusInactive
	}

	if !cfg.ScheduledModeEnabled {
		return statusActive
	}

	window := cfg.Window()
	if window.Contains(now) {
		return fmt.Sprintf("%s (%s)", statusActive, window)
	}
	return fmt.Sprintf("Auto-responder scheduled (%s)", window)
}
