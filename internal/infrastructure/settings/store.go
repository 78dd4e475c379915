package settings

import (
	"context"

	"github.com/priit2000/out-of-android/internal/domain/screening"
)

// Store is the persistent settings backend. Implementations must provide
// per-key atomic writes with last-write-wins semantics and make a completed
// write visible to subsequent reads from any goroutine or process. No
// transaction spans multiple keys.
//
// Reads return the documented default when a key is absent or holds an
// unparseable value. A backend that cannot be reached at all returns an error
// matching errors.ErrorTypeUnavailable instead of defaulting, so callers can
// distinguish "not configured" from "unknown".
type Store interface {
	// Snapshot reads all settings in one pass
	Snapshot(ctx context.Context) (Settings, error)

	AutoResponseEnabled(ctx context.Context) (bool, error)
	SetAutoResponseEnabled(ctx context.Context, enabled bool) error

	AutoResponseMessage(ctx context.Context) (string, error)
	SetAutoResponseMessage(ctx context.Context, message string) error

	WhitelistEnabled(ctx context.Context) (bool, error)
	SetWhitelistEnabled(ctx context.Context, enabled bool) error

	WhitelistNumbers(ctx context.Context) ([]string, error)
	SetWhitelistNumbers(ctx context.Context, numbers []string) error

	// AddWhitelistNumber and RemoveWhitelistNumber mutate single members of
	// the whitelist set without rewriting the rest of it.
	AddWhitelistNumber(ctx context.Context, number string) error
	RemoveWhitelistNumber(ctx context.Context, number string) error

	ScheduledModeEnabled(ctx context.Context) (bool, error)
	SetScheduledModeEnabled(ctx context.Context, enabled bool) error

	ScheduleStart(ctx context.Context) (screening.TimeOfDay, error)
	SetScheduleStart(ctx context.Context, t screening.TimeOfDay) error

	ScheduleEnd(ctx context.Context) (screening.TimeOfDay, error)
	SetScheduleEnd(ctx context.Context, t screening.TimeOfDay) error

	// Close releases the underlying storage handle
	Close() error
}
