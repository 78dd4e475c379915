package screening

import (
	"context"
	"time"

	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/settings"
)

// Service defines the call screening service interface
type Service interface {
	// Screen evaluates one incoming call event and returns a verdict.
	// The caller executes the verdict: ending the call and dispatching the
	// response text are its job, never the engine's.
	Screen(ctx context.Context, event screening.CallEvent) (screening.Verdict, error)

	// StatusText describes the current responder state for display
	StatusText(ctx context.Context) (string, error)
}

// SettingsReader is the slice of the settings store the engine needs
type SettingsReader interface {
	Snapshot(ctx context.Context) (settings.Settings, error)
}

// MetricsCollector defines the interface for collecting screening metrics
type MetricsCollector interface {
	// RecordVerdict records a screening outcome
	RecordVerdict(ctx context.Context, verdict screening.Verdict)
	// RecordScreeningLatency records decision latency
	RecordScreeningLatency(ctx context.Context, latency time.Duration)
}
