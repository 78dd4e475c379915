package screening

import (
	"context"
	"log/slog"
	"time"

	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/settings"
)

// Reasons recorded on verdicts, one per rule that can terminate evaluation.
const (
	ReasonResponderDisabled = "responder_disabled"
	ReasonOutsideSchedule   = "outside_schedule"
	ReasonNumberUnknown     = "number_unknown"
	ReasonWhitelisted       = "whitelisted"
	ReasonAutoResponse      = "auto_response"
	ReasonConfigUnavailable = "config_unavailable"
)

// service implements the Service interface
type service struct {
	settings SettingsReader
	metrics  MetricsCollector
	clock    screening.Clock
	logger   *slog.Logger
}

// NewService creates a new call screening service
func NewService(
	settingsReader SettingsReader,
	metrics MetricsCollector,
	clock screening.Clock,
	logger *slog.Logger,
) Service {
	if clock == nil {
		clock = screening.RealClock{}
	}

	return &service{
		settings: settingsReader,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

// Screen evaluates one incoming call against the current settings. When the
// settings store cannot be read, the call fails open: the verdict is Allow and
// the storage error is returned alongside it for the caller to report.
func (s *service) Screen(ctx context.Context, event screening.CallEvent) (screening.Verdict, error) {
	start := time.Now()

	cfg, err := s.settings.Snapshot(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "settings unavailable, allowing call",
			"call_id", event.ID,
			"error", err,
		)
		return screening.Allow(ReasonConfigUnavailable), err
	}

	verdict := Decide(event, cfg, screening.TimeOfDayFrom(s.clock.Now()))

	s.logger.DebugContext(ctx, "call screened",
		"call_id", event.ID,
		"action", verdict.Action.String(),
		"reason", verdict.Reason,
	)

	if s.metrics != nil {
		s.metrics.RecordVerdict(ctx, verdict)
		s.metrics.RecordScreeningLatency(ctx, time.Since(start))
	}

	return verdict, nil
}

// Decide is the pure decision core. Rules short-circuit in a fixed order, and
// the order matters: an unlisted number outside scheduled hours is allowed by
// the schedule rule and never reaches whitelist matching.
//
//  1. Master switch off: allow.
//  2. Scheduled mode on and now outside the window: allow.
//  3. No caller number delivered: allow (nowhere to send a response).
//  4. Number whitelisted: allow.
//  5. Otherwise reject and respond with the configured message.
func Decide(event screening.CallEvent, cfg settings.Settings, now screening.TimeOfDay) screening.Verdict {
	if !cfg.AutoResponseEnabled {
		return screening.Allow(ReasonResponderDisabled)
	}

	if cfg.ScheduledModeEnabled && !cfg.Window().Contains(now) {
		return screening.Allow(ReasonOutsideSchedule)
	}

	if !event.HasNumber() {
		return screening.Allow(ReasonNumberUnknown)
	}

	if cfg.Whitelist().IsExempt(event.Number) {
		return screening.Allow(ReasonWhitelisted)
	}

	return screening.RejectAndRespond(cfg.AutoResponseMessage, ReasonAutoResponse)
}

// StatusText describes the responder state for the current settings and time
func (s *service) StatusText(ctx context.Context) (string, error) {
	cfg, err := s.settings.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	return ComposeStatus(cfg, screening.TimeOfDayFrom(s.clock.Now())), nil
}
