package screening

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/settings"
)

// SettingsReader mock for tests
type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Snapshot(ctx context.Context) (settings.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Settings), args.Error(1)
}

// MetricsCollector mock for tests
type MockMetricsCollector struct {
	mock.Mock
}

func (m *MockMetricsCollector) RecordVerdict(ctx context.Context, verdict screening.Verdict) {
	m.Called(ctx, verdict)
}

func (m *MockMetricsCollector) RecordScreeningLatency(ctx context.Context, latency time.Duration) {
	m.Called(ctx, latency)
}
