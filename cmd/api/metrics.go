package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/priit2000/out-of-android/internal/domain/screening"
)

// Metric definitions for the screening engine

var (
	verdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ooa",
			Subsystem: "screening",
			Name:      "verdicts_total",
			Help:      "Total number of screening verdicts by action and rule",
		},
		[]string{"action", "reason"},
	)

	screeningLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ooa",
			Subsystem: "screening",
			Name:      "decision_latency_seconds",
			Help:      "Screening decision latency including the settings read",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15),
		},
	)
)

// prometheusMetrics implements the screening MetricsCollector interface
type prometheusMetrics struct{}

func (prometheusMetrics) RecordVerdict(_ context.Context, verdict screening.Verdict) {
	verdictsTotal.WithLabelValues(verdict.Action.String(), verdict.Reason).Inc()
}

func (prometheusMetrics) RecordScreeningLatency(_ context.Context, latency time.Duration) {
	screeningLatency.Observe(latency.Seconds())
}
