package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DrawsPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawsPerformed,
			Help: HelpTextDrawsPerformed,
		},
	)

	PrizesWon = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePrizesWon,
			Help: HelpTextPrizesWon,
		},
		[]string{LabelPrize},
	)

	NoPrizeOutcomes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNoPrizeOutcomes,
			Help: HelpTextNoPrizeOutcomes,
		},
	)

	IdempotentReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIdempotentReplays,
			Help: HelpTextIdempotentReplays,
		},
	)

	SessionsActivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsActivated,
			Help: HelpTextSessionsActivated,
		},
	)

	DeviceLockConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDeviceLockConflicts,
			Help: HelpTextDeviceLockConflicts,
		},
	)

	SessionsReaped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsReaped,
			Help: HelpTextSessionsReaped,
		},
	)
)
