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
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelRarity},
	)

	DrawsDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawsDenied,
			Help: HelpTextDrawsDenied,
		},
	)

	DailyClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
		[]string{LabelReward},
	)

	SweepRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSweepRuns,
			Help: HelpTextSweepRuns,
		},
	)

	SweepUsersAffected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSweepUsersAffected,
			Help: HelpTextSweepUsersAffected,
		},
	)
)

// Database Pool Metrics
var (
	DBPoolTotalConns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDBPoolTotalConns,
			Help: HelpTextDBPoolTotalConns,
		},
	)

	DBPoolAcquiredConns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDBPoolAcquiredConns,
			Help: HelpTextDBPoolAcquiredConns,
		},
	)

	DBPoolIdleConns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDBPoolIdleConns,
			Help: HelpTextDBPoolIdleConns,
		},
	)
)
