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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Hatchery Metrics
var (
	EggsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEggsPlaced,
			Help: HelpTextEggsPlaced,
		},
		[]string{LabelElement},
	)

	EggsHatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEggsHatched,
			Help: HelpTextEggsHatched,
		},
		[]string{LabelElement},
	)

	GoldRewarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldRewarded,
			Help: HelpTextGoldRewarded,
		},
	)

	Unlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnlocks,
			Help: HelpTextUnlocks,
		},
		[]string{LabelResult},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelResult},
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveDuration,
			Help:    HelpTextSaveDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	PersistIncidents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistIncidents,
			Help: HelpTextPersistIncidents,
		},
		[]string{LabelType},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
