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

// Generation Metrics
var (
	ItemsDesigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDesigned,
			Help: HelpTextItemsDesigned,
		},
		[]string{LabelCategory, LabelOutcome},
	)

	ThemesChosen = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameThemesChosen,
			Help: HelpTextThemesChosen,
		},
		[]string{LabelCategory, LabelTheme},
	)

	CursesAttached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCursesAttached,
			Help: HelpTextCursesAttached,
		},
		[]string{LabelCategory},
	)

	InitialPotential = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameInitialPotential,
			Help:    HelpTextInitialPotential,
			Buckets: PotentialBuckets,
		},
	)

	PotentialSpent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePotentialSpent,
			Help:    HelpTextPotentialSpent,
			Buckets: PotentialBuckets,
		},
	)

	DesignDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDesignDuration,
			Help:    HelpTextDesignDuration,
			Buckets: DesignLatencyBuckets,
		},
	)

	EgoRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEgoRetries,
			Help: HelpTextEgoRetries,
		},
	)

	ItemsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsStored,
			Help: HelpTextItemsStored,
		},
		[]string{LabelSink},
	)
)
