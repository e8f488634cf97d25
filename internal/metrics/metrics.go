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

// Business Metrics
var (
	ShopRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShopRotations,
			Help: HelpTextShopRotations,
		},
	)

	ShopSlotsOffered = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShopSlotsOffered,
			Help:    HelpTextShopSlotsOffered,
			Buckets: SlotBuckets,
		},
	)

	ShopPurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShopPurchases,
			Help: HelpTextShopPurchases,
		},
		[]string{LabelItem},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	CoinsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsAwarded,
			Help: HelpTextCoinsAwarded,
		},
		[]string{LabelReason},
	)

	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogRefreshes,
			Help: HelpTextCatalogRefreshes,
		},
		[]string{LabelChanged},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItemsCount,
			Help: HelpTextCatalogItemsCount,
		},
	)
)
