package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameShopRotations     = "shop_rotations_total"
	MetricNameShopSlotsOffered  = "shop_slots_offered"
	MetricNameShopPurchases     = "shop_purchases_total"
	MetricNameCoinsSpent        = "coins_spent_total"
	MetricNameCoinsAwarded      = "coins_awarded_total"
	MetricNameCatalogRefreshes  = "catalog_refreshes_total"
	MetricNameCatalogItemsCount = "catalog_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of events whose payload could not be decoded"
)

// Business metric help text
const (
	HelpTextShopRotations     = "Total number of shop regenerations"
	HelpTextShopSlotsOffered  = "Number of slots generated per rotation"
	HelpTextShopPurchases     = "Total number of shop slots bought, by item"
	HelpTextCoinsSpent        = "Total coins spent in the shop"
	HelpTextCoinsAwarded      = "Total coins credited, by reason"
	HelpTextCatalogRefreshes  = "Total number of catalog syncs, by whether the file changed"
	HelpTextCatalogItemsCount = "Number of items in the last synced catalog"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelReason  = "reason"
	LabelChanged = "changed"
)

// PathUnmatched labels requests that matched no route, keeping path cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SlotBuckets covers 0..6 slots per rotation
var SlotBuckets = []float64{0, 1, 2, 3, 4, 5, 6}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgDecodePayloadFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
