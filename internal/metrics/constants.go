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

// Hatchery metric names
const (
	MetricNameEggsPlaced       = "daymon_eggs_placed_total"
	MetricNameEggsHatched      = "daymon_eggs_hatched_total"
	MetricNameGoldRewarded     = "daymon_gold_rewarded_total"
	MetricNameUnlocks          = "daymon_incubator_unlocks_total"
	MetricNameGoldSpent        = "daymon_gold_spent_total"
	MetricNameSaves            = "daymon_saves_total"
	MetricNameSaveDuration     = "daymon_save_duration_seconds"
	MetricNamePersistIncidents = "daymon_persist_incidents_total"
	MetricNameActiveSessions   = "daymon_active_sessions"
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
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Hatchery metric help text
const (
	HelpTextEggsPlaced       = "Eggs moved from inventory into an incubator"
	HelpTextEggsHatched      = "Eggs hatched and admitted to the roster"
	HelpTextGoldRewarded     = "Gold granted for hatching"
	HelpTextUnlocks          = "Incubator unlock attempts by outcome"
	HelpTextGoldSpent        = "Gold spent on confirmed incubator unlocks"
	HelpTextSaves            = "Player state saves by outcome"
	HelpTextSaveDuration     = "Player state save latency in seconds"
	HelpTextPersistIncidents = "Save-path incidents such as guard skips and inventory restores"
	HelpTextActiveSessions   = "Player sessions currently cached"
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
	LabelElement = "element"
	LabelResult  = "result"
)

// Label values for LabelResult
const (
	ResultSuccess    = "success"
	ResultRejected   = "rejected"
	ResultRolledBack = "rolled_back"
	ResultError      = "error"
	ResultSkipped    = "skipped"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
