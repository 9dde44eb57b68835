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

// Generation metric names
const (
	MetricNameItemsDesigned    = "items_designed_total"
	MetricNameThemesChosen     = "themes_chosen_total"
	MetricNameCursesAttached   = "curses_attached_total"
	MetricNameInitialPotential = "initial_potential"
	MetricNamePotentialSpent   = "potential_spent"
	MetricNameDesignDuration   = "design_duration_seconds"
	MetricNameEgoRetries       = "ego_retries_total"
	MetricNameItemsStored      = "items_stored_total"
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

// Generation metric help text
const (
	HelpTextItemsDesigned    = "Total number of items designed"
	HelpTextThemesChosen     = "Total number of theme selections"
	HelpTextCursesAttached   = "Total number of curses attached to items"
	HelpTextInitialPotential = "Initial design potential allocated per item"
	HelpTextPotentialSpent   = "Design potential spent per item"
	HelpTextDesignDuration   = "Time spent designing one item in seconds"
	HelpTextEgoRetries       = "Total number of declined jewellery ego picks"
	HelpTextItemsStored      = "Total number of items written to a sink"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelOutcome  = "outcome"
	LabelTheme    = "theme"
	LabelSink     = "sink"
)

// Outcome label values
const (
	OutcomeNormal   = "normal"
	OutcomeTerrible = "terrible"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PotentialBuckets covers the allocation range from trivial trinkets to
// the deepest artifacts.
var PotentialBuckets = []float64{500, 1000, 1500, 2000, 2500, 3000, 3500, 4000, 4500, 5000, 5500, 6000}

// DesignLatencyBuckets covers single-item design times, which are
// microseconds to low milliseconds.
var DesignLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}
