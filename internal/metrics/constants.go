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

// Business metric names
const (
	MetricNameDrawsPerformed      = "draws_performed_total"
	MetricNamePrizesWon           = "prizes_won_total"
	MetricNameNoPrizeOutcomes     = "no_prize_outcomes_total"
	MetricNameIdempotentReplays   = "idempotent_replays_total"
	MetricNameSessionsActivated   = "sessions_activated_total"
	MetricNameDeviceLockConflicts = "device_lock_conflicts_total"
	MetricNameSessionsReaped      = "sessions_reaped_total"
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

// Business metric help text
const (
	HelpTextDrawsPerformed      = "Total number of draw attempts committed"
	HelpTextPrizesWon           = "Total number of prizes awarded"
	HelpTextNoPrizeOutcomes     = "Total number of draws resolved as NO_PRIZE"
	HelpTextIdempotentReplays   = "Total number of draws answered from a prior record"
	HelpTextSessionsActivated   = "Total number of sessions activated"
	HelpTextDeviceLockConflicts = "Total number of activations rejected by the device lock"
	HelpTextSessionsReaped      = "Total number of idle sessions closed by the reaper"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelPrize  = "prize"
)

// HTTPLatencyBuckets defines histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
