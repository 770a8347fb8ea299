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
	MetricNameDrawsTotal         = "card_draws_total"
	MetricNameDrawsDenied        = "card_draws_denied_total"
	MetricNameDailyClaims        = "daily_claims_total"
	MetricNameSweepRuns          = "nightly_sweep_runs_total"
	MetricNameSweepUsersAffected = "nightly_sweep_users_affected_total"
)

// Database pool metric names
const (
	MetricNameDBPoolTotalConns    = "db_pool_total_conns"
	MetricNameDBPoolAcquiredConns = "db_pool_acquired_conns"
	MetricNameDBPoolIdleConns     = "db_pool_idle_conns"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextDrawsTotal         = "Total number of successful card draws by rarity"
	HelpTextDrawsDenied        = "Total number of draws denied by cooldown"
	HelpTextDailyClaims        = "Total number of daily bonus claims by reward kind"
	HelpTextSweepRuns          = "Total number of nightly sweep executions"
	HelpTextSweepUsersAffected = "Total number of users whose bonuses the sweep cleared"
)

const (
	HelpTextDBPoolTotalConns    = "Total connections currently held by the database pool"
	HelpTextDBPoolAcquiredConns = "Connections currently checked out of the database pool"
	HelpTextDBPoolIdleConns     = "Idle connections currently in the database pool"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelRarity = "rarity"
	LabelReward = "reward"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
