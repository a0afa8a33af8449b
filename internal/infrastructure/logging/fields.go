package logging

// Fields represents structured fields attached to a log entry
type Fields map[string]interface{}

// LogLevel represents the available log levels
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Standard field names
const (
	FieldRequestID  = "request_id"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldDuration   = "duration_ms"
	FieldStatusCode = "status_code"
	FieldMethod     = "method"
	FieldPath       = "path"
)

// Fields for cache operations
const (
	FieldCacheOperation = "cache_operation"
	FieldCacheKey       = "cache_key"
	FieldCacheHit       = "cache_hit"
)

// Fields for business logic
const (
	FieldAssetID  = "asset_id"
	FieldCurrency = "currency"
	FieldPrice    = "price"
	FieldSource   = "source"
)
