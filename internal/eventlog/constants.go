package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobSkipped   = "Event log retention disabled, keeping all history"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldUserID       = "user_id"
	LogFieldError        = "error"
	LogFieldCutoff       = "cutoff"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deleted_count"
)
