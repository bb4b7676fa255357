package event

import "time"

// EventSchemaVersion is stamped on every hatchery event
const EventSchemaVersion = "1.0"

// Retry queue
const (
	RetryQueueBufferSize = 1000
	MaxRetryDelay        = time.Minute
)

// DeadLetterFilePermissions is the mode of a freshly created dead-letter file
const DeadLetterFilePermissions = 0644

const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event written to dead-letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event undeliverable at shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
)

// ErrMsgHandlerFailures formats the error MemoryBus returns when subscribers fail
const ErrMsgHandlerFailures = "%d handler(s) failed for %s event: %v"

// BackoffDelay doubles base for every attempt after the first, capped at MaxRetryDelay.
func BackoffDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	return min(d, MaxRetryDelay)
}
