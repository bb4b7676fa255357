package worker

import "time"

// DefaultJobTimeout bounds a single pool job
const DefaultJobTimeout = 30 * time.Second

// ErrMsgPoolStopped is the message of ErrPoolStopped
const ErrMsgPoolStopped = "worker pool is stopped"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Save Worker
// ============================================================================

// Log messages for save worker operations
const (
	LogMsgSaveScheduled     = "Save scheduled"
	LogMsgSaveFailed        = "Save failed"
	LogMsgSaveRetryQueued   = "Save already in flight, retry queued"
	LogMsgSaveEnqueueFailed = "Failed to enqueue save"
	LogMsgFinalFlush        = "Flushing dirty players before shutdown"
)

// SaveWorkerName labels save worker shutdown logs
const SaveWorkerName = "save worker"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
