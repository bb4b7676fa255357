package bootstrap

const (
	DirPermission     = 0755
	LogFilePermission = 0640
)

// Per-run log files are named hatchery_<timestamp>.log; the timestamp sorts lexically
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "hatchery_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingDaymon      = "Starting Daymon hatchery"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Event wiring
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"

	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

const (
	LogMsgLoadingEggTypes    = "Loading egg types"
	LogMsgEggTypesLoaded     = "Egg type table ready"
	ErrMsgFailedLoadEggTypes = "failed to load egg types"
)

// Shutdown runs in reverse start order: HTTP, saver, publisher
const (
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgSaveWorkerShutdownFailed   = "Save worker shutdown failed"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
