package config

import "time"

// Defaults applied when the matching environment variable is unset or invalid
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "daymon"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultSaveDebounce     = 500 * time.Millisecond
	DefaultFlushInterval    = 30 * time.Second
	DefaultEggTypesRefresh  = 10 * time.Minute
	DefaultSessionTTL       = 24 * time.Hour
	DefaultSessionCacheSize = 1000
	DefaultWorkers          = 4

	DefaultEventMaxRetries       = 5
	DefaultEventRetryDelay       = 2 * time.Second
	DefaultEventDeadLetterPath   = "logs/event_deadletter.jsonl"
	DefaultEventLogRetentionDays = 30
	DefaultEventLogCleanup       = 24 * time.Hour
)
