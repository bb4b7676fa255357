package logger

import "log/slog"

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// levels maps LOG_LEVEL values to slog levels; anything else logs at info
var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// sourceEnvironments get file:line on every record
var sourceEnvironments = []string{"dev", "development", "local"}

// Attribute keys shared by every hatchery log line
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)
