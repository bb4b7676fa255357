package server

import "time"

// Error messages returned by the middleware
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too many requests, slow down"
	ErrMsgSessionExpired  = "Session expired. Please log in again."
)

// Security alerts
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication"
	SecurityAlertHighRate   = "SECURITY ALERT: client over request limit"
)

// Log messages
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgDebugKeyRejected = "Debug route refused, bad or missing API key"
	LogMsgSessionRejected  = "Session token rejected"
)

// Header names
const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderForwardedFor  = "X-Forwarded-For"
)

// SecurityHeaders is set on every response
var SecurityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Cache-Control":          "no-store",
}

// Rate limiting
const (
	RateLimitRequests        = 1000
	RateLimitWindow          = 5 * time.Minute
	FailedAuthAlertThreshold = 5
	HighRateLogEvery         = 100
)

// MaxRequestBytes caps request bodies; hatchery requests are a few fields
const MaxRequestBytes = 64 << 10

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces credential headers in logs
const RedactedValue = "[REDACTED]"
