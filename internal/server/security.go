package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/auth"
	"github.com/osse101/Daymon_Go/internal/logger"
)

// SessionMiddleware resolves the bearer token to a player and stores the
// player id in the request context
func SessionMiddleware(sessions *auth.Sessions, trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.TokenFromHeader(r.Header.Get(HeaderAuthorization))
			userID, err := sessions.Verify(token)
			if err != nil {
				ip := clientIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Info(LogMsgSessionRejected,
					"path", r.URL.Path,
					"has_token", token != "",
					"ip", ip)

				writeJSONError(w, http.StatusUnauthorized, ErrMsgSessionExpired)
				return
			}

			ctx := auth.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DebugKeyMiddleware guards the debug routes with the X-API-Key header.
// An empty apiKey disables them entirely.
func DebugKeyMiddleware(apiKey string, trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgDebugKeyRejected,
					"path", r.URL.Path,
					"has_key", provided != "",
					"configured", apiKey != "",
					"ip", ip)

				writeJSONError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ActivityDetector counts requests and failed logins per client IP over a
// fixed window
type ActivityDetector struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	now         func() time.Time
	windowStart time.Time
	requests    map[string]int
	failedAuth  map[string]int
}

// NewActivityDetector uses the default request limit and window
func NewActivityDetector() *ActivityDetector {
	return newActivityDetector(RateLimitRequests, RateLimitWindow, time.Now)
}

func newActivityDetector(limit int, window time.Duration, now func() time.Time) *ActivityDetector {
	return &ActivityDetector{
		limit:       limit,
		window:      window,
		now:         now,
		windowStart: now(),
		requests:    make(map[string]int),
		failedAuth:  make(map[string]int),
	}
}

// RecordFailedAuth counts a rejected session token or debug key
func (d *ActivityDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roll()

	d.failedAuth[ip]++
	if n := d.failedAuth[ip]; n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// Allow counts a request and reports whether ip is still under the limit
func (d *ActivityDetector) Allow(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roll()

	d.requests[ip]++
	n := d.requests[ip]
	if n <= d.limit {
		return true
	}
	if (n-d.limit)%HighRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// requestCount is the number of requests seen from ip in the current window
func (d *ActivityDetector) requestCount(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.requests[ip]
}

// roll starts a new window once the current one has passed. d.mu must be held.
func (d *ActivityDetector) roll() {
	if now := d.now(); now.Sub(d.windowStart) > d.window {
		clear(d.requests)
		clear(d.failedAuth)
		d.windowStart = now
	}
}

// RateLimitMiddleware rejects clients over the detector's request limit
func RateLimitMiddleware(trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.Allow(clientIP(r, trustedProxies)) {
				writeJSONError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the connecting address, or the last X-Forwarded-For hop when
// the connection comes from a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remote) {
		return remote
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets the static browser hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range SecurityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
