package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Daymon_Go/internal/auth"
	"github.com/osse101/Daymon_Go/internal/database"
	"github.com/osse101/Daymon_Go/internal/eventlog"
	"github.com/osse101/Daymon_Go/internal/game"
	"github.com/osse101/Daymon_Go/internal/handler"
	"github.com/osse101/Daymon_Go/internal/logger"
	"github.com/osse101/Daymon_Go/internal/metrics"
)

type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	gameService game.Service
	sessions    *auth.Sessions
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, gameService game.Service, history eventlog.Service, sessions *auth.Sessions) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, gameService, history, sessions),
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:      dbPool,
		gameService: gameService,
		sessions:    sessions,
	}
}

// NewRouter builds the route tree.
// Game routes need a bearer session token; debug routes also need the API key.
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, gameService game.Service, history eventlog.Service, sessions *auth.Sessions) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz(gameService.Sessions))
	r.Get("/readyz", handler.HandleReadyz(handler.ReadinessCheck{Name: "database", Check: dbPool.Ping}))
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(gameService, sessions)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", gameHandler.Login)

		r.Route("/game", func(r chi.Router) {
			r.Use(SessionMiddleware(sessions, trustedProxies, detector))
			debugOnly := DebugKeyMiddleware(apiKey, trustedProxies, detector)

			r.Get("/state", gameHandler.State())
			r.Get("/history", handler.HandleHistory(history))
			r.Post("/visibility", gameHandler.Visibility())

			r.Route("/incubator", func(r chi.Router) {
				r.Post("/place", gameHandler.PlaceEgg())
				r.Post("/navigate", gameHandler.Navigate())
				r.Post("/tap", gameHandler.Tap())
				r.Post("/dismiss", gameHandler.Dismiss())
				r.Post("/unlock", gameHandler.Unlock())
				r.With(debugOnly).Post("/adjust", gameHandler.AdjustHatch())
				r.With(debugOnly).Post("/reset", gameHandler.ResetIncubator())
			})

			r.Route("/slots", func(r chi.Router) {
				r.Post("/reset", gameHandler.ResetSlots())
				r.Post("/clear", gameHandler.ClearSlots())
			})

			r.Route("/sanctuary", func(r chi.Router) {
				r.Post("/to-field", gameHandler.SanctuaryToField())
				r.With(debugOnly).Post("/reset", gameHandler.ResetSanctuary())
			})

			r.Route("/field", func(r chi.Router) {
				r.Post("/snack", gameHandler.Snack())
				r.Post("/play", gameHandler.Play())
				r.Put("/name", gameHandler.Rename())
				r.With(debugOnly).Post("/adjust", gameHandler.AdjustGauge())
				r.With(debugOnly).Post("/reset", gameHandler.ResetField())
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func quietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(p string) bool { return strings.HasPrefix(path, p) })
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range []string{HeaderAPIKey, HeaderAuthorization} {
		if out.Get(name) != "" {
			out.Set(name, RedactedValue)
		}
	}
	return out
}

// loggingMiddleware tags the request with an id and logs start, headers and completion
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if quietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
