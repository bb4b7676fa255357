package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/Daymon_Go/internal/logger"
)

// ReadinessTimeout bounds every readiness check
const ReadinessTimeout = 2 * time.Second

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	LogMsgReadinessFailed = "Readiness check failed"
)

// LivenessResponse is returned by /healthz
type LivenessResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// ReadinessResponse is returned by /readyz, one entry per named check
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ReadinessCheck is one dependency the hatchery needs before taking traffic
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HandleHealthz reports the process alive along with the cached session count
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} LivenessResponse
// @Router /healthz [get]
func HandleHealthz(sessions func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, LivenessResponse{Status: StatusOK, Sessions: sessions()})
	}
}

// HandleReadyz runs every check under one deadline and answers 503 if any fails
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		resp := ReadinessResponse{Status: StatusOK, Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgReadinessFailed, "check", c.Name, "error", err)
				resp.Status = StatusUnavailable
				resp.Checks[c.Name] = StatusUnavailable
				continue
			}
			resp.Checks[c.Name] = StatusOK
		}

		status := http.StatusOK
		if resp.Status != StatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}
