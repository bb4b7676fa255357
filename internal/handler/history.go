package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/Daymon_Go/internal/eventlog"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HandleHistory handles GET /game/history?limit=N
func HandleHistory(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxHistoryLimit {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = n
		}

		entries, err := svc.History(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "History", err)
			return
		}
		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
