package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
// Alert is set when the client must block until the player acknowledges it.
type ErrorResponse struct {
	Error string `json:"error"`
	Alert bool   `json:"alert,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" refused", "error", err, "status", status)
	}
	respondJSON(w, status, ErrorResponse{Error: msg, Alert: isAlert(err)})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgSessionExpiredError = "Session expired. Please log in again."
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgInvalidNicknameErr  = "Nickname is invalid or taken"
	ErrMsgDebugDisabledError  = "Debug controls are disabled"

	ErrMsgSlotLockedError       = "That slot is locked"
	ErrMsgSlotOccupiedError     = "That incubator already holds an egg"
	ErrMsgSlotEmptyError        = "That slot is empty"
	ErrMsgEggNotReadyError      = "That egg is not ready to hatch yet"
	ErrMsgNotHatchedError       = "Keep tapping, the egg has not hatched yet"
	ErrMsgNotStartedError       = "That egg is not incubating"
	ErrMsgAlreadyUnlockedError  = "That incubator is already unlocked"
	ErrMsgInsufficientGoldError = "Not enough gold"
	ErrMsgUnlockRejectedError   = "Unlock failed. Your gold has been restored."

	ErrMsgSanctuaryFullError   = "The sanctuary is full"
	ErrMsgFieldEmptyError      = "There is no monster in the field"
	ErrMsgCareLimitError       = "Daily care limit reached. Come back tomorrow"
	ErrMsgSanctuarySlotFreeErr = "That sanctuary slot is empty"

	ErrMsgRestoredError      = "Saving failed. Your previous eggs were restored."
	ErrMsgRestoreFailedError = "Saving failed and your previous eggs could not be restored. Please reload."
)

// isAlert reports whether the error must be shown as a blocking alert
func isAlert(err error) bool {
	return errors.Is(err, domain.ErrRestored) || errors.Is(err, domain.ErrRestoreFailed)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages the player can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, ErrMsgSessionExpiredError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrInvalidNickname):
		return http.StatusBadRequest, ErrMsgInvalidNicknameErr
	case errors.Is(err, domain.ErrInvalidSlot), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDebugUnavailable):
		return http.StatusForbidden, ErrMsgDebugDisabledError

	case errors.Is(err, domain.ErrSlotLocked):
		return http.StatusConflict, ErrMsgSlotLockedError
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, ErrMsgSlotOccupiedError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusConflict, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrEggNotReady):
		return http.StatusConflict, ErrMsgEggNotReadyError
	case errors.Is(err, domain.ErrNotHatched):
		return http.StatusConflict, ErrMsgNotHatchedError
	case errors.Is(err, domain.ErrNotStarted):
		return http.StatusConflict, ErrMsgNotStartedError
	case errors.Is(err, domain.ErrAlreadyUnlocked):
		return http.StatusConflict, ErrMsgAlreadyUnlockedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientGoldError
	case errors.Is(err, domain.ErrUnlockRejected):
		return http.StatusConflict, ErrMsgUnlockRejectedError

	case errors.Is(err, domain.ErrSanctuaryFull):
		return http.StatusConflict, ErrMsgSanctuaryFullError
	case errors.Is(err, domain.ErrFieldEmpty):
		return http.StatusConflict, ErrMsgFieldEmptyError
	case errors.Is(err, domain.ErrCareLimitReached):
		return http.StatusTooManyRequests, ErrMsgCareLimitError
	case errors.Is(err, domain.ErrSanctuarySlotFree):
		return http.StatusConflict, ErrMsgSanctuarySlotFreeErr

	case errors.Is(err, domain.ErrRestoreFailed):
		return http.StatusInternalServerError, ErrMsgRestoreFailedError
	case errors.Is(err, domain.ErrRestored):
		return http.StatusInternalServerError, ErrMsgRestoredError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
