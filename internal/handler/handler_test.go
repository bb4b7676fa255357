package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/auth"
	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/game"
	"github.com/osse101/Daymon_Go/internal/handler"
	"github.com/osse101/Daymon_Go/internal/roster"
)

func authedRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	return req.WithContext(auth.WithUserID(req.Context(), "u1"))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestGameHandler_Login(t *testing.T) {
	handler.InitValidator()

	t.Run("issues a token", func(t *testing.T) {
		svc := game.NewMockService(t)
		sessions := auth.NewSessions(10, time.Hour)
		h := handler.NewGameHandler(svc, sessions)

		svc.On("Login", mock.Anything, "alice").
			Return(&domain.Player{ID: "u1", Nickname: "alice", Gold: domain.StartingGold}, nil)

		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewBufferString(`{"nickname":"alice"}`)))

		require.Equal(t, http.StatusOK, w.Code)
		var resp handler.LoginResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "u1", resp.Player.ID)

		userID, err := sessions.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("rejects an empty nickname", func(t *testing.T) {
		svc := game.NewMockService(t)
		h := handler.NewGameHandler(svc, auth.NewSessions(10, time.Hour))

		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewBufferString(`{"nickname":""}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestGameHandler_Actions(t *testing.T) {
	handler.InitValidator()
	view := &game.View{PlayerID: "u1", Gold: 600}

	tests := []struct {
		name           string
		serve          func(h *handler.GameHandler) http.HandlerFunc
		method         string
		body           interface{}
		setupMock      func(m *game.MockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "state",
			serve:  (*handler.GameHandler).State,
			method: http.MethodGet,
			setupMock: func(m *game.MockService) {
				m.On("State", mock.Anything, "u1").Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "place egg",
			serve:  (*handler.GameHandler).PlaceEgg,
			method: http.MethodPost,
			body:   `{"slot":0}`,
			setupMock: func(m *game.MockService) {
				m.On("PlaceEgg", mock.Anything, "u1", 0).Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "place egg without slot",
			serve:          (*handler.GameHandler).PlaceEgg,
			method:         http.MethodPost,
			body:           `{}`,
			setupMock:      func(m *game.MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name:   "place egg into occupied incubator",
			serve:  (*handler.GameHandler).PlaceEgg,
			method: http.MethodPost,
			body:   `{"slot":1}`,
			setupMock: func(m *game.MockService) {
				m.On("PlaceEgg", mock.Anything, "u1", 1).
					Return(nil, fmt.Errorf("%w: incubator 0", domain.ErrSlotOccupied))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgSlotOccupiedError,
		},
		{
			name:   "navigate",
			serve:  (*handler.GameHandler).Navigate,
			method: http.MethodPost,
			body:   `{"direction":"prev"}`,
			setupMock: func(m *game.MockService) {
				m.On("Navigate", mock.Anything, "u1", game.DirectionPrev).Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			serve:          (*handler.GameHandler).Navigate,
			method:         http.MethodPost,
			body:           `{"direction":`,
			setupMock:      func(m *game.MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequest,
		},
		{
			name:   "dismiss before hatched",
			serve:  (*handler.GameHandler).Dismiss,
			method: http.MethodPost,
			setupMock: func(m *game.MockService) {
				m.On("Dismiss", mock.Anything, "u1").Return(nil, domain.ErrNotHatched)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgNotHatchedError,
		},
		{
			name:   "unlock without gold",
			serve:  (*handler.GameHandler).Unlock,
			method: http.MethodPost,
			body:   `{"slot":3}`,
			setupMock: func(m *game.MockService) {
				m.On("UnlockIncubator", mock.Anything, "u1", 3).
					Return(nil, fmt.Errorf("%w: need 10000 gold, have 5000", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInsufficientGoldError,
		},
		{
			name:   "unlock rolled back",
			serve:  (*handler.GameHandler).Unlock,
			method: http.MethodPost,
			body:   `{"slot":4}`,
			setupMock: func(m *game.MockService) {
				m.On("UnlockIncubator", mock.Anything, "u1", 4).
					Return(nil, fmt.Errorf("%w: insufficient_gold", domain.ErrUnlockRejected))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgUnlockRejectedError,
		},
		{
			name:   "debug disabled",
			serve:  (*handler.GameHandler).AdjustHatch,
			method: http.MethodPost,
			body:   `{"hours":1}`,
			setupMock: func(m *game.MockService) {
				m.On("AdjustHatch", mock.Anything, "u1", 1.0).Return(nil, domain.ErrDebugUnavailable)
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  handler.ErrMsgDebugDisabledError,
		},
		{
			name:   "adjust gauge",
			serve:  (*handler.GameHandler).AdjustGauge,
			method: http.MethodPost,
			body:   `{"kind":"happiness","delta":-5}`,
			setupMock: func(m *game.MockService) {
				m.On("AdjustFieldGauge", mock.Anything, "u1", roster.GaugeHappiness, -5.0).Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "reset slots restored",
			serve:  (*handler.GameHandler).ResetSlots,
			method: http.MethodPost,
			setupMock: func(m *game.MockService) {
				m.On("ResetSlots", mock.Anything, "u1").
					Return(nil, fmt.Errorf("%w: disk full", domain.ErrRestored))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  handler.ErrMsgRestoredError,
		},
		{
			name:   "rename",
			serve:  (*handler.GameHandler).Rename,
			method: http.MethodPut,
			body:   `{"name":"Ember"}`,
			setupMock: func(m *game.MockService) {
				m.On("RenameField", mock.Anything, "u1", "Ember").Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "care limit",
			serve:  (*handler.GameHandler).Snack,
			method: http.MethodPost,
			setupMock: func(m *game.MockService) {
				m.On("CareSnack", mock.Anything, "u1").Return(nil, domain.ErrCareLimitReached)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  handler.ErrMsgCareLimitError,
		},
		{
			name:   "visibility",
			serve:  (*handler.GameHandler).Visibility,
			method: http.MethodPost,
			body:   `{"hidden":false}`,
			setupMock: func(m *game.MockService) {
				m.On("SetVisibility", mock.Anything, "u1", false).Return(view, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "session expired",
			serve:  (*handler.GameHandler).Tap,
			method: http.MethodPost,
			setupMock: func(m *game.MockService) {
				m.On("Tap", mock.Anything, "u1").Return(nil, domain.ErrSessionExpired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  handler.ErrMsgSessionExpiredError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := game.NewMockService(t)
			tt.setupMock(svc)
			h := handler.NewGameHandler(svc, auth.NewSessions(10, time.Hour))

			w := httptest.NewRecorder()
			tt.serve(h).ServeHTTP(w, authedRequest(tt.method, "/api/v1/game", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
				return
			}
			var got game.View
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Equal(t, view.Gold, got.Gold)
		})
	}
}

func TestGameHandler_RequiresUser(t *testing.T) {
	svc := game.NewMockService(t)
	h := handler.NewGameHandler(svc, auth.NewSessions(10, time.Hour))

	w := httptest.NewRecorder()
	h.State().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/game/state", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, handler.ErrMsgUnauthorized, decodeError(t, w).Error)
}

func TestGameHandler_RestoreFailedIsAlert(t *testing.T) {
	svc := game.NewMockService(t)
	svc.On("ResetSlots", mock.Anything, "u1").Return(nil, domain.ErrRestoreFailed)
	h := handler.NewGameHandler(svc, auth.NewSessions(10, time.Hour))

	w := httptest.NewRecorder()
	h.ResetSlots().ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/game/slots/reset", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.True(t, resp.Alert)
	assert.Equal(t, handler.ErrMsgRestoreFailedError, resp.Error)
}
