package handler

import (
	"net/http"

	"github.com/osse101/Daymon_Go/internal/auth"
	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/game"
	"github.com/osse101/Daymon_Go/internal/logger"
	"github.com/osse101/Daymon_Go/internal/roster"
)

// LoginRequest starts a session for a nickname, creating the player on first use
type LoginRequest struct {
	Nickname string `json:"nickname" validate:"required,max=32,nocontrol"`
}

// LoginResponse carries the bearer token for later requests
type LoginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Player  *domain.Player `json:"player"`
}

// SlotRequest names an inventory, incubator or sanctuary index
type SlotRequest struct {
	Slot *int `json:"slot" validate:"required,gte=0,lt=5"`
}

// SanctuaryRequest names a sanctuary slot
type SanctuaryRequest struct {
	Index *int `json:"index" validate:"required,gte=0,lt=6"`
}

// NavigateRequest moves the incubator carousel
type NavigateRequest struct {
	Direction string `json:"direction" validate:"required,direction"`
}

// AdjustHatchRequest skews the current egg by Hours
type AdjustHatchRequest struct {
	Hours float64 `json:"hours" validate:"required,gte=-240,lte=240"`
}

// AdjustGaugeRequest moves one care bar of the field monster
type AdjustGaugeRequest struct {
	Kind  string  `json:"kind" validate:"required,gauge"`
	Delta float64 `json:"delta" validate:"required,gte=-1000,lte=1000"`
}

// RenameRequest sets the field monster's nickname; empty restores the default
type RenameRequest struct {
	Name string `json:"name" validate:"max=20,nocontrol"`
}

// VisibilityRequest reports whether the client went to the background
type VisibilityRequest struct {
	Hidden *bool `json:"hidden" validate:"required"`
}

// GameHandler serves the hatchery API
type GameHandler struct {
	svc      game.Service
	sessions *auth.Sessions
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc game.Service, sessions *auth.Sessions) *GameHandler {
	return &GameHandler{svc: svc, sessions: sessions}
}

// respondView writes the view or the mapped error
func respondView(w http.ResponseWriter, r *http.Request, opName string, view *game.View, err error) {
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// userAction handles endpoints that take no body
func (h *GameHandler) userAction(opName string, action func(*http.Request, string) (*game.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		view, err := action(r, userID)
		respondView(w, r, opName, view, err)
	}
}

// bodyAction handles endpoints that decode and validate a REQ body first
func bodyAction[REQ any](opName string, action func(*http.Request, string, REQ) (*game.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		var req REQ
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}
		view, err := action(r, userID, req)
		respondView(w, r, opName, view, err)
	}
}

// Login handles POST /session
func (h *GameHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	player, err := h.svc.Login(r.Context(), req.Nickname)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}

	token := h.sessions.Issue(player.ID)
	logger.FromContext(r.Context()).Info("Player logged in", "user_id", player.ID)
	respondJSON(w, http.StatusOK, LoginResponse{Message: MsgLoggedIn, Token: token, Player: player})
}

// State handles GET /game/state
func (h *GameHandler) State() http.HandlerFunc {
	return h.userAction("Get state", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.State(r.Context(), userID)
	})
}

// PlaceEgg handles POST /game/incubator/place
func (h *GameHandler) PlaceEgg() http.HandlerFunc {
	return bodyAction("Place egg", func(r *http.Request, userID string, req SlotRequest) (*game.View, error) {
		return h.svc.PlaceEgg(r.Context(), userID, *req.Slot)
	})
}

// Navigate handles POST /game/incubator/navigate
func (h *GameHandler) Navigate() http.HandlerFunc {
	return bodyAction("Navigate", func(r *http.Request, userID string, req NavigateRequest) (*game.View, error) {
		return h.svc.Navigate(r.Context(), userID, req.Direction)
	})
}

// Tap handles POST /game/incubator/tap
func (h *GameHandler) Tap() http.HandlerFunc {
	return h.userAction("Tap", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.Tap(r.Context(), userID)
	})
}

// Dismiss handles POST /game/incubator/dismiss
func (h *GameHandler) Dismiss() http.HandlerFunc {
	return h.userAction("Dismiss hatch", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.Dismiss(r.Context(), userID)
	})
}

// Unlock handles POST /game/incubator/unlock
func (h *GameHandler) Unlock() http.HandlerFunc {
	return bodyAction("Unlock incubator", func(r *http.Request, userID string, req SlotRequest) (*game.View, error) {
		return h.svc.UnlockIncubator(r.Context(), userID, *req.Slot)
	})
}

// AdjustHatch handles POST /game/incubator/adjust
func (h *GameHandler) AdjustHatch() http.HandlerFunc {
	return bodyAction("Adjust hatch", func(r *http.Request, userID string, req AdjustHatchRequest) (*game.View, error) {
		return h.svc.AdjustHatch(r.Context(), userID, req.Hours)
	})
}

// ResetIncubator handles POST /game/incubator/reset
func (h *GameHandler) ResetIncubator() http.HandlerFunc {
	return h.userAction("Reset incubators", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.ResetIncubator(r.Context(), userID)
	})
}

// ResetSlots handles POST /game/slots/reset
func (h *GameHandler) ResetSlots() http.HandlerFunc {
	return h.userAction("Reset slots", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.ResetSlots(r.Context(), userID)
	})
}

// ClearSlots handles POST /game/slots/clear
func (h *GameHandler) ClearSlots() http.HandlerFunc {
	return h.userAction("Clear slots", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.DeleteAllSlots(r.Context(), userID)
	})
}

// SanctuaryToField handles POST /game/sanctuary/to-field
func (h *GameHandler) SanctuaryToField() http.HandlerFunc {
	return bodyAction("Sanctuary to field", func(r *http.Request, userID string, req SanctuaryRequest) (*game.View, error) {
		return h.svc.SanctuaryToField(r.Context(), userID, *req.Index)
	})
}

// ResetSanctuary handles POST /game/sanctuary/reset
func (h *GameHandler) ResetSanctuary() http.HandlerFunc {
	return h.userAction("Reset sanctuary", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.ResetSanctuary(r.Context(), userID)
	})
}

// Snack handles POST /game/field/snack
func (h *GameHandler) Snack() http.HandlerFunc {
	return h.userAction("Snack", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.CareSnack(r.Context(), userID)
	})
}

// Play handles POST /game/field/play
func (h *GameHandler) Play() http.HandlerFunc {
	return h.userAction("Play", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.CarePlay(r.Context(), userID)
	})
}

// Rename handles PUT /game/field/name
func (h *GameHandler) Rename() http.HandlerFunc {
	return bodyAction("Rename", func(r *http.Request, userID string, req RenameRequest) (*game.View, error) {
		return h.svc.RenameField(r.Context(), userID, req.Name)
	})
}

// AdjustGauge handles POST /game/field/adjust
func (h *GameHandler) AdjustGauge() http.HandlerFunc {
	return bodyAction("Adjust gauge", func(r *http.Request, userID string, req AdjustGaugeRequest) (*game.View, error) {
		return h.svc.AdjustFieldGauge(r.Context(), userID, roster.GaugeKind(req.Kind), req.Delta)
	})
}

// ResetField handles POST /game/field/reset
func (h *GameHandler) ResetField() http.HandlerFunc {
	return h.userAction("Reset field", func(r *http.Request, userID string) (*game.View, error) {
		return h.svc.ResetField(r.Context(), userID)
	})
}

// Visibility handles POST /game/visibility
func (h *GameHandler) Visibility() http.HandlerFunc {
	return bodyAction("Visibility", func(r *http.Request, userID string, req VisibilityRequest) (*game.View, error) {
		return h.svc.SetVisibility(r.Context(), userID, *req.Hidden)
	})
}
