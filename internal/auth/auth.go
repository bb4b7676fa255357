// Package auth issues and checks bearer session tokens for players.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Daymon_Go/internal/domain"
)

// BearerPrefix precedes the token in the Authorization header
const BearerPrefix = "Bearer "

// Sessions maps opaque tokens to player ids. Tokens expire after the TTL
// and the oldest are dropped when the store is full.
type Sessions struct {
	tokens *expirable.LRU[string, string]
}

// NewSessions creates a token store
func NewSessions(size int, ttl time.Duration) *Sessions {
	if size <= 0 {
		size = 1
	}
	return &Sessions{tokens: expirable.NewLRU[string, string](size, nil, ttl)}
}

// Issue returns a new token for userID
func (s *Sessions) Issue(userID string) string {
	token := uuid.NewString()
	s.tokens.Add(token, userID)
	return token
}

// Verify returns the player behind token, or ErrSessionExpired
func (s *Sessions) Verify(token string) (string, error) {
	if token == "" {
		return "", domain.ErrSessionExpired
	}
	userID, ok := s.tokens.Get(token)
	if !ok {
		return "", domain.ErrSessionExpired
	}
	return userID, nil
}

// Revoke forgets token
func (s *Sessions) Revoke(token string) {
	s.tokens.Remove(token)
}

// TokenFromHeader extracts the token from an Authorization header value
func TokenFromHeader(header string) string {
	if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(BearerPrefix):])
}

type contextKey struct{}

// WithUserID stores the authenticated player id in ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserIDFromContext returns the authenticated player id, if any
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKey{}).(string)
	return userID, ok && userID != ""
}
