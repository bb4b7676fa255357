package eventlog

import (
	"context"
	"time"
)

// Entry is one row of the events audit table
type Entry struct {
	ID        int64          `json:"id"`
	EventType string         `json:"event_type"`
	UserID    *string        `json:"user_id,omitempty"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, eventType string, userID *string, payload map[string]any) error

	// GetEventsByUser retrieves the newest events for a player
	GetEventsByUser(ctx context.Context, userID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
