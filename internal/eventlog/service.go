package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/Daymon_Go/internal/event"
	"github.com/osse101/Daymon_Go/internal/logger"
)

// LoggedEventTypes are the hatchery events kept in the audit table
var LoggedEventTypes = []event.Type{
	event.EggPlaced,
	event.EggHatched,
	event.IncubatorUnlocked,
	event.UnlockRolledBack,
	event.InventoryRestored,
	event.SnapshotSaveSkipped,
}

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger on every hatchery event type
	Subscribe(bus event.Bus)

	// History returns the newest logged events of a player
	History(ctx context.Context, userID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range LoggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// payloadMap flattens a typed payload into the JSON object stored in the payload column
func payloadMap(payload any) (map[string]any, bool) {
	if m, ok := payload.(map[string]any); ok {
		return m, true
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := payloadMap(evt.Payload)
	if !ok {
		log.Debug(LogMsgEventPayloadInvalid, LogFieldType, evt.Type)
		return nil
	}

	var userID *string
	if uid, ok := payload[PayloadKeyUserID].(string); ok && uid != "" {
		userID = &uid
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

func (s *service) History(ctx context.Context, userID string, limit int) ([]Entry, error) {
	return s.repo.GetEventsByUser(ctx, userID, limit)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
