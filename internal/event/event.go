package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Hatchery event types
const (
	EggPlaced           Type = domain.EventTypeEggPlaced
	EggHatched          Type = domain.EventTypeEggHatched
	IncubatorUnlocked   Type = domain.EventTypeIncubatorUnlocked
	UnlockRolledBack    Type = domain.EventTypeUnlockRolledBack
	InventoryRestored   Type = domain.EventTypeInventoryRestored
	SnapshotSaveSkipped Type = domain.EventTypeSnapshotSaveSkipped
)

// Type-safe event constructors

// NewEggPlacedEvent creates an egg placed event
func NewEggPlacedEvent(userID string, egg *domain.Egg, incubator int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EggPlaced,
		Payload: domain.EggPlacedPayload{
			UserID:    userID,
			EggID:     egg.ID,
			Element:   egg.Element,
			Incubator: incubator,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewEggHatchedEvent creates an egg hatched event
func NewEggHatchedEvent(userID string, m *domain.Monster, loc domain.Location, reward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EggHatched,
		Payload: domain.EggHatchedPayload{
			UserID:    userID,
			MonsterID: m.ID,
			Element:   m.Element,
			Location:  loc,
			Reward:    reward,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewIncubatorUnlockedEvent creates an unlock confirmed event
func NewIncubatorUnlockedEvent(userID string, slot, cost int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    IncubatorUnlocked,
		Payload: domain.IncubatorUnlockPayload{
			UserID:    userID,
			Slot:      slot,
			Cost:      cost,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewUnlockRolledBackEvent creates an unlock compensation event
func NewUnlockRolledBackEvent(userID string, slot, cost int, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UnlockRolledBack,
		Payload: domain.IncubatorUnlockPayload{
			UserID:    userID,
			Slot:      slot,
			Cost:      cost,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPersistenceEvent creates a save-path incident event (restore, guard skip)
func NewPersistenceEvent(eventType Type, userID, detail string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.PersistencePayload{
			UserID:    userID,
			Detail:    detail,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerFailures, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
