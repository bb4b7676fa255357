package event

import (
	"context"
	"errors"
	"testing"

	"github.com/osse101/Daymon_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestConstructors_UseHatcheryTypes(t *testing.T) {
	egg := &domain.Egg{ID: "e1", Element: domain.ElementWater}
	evt := NewEggPlacedEvent("u1", egg, 2)
	if evt.Type != EggPlaced || evt.Version != EventSchemaVersion {
		t.Fatalf("unexpected event header: %+v", evt)
	}
	payload, err := DecodePayload[domain.EggPlacedPayload](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if payload.Incubator != 2 || payload.EggID != "e1" {
		t.Errorf("unexpected payload: %+v", payload)
	}

	rb := NewUnlockRolledBackEvent("u1", 3, 10000, "insufficient_gold")
	unlock, err := DecodePayload[domain.IncubatorUnlockPayload](rb.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if rb.Type != UnlockRolledBack || unlock.Reason != "insufficient_gold" || unlock.Cost != 10000 {
		t.Errorf("unexpected rollback event: %+v", rb)
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"user_id": "u1", "slot": 4, "cost": 20000}
	p, err := DecodePayload[domain.IncubatorUnlockPayload](raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Slot != 4 || p.Cost != 20000 || p.UserID != "u1" {
		t.Errorf("unexpected payload: %+v", p)
	}
}
