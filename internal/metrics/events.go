package metrics

import (
	"context"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/event"
	"github.com/osse101/Daymon_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all hatchery events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.EggPlaced,
		event.EggHatched,
		event.IncubatorUnlocked,
		event.UnlockRolledBack,
		event.InventoryRestored,
		event.SnapshotSaveSkipped,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.EggPlaced:
		var p domain.EggPlacedPayload
		if p, err = event.DecodePayload[domain.EggPlacedPayload](evt.Payload); err == nil {
			EggsPlaced.WithLabelValues(string(p.Element)).Inc()
		}

	case event.EggHatched:
		var p domain.EggHatchedPayload
		if p, err = event.DecodePayload[domain.EggHatchedPayload](evt.Payload); err == nil {
			EggsHatched.WithLabelValues(string(p.Element)).Inc()
			GoldRewarded.Add(float64(p.Reward))
		}

	case event.IncubatorUnlocked:
		var p domain.IncubatorUnlockPayload
		if p, err = event.DecodePayload[domain.IncubatorUnlockPayload](evt.Payload); err == nil {
			Unlocks.WithLabelValues(ResultSuccess).Inc()
			GoldSpent.Add(float64(p.Cost))
		}

	case event.UnlockRolledBack:
		Unlocks.WithLabelValues(ResultRolledBack).Inc()

	case event.InventoryRestored, event.SnapshotSaveSkipped:
		PersistIncidents.WithLabelValues(string(evt.Type)).Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
