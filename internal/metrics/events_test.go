package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	hatchedBefore := testutil.ToFloat64(EggsHatched.WithLabelValues("light"))
	goldBefore := testutil.ToFloat64(GoldRewarded)
	m := &domain.Monster{ID: "m1", Element: domain.ElementLight}
	require.NoError(t, bus.Publish(ctx, event.NewEggHatchedEvent("u1", m, domain.LocationField, 150)))

	assert.Equal(t, hatchedBefore+1, testutil.ToFloat64(EggsHatched.WithLabelValues("light")))
	assert.Equal(t, goldBefore+150, testutil.ToFloat64(GoldRewarded))

	rolledBefore := testutil.ToFloat64(Unlocks.WithLabelValues(ResultRolledBack))
	require.NoError(t, bus.Publish(ctx, event.NewUnlockRolledBackEvent("u1", 3, 10000, "network")))
	assert.Equal(t, rolledBefore+1, testutil.ToFloat64(Unlocks.WithLabelValues(ResultRolledBack)))

	spentBefore := testutil.ToFloat64(GoldSpent)
	require.NoError(t, bus.Publish(ctx, event.NewIncubatorUnlockedEvent("u1", 4, 20000)))
	assert.Equal(t, spentBefore+20000, testutil.ToFloat64(GoldSpent))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	errsBefore := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.EggPlaced)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.EggPlaced,
		Payload: make(chan int), // not JSON encodable
	})
	require.NoError(t, err)
	assert.Equal(t, errsBefore+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.EggPlaced))))
}
