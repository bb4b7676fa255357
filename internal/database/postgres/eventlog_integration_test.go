package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
)

func TestEventLogRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	players := NewHatcheryRepository(pool)
	repo := NewEventLogRepository(pool)
	ctx := context.Background()

	p := newTestPlayer(t, players, "event_player", domain.StartingGold)

	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeEggPlaced, &p.ID, map[string]any{"user_id": p.ID, "incubator": 0}))
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeEggHatched, &p.ID, map[string]any{"user_id": p.ID, "reward": 100}))
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeSnapshotSaveSkipped, nil, map[string]any{"detail": "guard"}))

	entries, err := repo.GetEventsByUser(ctx, p.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EventTypeEggHatched, entries[0].EventType)
	assert.Equal(t, float64(100), entries[0].Payload["reward"])
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, p.ID, *entries[0].UserID)

	_, err = pool.Exec(ctx, `UPDATE events SET created_at = NOW() - INTERVAL '40 days' WHERE event_type = $1`, domain.EventTypeEggPlaced)
	require.NoError(t, err)

	deleted, err := repo.CleanupOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	entries, err = repo.GetEventsByUser(ctx, p.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
