package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/database/memory"
	"github.com/osse101/Daymon_Go/internal/domain"
)

func newStore(t *testing.T) (*Store, *memory.HatcheryRepository) {
	t.Helper()
	repo := memory.NewHatcheryRepository()
	require.NoError(t, repo.CreatePlayer(context.Background(),
		&domain.Player{ID: "u1", Nickname: "alice", Gold: 900, Mood: domain.DefaultMood}))
	return NewStore(repo), repo
}

func TestStore_SaveAndLoad(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	n, err := store.SaveSnapshot(ctx, fullState(), 0)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	loaded, count, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.Equal(t, []int{3}, loaded.Player.UnlockedIncubatorSlots)
	assert.Equal(t, "e3", loaded.Board.Incubators[3].ID)
	assert.Equal(t, "Sprout", loaded.Roster.Field.Nickname)
}

func TestStore_SaveRemovesOrphansAndSwaps(t *testing.T) {
	store, repo := newStore(t)
	ctx := context.Background()
	s := fullState()
	_, err := store.SaveSnapshot(ctx, s, 0)
	require.NoError(t, err)

	// promote the sanctuary monster and drop an inventory egg
	s.Roster.Field, s.Roster.Sanctuary[2] = s.Roster.Sanctuary[2], s.Roster.Field
	s.Board.Inventory[1] = nil

	n, err := store.SaveSnapshot(ctx, s, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	rows, err := repo.ListMonsters(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	loaded, _, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "m2", loaded.Roster.Field.ID)
	assert.Equal(t, "m0", loaded.Roster.Sanctuary[2].ID)
}

func TestStore_SaveGuard(t *testing.T) {
	store, repo := newStore(t)
	ctx := context.Background()
	_, err := store.SaveSnapshot(ctx, fullState(), 0)
	require.NoError(t, err)

	empty := NewState(&domain.Player{ID: "u1", Nickname: "alice"})
	n, err := store.SaveSnapshot(ctx, empty, 6)
	assert.ErrorIs(t, err, domain.ErrDataLossGuard)
	assert.Equal(t, 6, n)

	rows, _ := repo.ListMonsters(ctx, "u1")
	assert.Len(t, rows, 6)
}

func TestStore_SaveFailureLeavesStorageUntouched(t *testing.T) {
	store, repo := newStore(t)
	ctx := context.Background()
	_, err := store.SaveSnapshot(ctx, fullState(), 0)
	require.NoError(t, err)

	boom := errors.New("disk full")
	repo.SetFaults(memory.Faults{Commit: boom})
	s := fullState()
	s.Board.Inventory[0] = nil
	s.Player.Gold = 1

	n, err := store.SaveSnapshot(ctx, s, 6)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 6, n)

	rows, _ := repo.ListMonsters(ctx, "u1")
	assert.Len(t, rows, 6)
	p, _ := repo.GetPlayer(ctx, "u1")
	assert.Equal(t, 900, p.Gold)
}

func slotEggs(ids ...string) []domain.MonsterRecord {
	out := make([]domain.MonsterRecord, len(ids))
	for i, id := range ids {
		out[i] = domain.MonsterRecord{ID: id, UserID: "u1", Location: domain.SlotLocation(i), Element: domain.ElementFire}
	}
	return out
}

func TestStore_ReplaceInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store, repo := newStore(t)
		require.NoError(t, repo.UpsertMonsters(ctx, "u1", slotEggs("old0", "old1")))

		require.NoError(t, store.ReplaceInventory(ctx, "u1", slotEggs("n0", "n1", "n2")))

		rows, _ := repo.ListMonstersByLocationKind(ctx, "u1", domain.LocationKindSlot)
		assert.Equal(t, []string{"n0", "n1", "n2"}, IDs(rows))
	})

	t.Run("insert fails, backup restored", func(t *testing.T) {
		store, repo := newStore(t)
		require.NoError(t, repo.UpsertMonsters(ctx, "u1", slotEggs("old0", "old1")))
		repo.SetFaults(memory.Faults{Upsert: errors.New("insert failed")})

		err := store.ReplaceInventory(ctx, "u1", slotEggs("n0", "n1", "n2"))
		assert.ErrorIs(t, err, domain.ErrRestored)

		rows, _ := repo.ListMonstersByLocationKind(ctx, "u1", domain.LocationKindSlot)
		assert.Equal(t, []string{"old0", "old1"}, IDs(rows))
	})

	t.Run("backup fails, nothing deleted", func(t *testing.T) {
		store, repo := newStore(t)
		require.NoError(t, repo.UpsertMonsters(ctx, "u1", slotEggs("old0")))
		repo.SetFaults(memory.Faults{List: errors.New("read failed")})

		err := store.ReplaceInventory(ctx, "u1", slotEggs("n0"))
		require.Error(t, err)

		rows, _ := repo.ListMonsters(ctx, "u1")
		assert.Equal(t, []string{"old0"}, IDs(rows))
	})
}

func TestStore_LoadMissingPlayer(t *testing.T) {
	store, _ := newStore(t)
	_, _, err := store.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
