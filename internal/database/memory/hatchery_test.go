package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/repository"
)

func seed(t *testing.T) (*HatcheryRepository, *domain.Player) {
	t.Helper()
	repo := NewHatcheryRepository()
	p := &domain.Player{ID: "u1", Nickname: "alice", Gold: 15000, Mood: domain.DefaultMood}
	require.NoError(t, repo.CreatePlayer(context.Background(), p))
	return repo, p
}

func TestPlayers(t *testing.T) {
	repo, p := seed(t)
	ctx := context.Background()

	got, err := repo.GetPlayerByNickname(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	got.Gold = 1
	stored, _ := repo.GetPlayer(ctx, p.ID)
	assert.Equal(t, 15000, stored.Gold, "returned players are copies")

	err = repo.CreatePlayer(ctx, &domain.Player{ID: "u2", Nickname: "alice"})
	assert.ErrorIs(t, err, domain.ErrInvalidNickname)

	_, err = repo.GetPlayer(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestUnlockIncubatorSlot(t *testing.T) {
	repo, p := seed(t)
	ctx := context.Background()

	res, err := repo.UnlockIncubatorSlot(ctx, p.ID, 3, 10000)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 5000, res.Gold)

	res, err = repo.UnlockIncubatorSlot(ctx, p.ID, 3, 10000)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, reasonAlreadyUnlocked, res.Reason)

	res, err = repo.UnlockIncubatorSlot(ctx, p.ID, 4, 20000)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, reasonInsufficientGold, res.Reason)

	boom := errors.New("network down")
	repo.SetFaults(Faults{Unlock: boom})
	_, err = repo.UnlockIncubatorSlot(ctx, p.ID, 4, 0)
	assert.ErrorIs(t, err, boom)
}

func TestMonsters_UniqueLocation(t *testing.T) {
	repo, p := seed(t)
	ctx := context.Background()

	a := domain.MonsterRecord{ID: "a", Location: domain.SlotLocation(0)}
	b := domain.MonsterRecord{ID: "b", Location: domain.SlotLocation(0)}
	require.NoError(t, repo.UpsertMonsters(ctx, p.ID, []domain.MonsterRecord{a}))
	err := repo.UpsertMonsters(ctx, p.ID, []domain.MonsterRecord{b})
	require.ErrorIs(t, err, errDuplicateLocation)

	rows, err := repo.ListMonsters(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.DefaultElement, rows[0].Element)
	assert.Equal(t, p.ID, rows[0].UserID)
}

func TestTx_CommitAndRollback(t *testing.T) {
	repo, p := seed(t)
	ctx := context.Background()
	require.NoError(t, repo.UpsertMonsters(ctx, p.ID, []domain.MonsterRecord{
		{ID: "a", Location: domain.SlotLocation(0)},
		{ID: "b", Location: domain.SlotLocation(1)},
	}))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	// swap is only checked at commit
	require.NoError(t, tx.UpsertMonsters(ctx, p.ID, []domain.MonsterRecord{
		{ID: "a", Location: domain.SlotLocation(1)},
		{ID: "b", Location: domain.SlotLocation(0)},
	}))
	n, err := tx.DeleteMonstersExcept(ctx, p.ID, []string{"a", "b"})
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, tx.UpdatePlayer(ctx, &domain.Player{ID: p.ID, Gold: 7, UnlockedIncubatorSlots: []int{3}}))
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)

	slots, err := repo.ListMonstersByLocationKind(ctx, p.ID, domain.LocationKindSlot)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "b", slots[0].ID)
	stored, _ := repo.GetPlayer(ctx, p.ID)
	assert.Equal(t, 7, stored.Gold)

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.DeleteMonstersExcept(ctx, p.ID, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	rows, _ := repo.ListMonsters(ctx, p.ID)
	assert.Len(t, rows, 2)
}

func TestFaults_AreOneShot(t *testing.T) {
	repo, p := seed(t)
	ctx := context.Background()
	boom := errors.New("boom")
	repo.SetFaults(Faults{Upsert: boom})

	err := repo.UpsertMonsters(ctx, p.ID, []domain.MonsterRecord{{ID: "a", Location: domain.SlotLocation(0)}})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, repo.UpsertMonsters(ctx, p.ID, []domain.MonsterRecord{{ID: "a", Location: domain.SlotLocation(0)}}))
}
