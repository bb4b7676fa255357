package persist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/roster"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fullState() State {
	started := t0.Add(-2 * time.Hour)
	s := NewState(&domain.Player{ID: "u1", Nickname: "alice", Gold: 900, Mood: domain.DefaultMood, UnlockedIncubatorSlots: []int{3}})
	s.Board.Incubators[0] = &domain.Egg{ID: "e0", Element: domain.ElementWater, CreatedAt: t0, HatchingStartedAt: &started}
	s.Board.Incubators[3] = &domain.Egg{ID: "e3", Element: domain.ElementDark, CreatedAt: t0, HatchingStartedAt: &started}
	s.Board.Inventory[0] = &domain.Egg{ID: "s0", Element: domain.ElementFire, CreatedAt: t0}
	s.Board.Inventory[1] = &domain.Egg{ID: "s1", Element: domain.ElementLight, CreatedAt: t0}
	s.Roster.Field = roster.NewHatchling("m0", domain.ElementWood, t0)
	s.Roster.Field.Nickname = "Sprout"
	s.Roster.Sanctuary[2] = roster.NewHatchling("m2", domain.ElementMetal, t0)
	return s
}

func TestSnapshot_OneRowPerLocation(t *testing.T) {
	player, records := Snapshot(fullState())

	assert.Equal(t, []int{3}, player.UnlockedIncubatorSlots)
	require.Len(t, records, 6)

	byLoc := make(map[domain.Location]domain.MonsterRecord)
	for _, rec := range records {
		assert.Equal(t, "u1", rec.UserID)
		byLoc[rec.Location] = rec
	}
	assert.Equal(t, "e0", byLoc[domain.IncubatorLocation(0)].ID)
	assert.NotNil(t, byLoc[domain.IncubatorLocation(0)].HatchingStartedAt)
	assert.Nil(t, byLoc[domain.SlotLocation(1)].HatchingStartedAt)
	assert.False(t, byLoc[domain.SlotLocation(1)].IsHatched)

	field := byLoc[domain.LocationField]
	assert.True(t, field.IsHatched)
	require.NotNil(t, field.Nickname)
	assert.Equal(t, "Sprout", *field.Nickname)
	assert.Equal(t, 1, *field.Level)
	assert.Nil(t, byLoc[domain.SanctuaryLocation(2)].Nickname)
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	original := fullState()
	player, records := Snapshot(original)

	restored, skipped := Restore(player, records)
	assert.Empty(t, skipped)
	assert.Equal(t, original.Board.Unlocked, restored.Board.Unlocked)
	assert.Equal(t, original.Board.Incubators, restored.Board.Incubators)
	assert.Equal(t, original.Board.Inventory, restored.Board.Inventory)
	assert.Equal(t, original.Roster.Field, restored.Roster.Field)
	assert.Equal(t, original.Roster.Sanctuary, restored.Roster.Sanctuary)
}

func TestRestore_SkipsBadRows(t *testing.T) {
	player := &domain.Player{ID: "u1"}
	records := []domain.MonsterRecord{
		{ID: "a", Location: domain.SlotLocation(0)},
		{ID: "dup", Location: domain.SlotLocation(0)},
		{ID: "bad", Location: "attic_1"},
		{ID: "far", Location: "sanctuary_9"},
		{ID: "hatched-in-incubator", Location: domain.IncubatorLocation(1), IsHatched: true},
	}

	s, skipped := Restore(player, records)
	assert.Equal(t, "a", s.Board.Inventory[0].ID)
	assert.Equal(t, domain.DefaultElement, s.Board.Inventory[0].Element)
	assert.Nil(t, s.Board.Incubators[1])
	assert.Equal(t, []string{"dup", "bad", "far", "hatched-in-incubator"}, IDs(skipped))
}

func TestRecordMonster_Defaults(t *testing.T) {
	m := RecordMonster(domain.MonsterRecord{ID: "m", Location: domain.LocationField, IsHatched: true})

	assert.Equal(t, 1, m.Level)
	assert.Equal(t, domain.HatchlingHunger, m.Hunger)
	assert.Equal(t, domain.HatchlingHappiness, m.Happiness)
	assert.Equal(t, domain.DefaultElement, m.Element)
	assert.True(t, m.HungerUpdatedAt.IsZero())
}

func TestCheckDataLoss(t *testing.T) {
	tests := []struct {
		name      string
		persisted int
		next      int
		wantErr   bool
	}{
		{"new player saving nothing", 0, 0, false},
		{"normal save", 4, 5, false},
		{"shrinking save", 4, 1, false},
		{"empty over existing", 4, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDataLoss(tt.persisted, tt.next)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrDataLossGuard)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
