package incubator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/eggtype"
	"github.com/osse101/Daymon_Go/internal/hatch"
)

var testNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) *hatch.Engine {
	t.Helper()
	reg, err := eggtype.NewRegistry()
	require.NoError(t, err)
	return hatch.NewEngine(reg)
}

func egg(id string, element domain.Element) *domain.Egg {
	return &domain.Egg{ID: id, Element: element, CreatedAt: testNow}
}

func boardWithInventory(ids ...string) *Board {
	b := NewBoard()
	eggs := make([]*domain.Egg, 0, len(ids))
	for _, id := range ids {
		eggs = append(eggs, egg(id, domain.ElementFire))
	}
	b.SetInventory(eggs)
	return b
}

func TestState(t *testing.T) {
	eng := newEngine(t)
	b := boardWithInventory("a")

	tests := []struct {
		name     string
		setup    func(b *Board)
		index    int
		expected domain.SlotState
	}{
		{"open and empty", func(*Board) {}, 0, domain.SlotStateEmpty},
		{"locked by default", func(*Board) {}, 3, domain.SlotStateLocked},
		{"unlocked and empty", func(b *Board) { b.SetUnlocked([]int{4}) }, 4, domain.SlotStateEmpty},
		{"incubating", func(b *Board) { _, _ = b.PlaceEgg(0, testNow) }, 0, domain.SlotStateIncubating},
		{"ready", func(b *Board) {
			_, _ = b.PlaceEgg(0, testNow.Add(-25*time.Hour))
		}, 0, domain.SlotStateReady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := b.Clone()
			tt.setup(c)
			state, err := c.State(eng, tt.index, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, state)
		})
	}

	_, err := b.State(eng, 5, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
}

func TestPlaceEgg(t *testing.T) {
	t.Run("stamps start and compacts", func(t *testing.T) {
		b := boardWithInventory("a", "b", "c")

		placed, err := b.PlaceEgg(1, testNow)

		require.NoError(t, err)
		assert.Equal(t, "b", placed.ID)
		require.NotNil(t, placed.HatchingStartedAt)
		assert.Equal(t, testNow, *placed.HatchingStartedAt)
		assert.Same(t, placed, b.Incubators[0])
		assert.Equal(t, []string{"a", "c"}, b.InventoryIDs())
		assert.Nil(t, b.Inventory[2])
	})

	t.Run("source egg is not mutated", func(t *testing.T) {
		b := boardWithInventory("a")
		src := b.Inventory[0]

		_, err := b.PlaceEgg(0, testNow)

		require.NoError(t, err)
		assert.Nil(t, src.HatchingStartedAt)
	})

	tests := []struct {
		name     string
		setup    func(b *Board)
		invIndex int
		err      error
	}{
		{"inventory index out of range", func(*Board) {}, 7, domain.ErrInvalidSlot},
		{"locked inventory slot", func(*Board) {}, 3, domain.ErrSlotLocked},
		{"empty inventory slot", func(*Board) {}, 2, domain.ErrSlotEmpty},
		{"locked incubator", func(b *Board) { b.Current = 3 }, 0, domain.ErrSlotLocked},
		{"occupied incubator", func(b *Board) { b.Incubators[0] = egg("x", domain.ElementFire) }, 0, domain.ErrSlotOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWithInventory("a", "b")
			tt.setup(b)
			before := b.Clone()

			_, err := b.PlaceEgg(tt.invIndex, testNow)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, before, b, "failed placement must not change the board")
		})
	}
}

func TestCompactLaw(t *testing.T) {
	ids := []string{"a", "b", "c"}
	for removed := 0; removed < domain.InventoryLockedFrom; removed++ {
		for mask := 0; mask < 1<<domain.InventoryLockedFrom; mask++ {
			var inv [domain.InventorySlotCount]*domain.Egg
			var want []string
			for i := 0; i < domain.InventoryLockedFrom; i++ {
				if mask&(1<<i) != 0 {
					inv[i] = egg(ids[i], domain.ElementWater)
					if i != removed {
						want = append(want, ids[i])
					}
				}
			}

			out := Compact(inv, removed)

			var got []string
			for i := 0; i < domain.InventoryLockedFrom; i++ {
				if i < len(want) {
					require.NotNil(t, out[i], "removed=%d mask=%b index=%d", removed, mask, i)
					got = append(got, out[i].ID)
				} else {
					assert.Nil(t, out[i], "removed=%d mask=%b index=%d", removed, mask, i)
				}
			}
			assert.Equal(t, want, got, "removed=%d mask=%b", removed, mask)
			for i := domain.InventoryLockedFrom; i < domain.InventorySlotCount; i++ {
				assert.Equal(t, inv[i], out[i])
			}
		}
	}
}

func TestTakeReady(t *testing.T) {
	eng := newEngine(t)

	b := boardWithInventory("a")
	_, err := b.TakeReady(eng, testNow)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)

	_, err = b.PlaceEgg(0, testNow)
	require.NoError(t, err)
	_, err = b.TakeReady(eng, testNow.Add(23*time.Hour))
	assert.ErrorIs(t, err, domain.ErrEggNotReady)

	got, err := b.TakeReady(eng, testNow.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Nil(t, b.Incubators[0])

	state, _ := b.State(eng, 0, testNow.Add(24*time.Hour))
	assert.Equal(t, domain.SlotStateEmpty, state)
}

func TestNavigateWraps(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 4, b.Prev())
	assert.Equal(t, 0, b.Next())
	for i := 0; i < domain.IncubatorCount; i++ {
		b.Next()
	}
	assert.Equal(t, 0, b.Current)
}

func TestAdjustCurrent(t *testing.T) {
	eng := newEngine(t)
	b := boardWithInventory("a")

	_, err := b.AdjustCurrent(eng, 1)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)

	b.Incubators[0] = egg("raw", domain.ElementFire)
	_, err = b.AdjustCurrent(eng, 1)
	assert.ErrorIs(t, err, domain.ErrNotStarted)

	b.Incubators[0] = nil
	_, err = b.PlaceEgg(0, testNow)
	require.NoError(t, err)

	adjusted, err := b.AdjustCurrent(eng, 5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, eng.Progress(adjusted, testNow), 1e-9)
}

func TestResetLocked(t *testing.T) {
	b := NewBoard()
	b.SetUnlocked([]int{3, 4})
	b.Incubators[3] = egg("x", domain.ElementDark)
	b.Incubators[1] = egg("keep", domain.ElementDark)
	b.Current = 4

	removed := b.ResetLocked()

	assert.Equal(t, []string{"x"}, removed)
	assert.Empty(t, b.Unlocked)
	assert.Equal(t, 0, b.Current)
	assert.NotNil(t, b.Incubators[1])
	assert.False(t, b.IsUnlocked(3))

	b.Current = 2
	b.ResetLocked()
	assert.Equal(t, 2, b.Current)
}

func TestSetUnlocked_FiltersAndSorts(t *testing.T) {
	b := NewBoard()
	b.SetUnlocked([]int{4, 1, 3, 4, 9})
	assert.Equal(t, []int{3, 4}, b.Unlocked)
}

func TestInventoryHelpers(t *testing.T) {
	b := boardWithInventory("a", "b", "c", "d")
	assert.Equal(t, []string{"a", "b", "c"}, b.InventoryIDs(), "locked slots are never filled")

	assert.Equal(t, []string{"a", "b", "c"}, b.ClearInventory())
	assert.Empty(t, b.InventoryIDs())
}
