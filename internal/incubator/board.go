package incubator

import (
	"fmt"
	"slices"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/hatch"
)

// Board is one player's incubator carousel and inventory row.
// A slot's state is never stored; it is derived from the egg it holds,
// the unlocked set and the clock.
type Board struct {
	Incubators [domain.IncubatorCount]*domain.Egg
	Inventory  [domain.InventorySlotCount]*domain.Egg
	// Unlocked holds the paid-for incubators at or above IncubatorLockedFrom
	Unlocked []int
	Current  int
}

// NewBoard returns an empty board with the cursor on the first incubator
func NewBoard() *Board {
	return &Board{}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := &Board{Current: b.Current, Unlocked: slices.Clone(b.Unlocked)}
	for i, egg := range b.Incubators {
		c.Incubators[i] = egg.Clone()
	}
	for i, egg := range b.Inventory {
		c.Inventory[i] = egg.Clone()
	}
	return c
}

func validIncubator(i int) bool {
	return i >= 0 && i < domain.IncubatorCount
}

// IsUnlocked reports whether incubator i may hold an egg
func (b *Board) IsUnlocked(i int) bool {
	if !validIncubator(i) {
		return false
	}
	if i < domain.IncubatorLockedFrom {
		return true
	}
	return slices.Contains(b.Unlocked, i)
}

// SetUnlocked replaces the unlocked set, keeping only lockable indices
func (b *Board) SetUnlocked(slots []int) {
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		if s >= domain.IncubatorLockedFrom && s < domain.IncubatorCount && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	b.Unlocked = out
}

// State derives the state of incubator i at now
func (b *Board) State(eng *hatch.Engine, i int, now time.Time) (domain.SlotState, error) {
	if !validIncubator(i) {
		return "", fmt.Errorf("%w: incubator %d", domain.ErrInvalidSlot, i)
	}
	if !b.IsUnlocked(i) {
		return domain.SlotStateLocked, nil
	}
	egg := b.Incubators[i]
	switch {
	case egg == nil:
		return domain.SlotStateEmpty, nil
	case eng.IsReady(egg, now):
		return domain.SlotStateReady, nil
	default:
		return domain.SlotStateIncubating, nil
	}
}

// CurrentEgg returns the egg under the cursor, or nil
func (b *Board) CurrentEgg() *domain.Egg {
	return b.Incubators[b.Current]
}

// PlaceEgg moves the egg in inventory slot invIndex into the current
// incubator, stamps its start time and compacts the inventory.
func (b *Board) PlaceEgg(invIndex int, now time.Time) (*domain.Egg, error) {
	if invIndex < 0 || invIndex >= domain.InventorySlotCount {
		return nil, fmt.Errorf("%w: inventory slot %d", domain.ErrInvalidSlot, invIndex)
	}
	if invIndex >= domain.InventoryLockedFrom {
		return nil, fmt.Errorf("%w: inventory slot %d", domain.ErrSlotLocked, invIndex)
	}
	src := b.Inventory[invIndex]
	if src == nil {
		return nil, fmt.Errorf("%w: inventory slot %d", domain.ErrSlotEmpty, invIndex)
	}
	if !b.IsUnlocked(b.Current) {
		return nil, fmt.Errorf("%w: incubator %d", domain.ErrSlotLocked, b.Current)
	}
	if b.Incubators[b.Current] != nil {
		return nil, fmt.Errorf("%w: incubator %d", domain.ErrSlotOccupied, b.Current)
	}

	egg := src.Clone()
	egg.Element = domain.NormalizeElement(egg.Element)
	started := now
	egg.HatchingStartedAt = &started

	b.Incubators[b.Current] = egg
	b.Inventory = Compact(b.Inventory, invIndex)
	return egg, nil
}

// Compact removes the egg at removed and shifts the remaining usable eggs
// left, preserving their order. Only the usable slots take part; the locked
// tail is copied through untouched.
func Compact(inv [domain.InventorySlotCount]*domain.Egg, removed int) [domain.InventorySlotCount]*domain.Egg {
	var out [domain.InventorySlotCount]*domain.Egg
	copy(out[domain.InventoryLockedFrom:], inv[domain.InventoryLockedFrom:])
	n := 0
	for i := 0; i < domain.InventoryLockedFrom; i++ {
		if i == removed || inv[i] == nil {
			continue
		}
		out[n] = inv[i]
		n++
	}
	return out
}

// TakeReady removes the ready egg from the current incubator
func (b *Board) TakeReady(eng *hatch.Engine, now time.Time) (*domain.Egg, error) {
	egg := b.CurrentEgg()
	if egg == nil {
		return nil, fmt.Errorf("%w: incubator %d", domain.ErrSlotEmpty, b.Current)
	}
	if !eng.IsReady(egg, now) {
		return nil, fmt.Errorf("%w: incubator %d", domain.ErrEggNotReady, b.Current)
	}
	b.Incubators[b.Current] = nil
	return egg, nil
}

// Prev moves the cursor left, wrapping around
func (b *Board) Prev() int {
	b.Current = (b.Current - 1 + domain.IncubatorCount) % domain.IncubatorCount
	return b.Current
}

// Next moves the cursor right, wrapping around
func (b *Board) Next() int {
	b.Current = (b.Current + 1) % domain.IncubatorCount
	return b.Current
}

// AdjustCurrent skews the current egg's start time by hours
func (b *Board) AdjustCurrent(eng *hatch.Engine, hours float64) (*domain.Egg, error) {
	egg := b.CurrentEgg()
	if egg == nil {
		return nil, fmt.Errorf("%w: incubator %d", domain.ErrSlotEmpty, b.Current)
	}
	if !egg.Started() {
		return nil, fmt.Errorf("%w: incubator %d", domain.ErrNotStarted, b.Current)
	}
	b.Incubators[b.Current] = eng.Skew(egg, hours)
	return b.Incubators[b.Current], nil
}

// ResetLocked empties and relocks the paid incubators. The cursor returns
// to the first incubator when it was on one of them. Returns the removed egg ids.
func (b *Board) ResetLocked() []string {
	var removed []string
	for i := domain.IncubatorLockedFrom; i < domain.IncubatorCount; i++ {
		if egg := b.Incubators[i]; egg != nil {
			removed = append(removed, egg.ID)
		}
		b.Incubators[i] = nil
	}
	b.Unlocked = nil
	if b.Current >= domain.IncubatorLockedFrom {
		b.Current = 0
	}
	return removed
}

// SetInventory fills the inventory from the left with eggs
func (b *Board) SetInventory(eggs []*domain.Egg) {
	var inv [domain.InventorySlotCount]*domain.Egg
	for i := 0; i < len(eggs) && i < domain.InventoryLockedFrom; i++ {
		inv[i] = eggs[i]
	}
	b.Inventory = inv
}

// ClearInventory empties every inventory slot and returns the removed egg ids
func (b *Board) ClearInventory() []string {
	ids := b.InventoryIDs()
	b.Inventory = [domain.InventorySlotCount]*domain.Egg{}
	return ids
}

// InventoryIDs lists the ids of the eggs in inventory, left to right
func (b *Board) InventoryIDs() []string {
	var ids []string
	for _, egg := range b.Inventory {
		if egg != nil {
			ids = append(ids, egg.ID)
		}
	}
	return ids
}
