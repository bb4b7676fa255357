package incubator

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/logger"
)

// Authority makes the final unlock decision server-side (gold races, double unlocks)
type Authority interface {
	UnlockIncubatorSlot(ctx context.Context, userID string, slot, cost int) (domain.UnlockResult, error)
}

// Command is an optimistic local change paired with its exact inverse
type Command struct {
	Apply      func()
	Compensate func()
}

// UnlockCost returns the price of incubator slot, or ErrInvalidSlot when it is not lockable
func UnlockCost(slot int) (int, error) {
	cost, ok := domain.IncubatorUnlockCosts[slot]
	if !ok {
		return 0, fmt.Errorf("%w: incubator %d is not lockable", domain.ErrInvalidSlot, slot)
	}
	return cost, nil
}

// CheckUnlock runs the local preconditions of an unlock without touching state
func CheckUnlock(gold int, board *Board, slot int) (int, error) {
	cost, err := UnlockCost(slot)
	if err != nil {
		return 0, err
	}
	if board.IsUnlocked(slot) {
		return 0, fmt.Errorf("%w: incubator %d", domain.ErrAlreadyUnlocked, slot)
	}
	if gold < cost {
		return 0, fmt.Errorf("%w: need %d gold, have %d", domain.ErrInsufficientFunds, cost, gold)
	}
	return cost, nil
}

// NewUnlockCommand debits cost and marks slot unlocked; compensation credits
// the cost back and removes the slot again.
func NewUnlockCommand(gold *int, board *Board, slot, cost int) Command {
	return Command{
		Apply: func() {
			*gold -= cost
			board.SetUnlocked(append(slices.Clone(board.Unlocked), slot))
		},
		Compensate: func() {
			*gold += cost
			board.SetUnlocked(slices.DeleteFunc(slices.Clone(board.Unlocked), func(s int) bool { return s == slot }))
		},
	}
}

// Unlock runs the unlock saga for slot. Local checks happen before any call to
// the authority. The optimistic change is applied under mu, mu is released
// for the authority call, and the outcome is settled under mu again: a
// rejection or error compensates, a success adopts the authority's gold plus
// any gold credited locally while the call was in flight, and the authority's
// unlocked set. mu must not be held by the caller.
func Unlock(ctx context.Context, mu sync.Locker, userID string, gold *int, board *Board, slot int, auth Authority) (domain.UnlockResult, error) {
	log := logger.FromContext(ctx)

	mu.Lock()
	cost, err := CheckUnlock(*gold, board, slot)
	if err != nil {
		mu.Unlock()
		return domain.UnlockResult{}, err
	}
	cmd := NewUnlockCommand(gold, board, slot, cost)
	cmd.Apply()
	applied := *gold
	mu.Unlock()

	res, err := auth.UnlockIncubatorSlot(ctx, userID, slot, cost)

	mu.Lock()
	defer mu.Unlock()

	if err != nil {
		cmd.Compensate()
		log.Error("Unlock call failed, rolled back", "slot", slot, "error", err)
		return domain.UnlockResult{}, fmt.Errorf("unlock incubator %d: %w", slot, err)
	}
	if !res.Success {
		cmd.Compensate()
		log.Warn("Unlock rejected, rolled back", "slot", slot, "reason", res.Reason)
		return res, fmt.Errorf("%w: %s", domain.ErrUnlockRejected, res.Reason)
	}

	*gold += res.Gold - applied
	board.SetUnlocked(res.UnlockedSlots)
	log.Info("Incubator unlocked", "slot", slot, "gold", res.Gold)
	return res, nil
}
