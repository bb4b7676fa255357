package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/event"
	"github.com/osse101/Daymon_Go/internal/incubator"
	"github.com/osse101/Daymon_Go/internal/logger"
	"github.com/osse101/Daymon_Go/internal/metrics"
	"github.com/osse101/Daymon_Go/internal/persist"
	"github.com/osse101/Daymon_Go/internal/roster"
)

func (s *service) PlaceEgg(ctx context.Context, userID string, invIndex int) (*View, error) {
	var placed *domain.Egg
	var at int
	view, err := s.mutate(ctx, userID, func(sess *session, now time.Time) error {
		egg, err := sess.state.Board.PlaceEgg(invIndex, now)
		if err != nil {
			return err
		}
		sess.gesture.Reset()
		placed, at = egg, sess.state.Board.Current
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgEggPlaced, "user_id", userID, "egg_id", placed.ID, "incubator", at)
	s.publish(ctx, event.NewEggPlacedEvent(userID, placed, at))
	return view, nil
}

func (s *service) Navigate(ctx context.Context, userID, direction string) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch direction {
	case DirectionPrev:
		sess.state.Board.Prev()
	case DirectionNext:
		sess.state.Board.Next()
	default:
		return nil, fmt.Errorf("%w: direction %q", domain.ErrInvalidInput, direction)
	}
	sess.gesture.Reset()
	return s.view(sess, s.now()), nil
}

// Tap advances the hatch gesture on the current incubator. Taps on an egg
// that is not ready are ignored rather than rejected.
func (s *service) Tap(ctx context.Context, userID string) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	egg := sess.state.Board.CurrentEgg()
	ready := egg != nil && sess.state.Board.IsUnlocked(sess.state.Board.Current) && s.engine.IsReady(egg, now)
	sess.gesture.Tap(ready, now)
	return s.view(sess, now), nil
}

// Dismiss closes a finished hatch: the egg leaves its incubator, a hatchling
// joins the roster and the player is paid the element's reward.
func (s *service) Dismiss(ctx context.Context, userID string) (*View, error) {
	var hatched *domain.Monster
	var loc domain.Location
	var reward int
	view, err := s.mutate(ctx, userID, func(sess *session, now time.Time) error {
		if !sess.gesture.Hatched(now) {
			return domain.ErrNotHatched
		}
		if !sess.state.Roster.HasRoom() {
			return domain.ErrSanctuaryFull
		}
		egg, err := sess.state.Board.TakeReady(s.engine, now)
		if err != nil {
			sess.gesture.Reset()
			return err
		}

		m := roster.NewHatchling(s.newID(), egg.Element, now)
		if loc, err = sess.state.Roster.Admit(m); err != nil {
			return err
		}
		reward = domain.HatchReward(m.Element)
		sess.state.Player.Gold += reward
		sess.gesture.Reset()
		hatched = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgEggHatched, "user_id", userID, "monster_id", hatched.ID, "location", loc, "reward", reward)
	s.publish(ctx, event.NewEggHatchedEvent(userID, hatched, loc, reward))
	return view, nil
}

// UnlockIncubator pays for a locked incubator. Pending changes are written
// first so the authority sees current gold, and snapshot saves are held off
// until the unlock settles.
func (s *service) UnlockIncubator(ctx context.Context, userID string, slot int) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.unlocking {
		sess.mu.Unlock()
		return nil, fmt.Errorf("%w: an unlock is already in progress", domain.ErrUnlockRejected)
	}
	if _, err := incubator.CheckUnlock(sess.state.Player.Gold, sess.state.Board, slot); err != nil {
		sess.mu.Unlock()
		metrics.Unlocks.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, err
	}
	sess.mu.Unlock()

	if s.saver != nil {
		if err := s.saver.FlushNow(ctx, userID); err != nil && !errors.Is(err, domain.ErrDataLossGuard) {
			return nil, fmt.Errorf("failed to save before unlock: %w", err)
		}
	}

	sess.mu.Lock()
	sess.unlocking = true
	sess.mu.Unlock()
	defer func() {
		sess.mu.Lock()
		sess.unlocking = false
		sess.mu.Unlock()
	}()

	cost, _ := incubator.UnlockCost(slot)
	res, err := incubator.Unlock(ctx, &sess.mu, userID, &sess.state.Player.Gold, sess.state.Board, slot, s.repo)
	switch {
	case errors.Is(err, domain.ErrAlreadyUnlocked), errors.Is(err, domain.ErrInsufficientFunds):
		metrics.Unlocks.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, err
	case errors.Is(err, domain.ErrUnlockRejected):
		s.publish(ctx, event.NewUnlockRolledBackEvent(userID, slot, cost, res.Reason))
		return nil, err
	case err != nil:
		s.publish(ctx, event.NewUnlockRolledBackEvent(userID, slot, cost, err.Error()))
		return nil, err
	}

	s.publish(ctx, event.NewIncubatorUnlockedEvent(userID, slot, cost))

	sess.mu.Lock()
	sess.state.Player.UnlockedIncubatorSlots = append([]int(nil), res.UnlockedSlots...)
	view := s.view(sess, s.now())
	sess.mu.Unlock()
	return view, nil
}

// AdjustHatch skews the current egg's start time by hours
func (s *service) AdjustHatch(ctx context.Context, userID string, hours float64) (*View, error) {
	if err := s.requireDebug(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(sess *session, _ time.Time) error {
		if _, err := sess.state.Board.AdjustCurrent(s.engine, hours); err != nil {
			return err
		}
		sess.gesture.Reset()
		return nil
	})
}

// direct runs a write that bypasses the snapshot path. Storage is written
// first; fn applies the same change in memory only once it succeeds.
func (s *service) direct(ctx context.Context, userID string, fn func(sess *session, now time.Time) (removed int, err error)) (*View, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.io.Lock()
	defer sess.io.Unlock()
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.unlocking {
		return nil, fmt.Errorf("%w: an unlock is in progress", domain.ErrUnlockRejected)
	}
	now := s.now()
	removed, err := fn(sess, now)
	if err != nil {
		return nil, err
	}
	sess.persisted = max(sess.persisted-removed, 0)
	return s.view(sess, now), nil
}

// ResetIncubator empties and relocks the paid incubators
func (s *service) ResetIncubator(ctx context.Context, userID string) (*View, error) {
	if err := s.requireDebug(); err != nil {
		return nil, err
	}
	return s.direct(ctx, userID, func(sess *session, _ time.Time) (int, error) {
		next := sess.state.Board.Clone()
		ids := next.ResetLocked()
		if err := s.store.DeleteRecords(ctx, userID, ids); err != nil {
			return 0, err
		}
		player := sess.state.Player.Clone()
		player.UnlockedIncubatorSlots = nil
		if err := s.store.UpdatePlayer(ctx, player); err != nil {
			return 0, err
		}

		sess.state.Board = next
		sess.state.Player = player
		sess.gesture.Reset()
		logger.FromContext(ctx).Info(LogMsgIncubatorReset, "user_id", userID, "removed", len(ids))
		return len(ids), nil
	})
}

// ResetSlots swaps the inventory for StarterEggCount random eggs
func (s *service) ResetSlots(ctx context.Context, userID string) (*View, error) {
	return s.direct(ctx, userID, func(sess *session, now time.Time) (int, error) {
		eggs := s.starterEggs(now)
		records := make([]domain.MonsterRecord, len(eggs))
		for i, egg := range eggs {
			records[i] = persist.EggRecord(userID, domain.SlotLocation(i), egg)
		}
		removed := len(sess.state.Board.InventoryIDs())

		if err := s.store.ReplaceInventory(ctx, userID, records); err != nil {
			switch {
			case errors.Is(err, domain.ErrRestored):
				s.publish(ctx, event.NewPersistenceEvent(event.InventoryRestored, userID, err.Error()))
			case errors.Is(err, domain.ErrRestoreFailed):
				// storage lost the old slot rows; the next snapshot writes them back
				s.publish(ctx, event.NewPersistenceEvent(event.InventoryRestored, userID, err.Error()))
				sess.persisted = max(sess.persisted-removed, 0)
				s.markDirty(userID)
			}
			return 0, err
		}

		sess.state.Board.SetInventory(eggs)
		logger.FromContext(ctx).Info(LogMsgSlotsReset, "user_id", userID, "eggs", len(eggs))
		return removed - len(eggs), nil
	})
}

// DeleteAllSlots removes every inventory egg
func (s *service) DeleteAllSlots(ctx context.Context, userID string) (*View, error) {
	return s.direct(ctx, userID, func(sess *session, _ time.Time) (int, error) {
		ids := sess.state.Board.InventoryIDs()
		if err := s.store.DeleteRecords(ctx, userID, ids); err != nil {
			return 0, err
		}
		sess.state.Board.ClearInventory()
		logger.FromContext(ctx).Info(LogMsgSlotsCleared, "user_id", userID, "removed", len(ids))
		return len(ids), nil
	})
}

func (s *service) starterEggs(now time.Time) []*domain.Egg {
	elements := s.registry.Elements()
	if len(elements) == 0 {
		elements = domain.Elements
	}
	eggs := make([]*domain.Egg, StarterEggCount)
	for i := range eggs {
		eggs[i] = &domain.Egg{
			ID:        s.newID(),
			Element:   elements[s.pickN(len(elements))],
			CreatedAt: now,
		}
	}
	return eggs
}
