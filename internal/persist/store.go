package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/logger"
	"github.com/osse101/Daymon_Go/internal/repository"
)

// Store reads and writes whole player states
type Store struct {
	repo repository.Hatchery
}

// NewStore creates a Store over repo
func NewStore(repo repository.Hatchery) *Store {
	return &Store{repo: repo}
}

// Load fetches the player and rebuilds its state. The second value is the
// number of rows read, used as the data-loss guard baseline.
func (s *Store) Load(ctx context.Context, userID string) (State, int, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.GetPlayer(ctx, userID)
	if err != nil {
		return State{}, 0, err
	}
	records, err := s.repo.ListMonsters(ctx, userID)
	if err != nil {
		return State{}, 0, fmt.Errorf("failed to load monsters: %w", err)
	}

	state, skipped := Restore(player, records)
	for _, rec := range skipped {
		log.Warn("Skipping unplaceable monster row", "user_id", userID, "row", describe(rec))
	}
	return state, len(records), nil
}

// SaveSnapshot writes the state in one transaction: upsert every occupied
// location, drop the user's rows that are no longer present, then update the
// player row. Returns the number of rows now stored.
func (s *Store) SaveSnapshot(ctx context.Context, state State, persisted int) (int, error) {
	log := logger.FromContext(ctx)
	player, records := Snapshot(state)

	if err := CheckDataLoss(persisted, len(records)); err != nil {
		log.Warn("Skipping save", "user_id", player.ID, "reason", err)
		return persisted, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return persisted, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpsertMonsters(ctx, player.ID, records); err != nil {
		return persisted, fmt.Errorf("failed to upsert monsters: %w", err)
	}
	removed, err := tx.DeleteMonstersExcept(ctx, player.ID, IDs(records))
	if err != nil {
		return persisted, fmt.Errorf("failed to delete orphaned monsters: %w", err)
	}
	if err := tx.UpdatePlayer(ctx, player); err != nil {
		return persisted, fmt.Errorf("failed to update player: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return persisted, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	log.Debug("Snapshot saved", "user_id", player.ID, "rows", len(records), "orphans_removed", removed)
	return len(records), nil
}

// ReplaceInventory swaps the user's slot rows for eggs. The old rows are
// backed up, deleted, and the new ones inserted; if the insert fails the
// backup is written back and ErrRestored (or ErrRestoreFailed) is returned.
func (s *Store) ReplaceInventory(ctx context.Context, userID string, eggs []domain.MonsterRecord) error {
	log := logger.FromContext(ctx)

	backup, err := s.repo.ListMonstersByLocationKind(ctx, userID, domain.LocationKindSlot)
	if err != nil {
		log.Error("Failed to back up inventory, aborting", "user_id", userID, "error", err)
		return fmt.Errorf("failed to back up inventory: %w", err)
	}
	if err := s.repo.DeleteMonsters(ctx, userID, IDs(backup)); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}

	insertErr := s.repo.UpsertMonsters(ctx, userID, eggs)
	if insertErr == nil {
		log.Info("Inventory replaced", "user_id", userID, "removed", len(backup), "added", len(eggs))
		return nil
	}

	log.Warn("Inventory insert failed, restoring backup", "user_id", userID, "error", insertErr)
	if err := s.repo.UpsertMonsters(ctx, userID, backup); err != nil {
		log.Error("Inventory restore failed", "user_id", userID, "error", err, "insert_error", insertErr)
		return fmt.Errorf("%w: %w", domain.ErrRestoreFailed, errors.Join(insertErr, err))
	}
	return fmt.Errorf("%w: %w", domain.ErrRestored, insertErr)
}

// DeleteRecords removes rows by id outside a snapshot
func (s *Store) DeleteRecords(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.DeleteMonsters(ctx, userID, ids); err != nil {
		return fmt.Errorf("failed to delete monsters: %w", err)
	}
	return nil
}

// UpdatePlayer writes the player row alone
func (s *Store) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return s.repo.UpdatePlayer(ctx, player)
}
