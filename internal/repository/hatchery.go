package repository

import (
	"context"

	"github.com/osse101/Daymon_Go/internal/domain"
)

// Player defines data access for the users table
type Player interface {
	// GetPlayer returns domain.ErrPlayerNotFound when no row exists
	GetPlayer(ctx context.Context, userID string) (*domain.Player, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error)
	CreatePlayer(ctx context.Context, player *domain.Player) error
	// UpdatePlayer writes gold, mood and the unlocked incubator slots
	UpdatePlayer(ctx context.Context, player *domain.Player) error

	// UnlockIncubatorSlot is the authoritative unlock: it locks the user row,
	// checks ownership and funds, and debits in one transaction
	UnlockIncubatorSlot(ctx context.Context, userID string, slot, cost int) (domain.UnlockResult, error)
}

// Monster defines data access for the monsters table.
// Each row is one occupied location: an egg or a hatched monster.
type Monster interface {
	ListMonsters(ctx context.Context, userID string) ([]domain.MonsterRecord, error)
	ListMonstersByLocationKind(ctx context.Context, userID string, kind domain.LocationKind) ([]domain.MonsterRecord, error)
	// UpsertMonsters inserts or updates rows by id
	UpsertMonsters(ctx context.Context, userID string, records []domain.MonsterRecord) error
	DeleteMonsters(ctx context.Context, userID string, ids []string) error
}

// EggType defines read access to remote egg type overrides
type EggType interface {
	ListEggTypes(ctx context.Context) ([]domain.EggTypeRow, error)
}

// Hatchery is the full storage surface used by the game service
type Hatchery interface {
	Player
	Monster
	EggType

	BeginTx(ctx context.Context) (HatcheryTx, error)
}

// HatcheryTx is the transactional subset used to write a whole snapshot atomically
type HatcheryTx interface {
	Tx

	UpsertMonsters(ctx context.Context, userID string, records []domain.MonsterRecord) error
	// DeleteMonstersExcept removes the user's rows whose id is not in keep
	DeleteMonstersExcept(ctx context.Context, userID string, keep []string) (int64, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
}
