// Package memory is an in-process implementation of repository.Hatchery.
// It backs unit tests and local runs without Postgres.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/repository"
)

// Rejection reasons mirror the Postgres repository
const (
	reasonAlreadyUnlocked  = "already_unlocked"
	reasonInsufficientGold = "insufficient_gold"
)

var errDuplicateLocation = errors.New("duplicate monster location")

// Faults injects errors into the next matching operation. Each field is consumed once.
type Faults struct {
	Upsert error
	Delete error
	Commit error
	Unlock error
	List   error
}

// HatcheryRepository keeps players and monster rows in maps
type HatcheryRepository struct {
	mu       sync.Mutex
	players  map[string]*domain.Player
	monsters map[string]map[string]domain.MonsterRecord // userID -> id -> row
	eggTypes []domain.EggTypeRow
	faults   Faults
	now      func() time.Time
}

var _ repository.Hatchery = (*HatcheryRepository)(nil)

// NewHatcheryRepository returns an empty store
func NewHatcheryRepository() *HatcheryRepository {
	return &HatcheryRepository{
		players:  make(map[string]*domain.Player),
		monsters: make(map[string]map[string]domain.MonsterRecord),
		now:      time.Now,
	}
}

// SetFaults arms one-shot failures
func (r *HatcheryRepository) SetFaults(f Faults) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faults = f
}

// SetEggTypes replaces the remote egg_types rows
func (r *HatcheryRepository) SetEggTypes(rows []domain.EggTypeRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eggTypes = slices.Clone(rows)
}

func take(err *error) error {
	e := *err
	*err = nil
	return e
}

func (r *HatcheryRepository) GetPlayer(_ context.Context, userID string) (*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[userID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return p.Clone(), nil
}

func (r *HatcheryRepository) GetPlayerByNickname(_ context.Context, nickname string) (*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Nickname == nickname {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

func (r *HatcheryRepository) CreatePlayer(_ context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Nickname == player.Nickname {
			return fmt.Errorf("%w: nickname %q is taken", domain.ErrInvalidNickname, player.Nickname)
		}
	}
	now := r.now()
	player.CreatedAt = now
	player.UpdatedAt = now
	r.players[player.ID] = player.Clone()
	return nil
}

func (r *HatcheryRepository) UpdatePlayer(_ context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updatePlayerLocked(player)
}

func (r *HatcheryRepository) updatePlayerLocked(player *domain.Player) error {
	stored, ok := r.players[player.ID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	stored.Gold = player.Gold
	stored.Mood = player.Mood
	stored.UnlockedIncubatorSlots = slices.Clone(player.UnlockedIncubatorSlots)
	stored.UpdatedAt = r.now()
	return nil
}

func (r *HatcheryRepository) UnlockIncubatorSlot(_ context.Context, userID string, slot, cost int) (domain.UnlockResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := take(&r.faults.Unlock); err != nil {
		return domain.UnlockResult{}, err
	}
	p, ok := r.players[userID]
	if !ok {
		return domain.UnlockResult{}, domain.ErrPlayerNotFound
	}
	res := domain.UnlockResult{Gold: p.Gold, UnlockedSlots: slices.Clone(p.UnlockedIncubatorSlots)}
	switch {
	case slices.Contains(p.UnlockedIncubatorSlots, slot):
		res.Reason = reasonAlreadyUnlocked
	case p.Gold < cost:
		res.Reason = reasonInsufficientGold
	default:
		p.Gold -= cost
		p.UnlockedIncubatorSlots = append(p.UnlockedIncubatorSlots, slot)
		p.UpdatedAt = r.now()
		res = domain.UnlockResult{Success: true, Gold: p.Gold, UnlockedSlots: slices.Clone(p.UnlockedIncubatorSlots)}
	}
	return res, nil
}

func sortedRows(rows map[string]domain.MonsterRecord, keep func(domain.MonsterRecord) bool) []domain.MonsterRecord {
	var out []domain.MonsterRecord
	for _, rec := range rows {
		if keep == nil || keep(rec) {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b domain.MonsterRecord) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

func (r *HatcheryRepository) ListMonsters(_ context.Context, userID string) ([]domain.MonsterRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := take(&r.faults.List); err != nil {
		return nil, err
	}
	return sortedRows(r.monsters[userID], nil), nil
}

func (r *HatcheryRepository) ListMonstersByLocationKind(_ context.Context, userID string, kind domain.LocationKind) ([]domain.MonsterRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := take(&r.faults.List); err != nil {
		return nil, err
	}
	return sortedRows(r.monsters[userID], func(rec domain.MonsterRecord) bool {
		prefix, _, _ := strings.Cut(string(rec.Location), "_")
		return prefix == string(kind)
	}), nil
}

func (r *HatcheryRepository) UpsertMonsters(_ context.Context, userID string, records []domain.MonsterRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := take(&r.faults.Upsert); err != nil {
		return err
	}
	next := upsertInto(r.monsters[userID], userID, records, r.now())
	if err := checkLocations(next); err != nil {
		return err
	}
	r.monsters[userID] = next
	return nil
}

func (r *HatcheryRepository) DeleteMonsters(_ context.Context, userID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := take(&r.faults.Delete); err != nil {
		return err
	}
	for _, id := range ids {
		delete(r.monsters[userID], id)
	}
	return nil
}

func (r *HatcheryRepository) ListEggTypes(_ context.Context) ([]domain.EggTypeRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := take(&r.faults.List); err != nil {
		return nil, err
	}
	return slices.Clone(r.eggTypes), nil
}

// BeginTx stages writes against a copy of the store; Commit swaps them in
func (r *HatcheryRepository) BeginTx(_ context.Context) (repository.HatcheryTx, error) {
	return &hatcheryTx{repo: r, monsters: make(map[string]map[string]domain.MonsterRecord), players: make(map[string]*domain.Player)}, nil
}

func upsertInto(current map[string]domain.MonsterRecord, userID string, records []domain.MonsterRecord, now time.Time) map[string]domain.MonsterRecord {
	next := make(map[string]domain.MonsterRecord, len(current)+len(records))
	for id, rec := range current {
		next[id] = rec
	}
	for _, rec := range records {
		rec.UserID = userID
		if old, ok := next[rec.ID]; ok {
			rec.CreatedAt = old.CreatedAt
		} else if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rec.Element = domain.NormalizeElement(rec.Element)
		rec.UpdatedAt = now
		next[rec.ID] = rec
	}
	return next
}

// checkLocations enforces unique (user_id, location)
func checkLocations(rows map[string]domain.MonsterRecord) error {
	seen := make(map[domain.Location]string, len(rows))
	for id, rec := range rows {
		if other, ok := seen[rec.Location]; ok {
			return fmt.Errorf("%w: %s held by %s and %s", errDuplicateLocation, rec.Location, other, id)
		}
		seen[rec.Location] = id
	}
	return nil
}

type hatcheryTx struct {
	repo     *HatcheryRepository
	monsters map[string]map[string]domain.MonsterRecord
	players  map[string]*domain.Player
	closed   bool
}

func (t *hatcheryTx) rows(userID string) map[string]domain.MonsterRecord {
	if rows, ok := t.monsters[userID]; ok {
		return rows
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	rows := make(map[string]domain.MonsterRecord, len(t.repo.monsters[userID]))
	for id, rec := range t.repo.monsters[userID] {
		rows[id] = rec
	}
	t.monsters[userID] = rows
	return rows
}

func (t *hatcheryTx) UpsertMonsters(_ context.Context, userID string, records []domain.MonsterRecord) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.repo.mu.Lock()
	err := take(&t.repo.faults.Upsert)
	now := t.repo.now()
	t.repo.mu.Unlock()
	if err != nil {
		return err
	}
	t.monsters[userID] = upsertInto(t.rows(userID), userID, records, now)
	return nil
}

func (t *hatcheryTx) DeleteMonstersExcept(_ context.Context, userID string, keep []string) (int64, error) {
	if t.closed {
		return 0, repository.ErrTxClosed
	}
	t.repo.mu.Lock()
	err := take(&t.repo.faults.Delete)
	t.repo.mu.Unlock()
	if err != nil {
		return 0, err
	}
	rows := t.rows(userID)
	var n int64
	for id := range rows {
		if !slices.Contains(keep, id) {
			delete(rows, id)
			n++
		}
	}
	return n, nil
}

func (t *hatcheryTx) UpdatePlayer(_ context.Context, player *domain.Player) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.repo.mu.Lock()
	_, ok := t.repo.players[player.ID]
	t.repo.mu.Unlock()
	if !ok {
		return domain.ErrPlayerNotFound
	}
	t.players[player.ID] = player.Clone()
	return nil
}

func (t *hatcheryTx) Commit(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if err := take(&t.repo.faults.Commit); err != nil {
		return err
	}
	for _, rows := range t.monsters {
		if err := checkLocations(rows); err != nil {
			return err
		}
	}
	for userID, rows := range t.monsters {
		t.repo.monsters[userID] = rows
	}
	for _, p := range t.players {
		if err := t.repo.updatePlayerLocked(p); err != nil {
			return err
		}
	}
	return nil
}

func (t *hatcheryTx) Rollback(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	return nil
}
