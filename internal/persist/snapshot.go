// Package persist maps a player's in-memory game state to monsters rows and
// writes it back to storage.
package persist

import (
	"fmt"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/incubator"
	"github.com/osse101/Daymon_Go/internal/roster"
)

// State is everything persisted for one player
type State struct {
	Player *domain.Player
	Board  *incubator.Board
	Roster *roster.Roster
}

// NewState returns an empty state for player
func NewState(player *domain.Player) State {
	board := incubator.NewBoard()
	board.SetUnlocked(player.UnlockedIncubatorSlots)
	return State{Player: player, Board: board, Roster: roster.New()}
}

// Clone deep-copies the state so it can be written without holding the session lock
func (s State) Clone() State {
	return State{Player: s.Player.Clone(), Board: s.Board.Clone(), Roster: s.Roster.Clone()}
}

// Snapshot lists one row per occupied location. The player row carries the
// board's unlocked set.
func Snapshot(s State) (*domain.Player, []domain.MonsterRecord) {
	player := s.Player.Clone()
	player.UnlockedIncubatorSlots = append([]int(nil), s.Board.Unlocked...)
	userID := player.ID

	var records []domain.MonsterRecord
	for i, egg := range s.Board.Incubators {
		if egg != nil {
			records = append(records, EggRecord(userID, domain.IncubatorLocation(i), egg))
		}
	}
	for i, egg := range s.Board.Inventory {
		if egg != nil {
			records = append(records, EggRecord(userID, domain.SlotLocation(i), egg))
		}
	}
	if s.Roster.Field != nil {
		records = append(records, MonsterRecord(userID, domain.LocationField, s.Roster.Field))
	}
	for i, m := range s.Roster.Sanctuary {
		if m != nil {
			records = append(records, MonsterRecord(userID, domain.SanctuaryLocation(i), m))
		}
	}
	return player, records
}

// Restore rebuilds the state from the player row and its monsters rows.
// Rows with an unknown or already-taken location are returned as skipped.
func Restore(player *domain.Player, records []domain.MonsterRecord) (State, []domain.MonsterRecord) {
	s := NewState(player)
	var skipped []domain.MonsterRecord

	for _, rec := range records {
		kind, i, ok := rec.Location.Parse()
		if !ok {
			skipped = append(skipped, rec)
			continue
		}
		var placed bool
		switch kind {
		case domain.LocationKindIncubator:
			if s.Board.Incubators[i] == nil && !rec.IsHatched {
				s.Board.Incubators[i] = RecordEgg(rec)
				placed = true
			}
		case domain.LocationKindSlot:
			if s.Board.Inventory[i] == nil && !rec.IsHatched {
				egg := RecordEgg(rec)
				egg.HatchingStartedAt = nil
				s.Board.Inventory[i] = egg
				placed = true
			}
		case domain.LocationKindField:
			if s.Roster.Field == nil {
				s.Roster.Field = RecordMonster(rec)
				placed = true
			}
		case domain.LocationKindSanctuary:
			if s.Roster.Sanctuary[i] == nil {
				s.Roster.Sanctuary[i] = RecordMonster(rec)
				placed = true
			}
		}
		if !placed {
			skipped = append(skipped, rec)
		}
	}
	return s, skipped
}

// EggRecord converts an egg at loc into a row
func EggRecord(userID string, loc domain.Location, egg *domain.Egg) domain.MonsterRecord {
	rec := domain.MonsterRecord{
		ID:        egg.ID,
		UserID:    userID,
		Location:  loc,
		Element:   domain.NormalizeElement(egg.Element),
		CreatedAt: egg.CreatedAt,
	}
	if egg.HatchingStartedAt != nil {
		t := *egg.HatchingStartedAt
		rec.HatchingStartedAt = &t
	}
	return rec
}

// RecordEgg converts a row into an egg
func RecordEgg(rec domain.MonsterRecord) *domain.Egg {
	egg := &domain.Egg{
		ID:        rec.ID,
		Element:   domain.NormalizeElement(rec.Element),
		CreatedAt: rec.CreatedAt,
	}
	if rec.HatchingStartedAt != nil {
		t := *rec.HatchingStartedAt
		egg.HatchingStartedAt = &t
	}
	return egg
}

// MonsterRecord converts a hatched monster at loc into a row
func MonsterRecord(userID string, loc domain.Location, m *domain.Monster) domain.MonsterRecord {
	hungerAt := m.HungerUpdatedAt
	rec := domain.MonsterRecord{
		ID:              m.ID,
		UserID:          userID,
		Location:        loc,
		Element:         domain.NormalizeElement(m.Element),
		IsHatched:       true,
		Level:           ptr(m.Level),
		Exp:             ptr(m.Exp),
		Hunger:          ptr(m.Hunger),
		HungerUpdatedAt: &hungerAt,
		Happiness:       ptr(m.Happiness),
		LastDecayDate:   ptr(m.LastDecayDate),
		CareDate:        ptr(m.CareDate),
		CareSnack:       ptr(m.CareSnack),
		CarePlay:        ptr(m.CarePlay),
		CreatedAt:       m.CreatedAt,
	}
	if m.Nickname != "" {
		rec.Nickname = ptr(m.Nickname)
	}
	if hungerAt.IsZero() {
		rec.HungerUpdatedAt = nil
	}
	return rec
}

// RecordMonster converts a row into a monster. Missing care fields take
// hatchling defaults; roster.Normalize settles the rest on first use.
func RecordMonster(rec domain.MonsterRecord) *domain.Monster {
	return &domain.Monster{
		ID:              rec.ID,
		Element:         domain.NormalizeElement(rec.Element),
		Nickname:        deref(rec.Nickname, ""),
		Level:           deref(rec.Level, 1),
		Exp:             deref(rec.Exp, 0),
		Hunger:          deref(rec.Hunger, domain.HatchlingHunger),
		HungerUpdatedAt: deref(rec.HungerUpdatedAt, time.Time{}),
		Happiness:       deref(rec.Happiness, domain.HatchlingHappiness),
		LastDecayDate:   deref(rec.LastDecayDate, ""),
		CareDate:        deref(rec.CareDate, ""),
		CareSnack:       deref(rec.CareSnack, 0),
		CarePlay:        deref(rec.CarePlay, 0),
		CreatedAt:       rec.CreatedAt,
	}
}

// IDs lists the ids of records
func IDs(records []domain.MonsterRecord) []string {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids
}

func describe(rec domain.MonsterRecord) string {
	return fmt.Sprintf("%s@%s", rec.ID, rec.Location)
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
