package game

import (
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/hatch"
	"github.com/osse101/Daymon_Go/internal/incubator"
	"github.com/osse101/Daymon_Go/internal/roster"
)

// View is the state a client renders. Everything time-dependent is derived at the read.
type View struct {
	PlayerID      string          `json:"player_id"`
	Nickname      string          `json:"nickname"`
	Gold          int             `json:"gold"`
	Mood          string          `json:"mood"`
	Current       int             `json:"current"`
	Incubators    []IncubatorView `json:"incubators"`
	Inventory     []*domain.Egg   `json:"inventory"`
	Field         *MonsterView    `json:"field"`
	Sanctuary     []*MonsterView  `json:"sanctuary"`
	Gesture       GestureView     `json:"gesture"`
	Unlocking     bool            `json:"unlocking"`
	DebugControls bool            `json:"debug_controls"`
	ServerTime    time.Time       `json:"server_time"`
}

// IncubatorView is one carousel slot
type IncubatorView struct {
	Index        int              `json:"index"`
	State        domain.SlotState `json:"state"`
	Egg          *domain.Egg      `json:"egg,omitempty"`
	Label        string           `json:"label,omitempty"`
	HatchHours   float64          `json:"hatch_hours,omitempty"`
	CrackAtHours float64          `json:"crack_at_hours,omitempty"`
	Progress     float64          `json:"progress"`
	HourFraction float64          `json:"hour_fraction"`
	Cracked      bool             `json:"cracked"`
	Remaining    string           `json:"remaining,omitempty"`
	UnlockCost   int              `json:"unlock_cost,omitempty"`
}

// MonsterView is a monster with its derived bars
type MonsterView struct {
	*domain.Monster
	DisplayName string  `json:"display_name"`
	HungerNow   float64 `json:"hunger_now"`
	ExpToNext   int     `json:"exp_to_next"`
}

// GestureView is the hatch gesture on the current incubator
type GestureView struct {
	Phase      domain.HatchPhase `json:"phase"`
	Taps       int               `json:"taps"`
	TapsNeeded int               `json:"taps_needed"`
}

func (s *service) view(sess *session, now time.Time) *View {
	st := sess.state
	v := &View{
		PlayerID:      st.Player.ID,
		Nickname:      st.Player.Nickname,
		Gold:          st.Player.Gold,
		Mood:          st.Player.Mood,
		Current:       st.Board.Current,
		Incubators:    make([]IncubatorView, domain.IncubatorCount),
		Inventory:     make([]*domain.Egg, domain.InventorySlotCount),
		Sanctuary:     make([]*MonsterView, domain.SanctuarySlotCount),
		Field:         monsterView(st.Roster.Field, now),
		Unlocking:     sess.unlocking,
		DebugControls: s.debug,
		ServerTime:    now,
	}
	v.Gesture = GestureView{
		Phase:      sess.gesture.Phase(now),
		Taps:       sess.gesture.Taps,
		TapsNeeded: domain.HatchTapsNeeded,
	}
	for i := range v.Incubators {
		v.Incubators[i] = s.incubatorView(st.Board, i, now)
	}
	for i, egg := range st.Board.Inventory {
		v.Inventory[i] = egg.Clone()
	}
	for i, m := range st.Roster.Sanctuary {
		v.Sanctuary[i] = monsterView(m, now)
	}
	return v
}

func (s *service) incubatorView(b *incubator.Board, i int, now time.Time) IncubatorView {
	state, _ := b.State(s.engine, i, now)
	iv := IncubatorView{Index: i, State: state}
	if state == domain.SlotStateLocked {
		iv.UnlockCost = domain.IncubatorUnlockCosts[i]
		return iv
	}

	egg := b.Incubators[i]
	if egg == nil {
		return iv
	}
	cfg := s.engine.Config(egg)
	iv.Egg = egg.Clone()
	iv.Label = cfg.Label
	iv.HatchHours = cfg.HatchHours
	iv.CrackAtHours = cfg.CrackAtHours
	iv.Progress = s.engine.Progress(egg, now)
	iv.HourFraction = s.engine.HourFraction(egg, now)
	iv.Cracked = s.engine.IsCracked(egg, now)
	iv.Remaining = hatch.FormatRemaining(s.engine.Remaining(egg, now))
	return iv
}

func monsterView(m *domain.Monster, now time.Time) *MonsterView {
	if m == nil {
		return nil
	}
	n := roster.Normalize(m, now)
	return &MonsterView{
		Monster:     n,
		DisplayName: roster.DisplayName(n),
		HungerNow:   roster.CurrentHunger(n, now),
		ExpToNext:   domain.ExpToNextLevel(n.Level),
	}
}
