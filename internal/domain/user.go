package domain

import (
	"slices"
	"time"
)

// Player is a users row: the wallet and per-player unlocks
type Player struct {
	ID                     string    `json:"id"`
	Nickname               string    `json:"user_id"`
	Gold                   int       `json:"gold"`
	Mood                   string    `json:"mood"`
	UnlockedIncubatorSlots []int     `json:"unlocked_incubator_slots"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Clone returns a copy of the player with its own slot slice
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.UnlockedIncubatorSlots = slices.Clone(p.UnlockedIncubatorSlots)
	return &c
}

// UnlockResult is the authoritative outcome of an incubator unlock
type UnlockResult struct {
	Success       bool   `json:"success"`
	Gold          int    `json:"gold"`
	UnlockedSlots []int  `json:"unlocked_slots"`
	Reason        string `json:"reason,omitempty"`
}
