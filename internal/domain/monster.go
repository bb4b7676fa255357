package domain

import "time"

// Monster is a hatched monster living in the field or the sanctuary
type Monster struct {
	ID              string    `json:"id"`
	Element         Element   `json:"element"`
	Nickname        string    `json:"nickname,omitempty"`
	Level           int       `json:"level"`
	Exp             int       `json:"exp"`
	Hunger          float64   `json:"hunger"`
	HungerUpdatedAt time.Time `json:"hunger_updated_at"`
	Happiness       float64   `json:"happiness"`
	LastDecayDate   string    `json:"last_decay_date"`
	CareDate        string    `json:"care_date"`
	CareSnack       int       `json:"care_snack"`
	CarePlay        int       `json:"care_play"`
	CreatedAt       time.Time `json:"created_at"`
}

// Clone returns a copy of the monster
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// MonsterRecord is one persisted row of the monsters table.
// Every occupied location (egg or monster) maps to exactly one row.
type MonsterRecord struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Location          Location   `json:"location"`
	Element           Element    `json:"element"`
	HatchingStartedAt *time.Time `json:"hatching_started_at,omitempty"`
	IsHatched         bool       `json:"is_hatched"`
	Nickname          *string    `json:"nickname,omitempty"`
	Level             *int       `json:"level,omitempty"`
	Exp               *int       `json:"exp,omitempty"`
	Hunger            *float64   `json:"hunger,omitempty"`
	HungerUpdatedAt   *time.Time `json:"hunger_updated_at,omitempty"`
	Happiness         *float64   `json:"happiness,omitempty"`
	LastDecayDate     *string    `json:"last_decay_date,omitempty"`
	CareDate          *string    `json:"care_date,omitempty"`
	CareSnack         *int       `json:"care_snack,omitempty"`
	CarePlay          *int       `json:"care_play,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
