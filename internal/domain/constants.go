package domain

import "time"

// Board layout
const (
	IncubatorCount      = 5
	IncubatorLockedFrom = 3 // incubators 3 and 4 need a paid unlock
	InventorySlotCount  = 5
	InventoryLockedFrom = 3 // inventory slots 3 and 4 are never usable
	SanctuarySlotCount  = 6
)

// Hatch balance defaults (used until egg_types overrides load)
const (
	DefaultHatchHours   = 24.0
	DefaultCrackAtHours = 19.0
	HatchTapsNeeded     = 5
	HatchTapWindow      = 2 * time.Second
	HatchCrackDuration  = 1400 * time.Millisecond
)

// Economy
const (
	StartingGold       = 500
	DefaultHatchReward = 100
	DefaultMood        = "calm"
)

// Care balance for hatched monsters
const (
	GaugeMax             = 100.0
	HatchlingHunger      = 80.0
	HatchlingHappiness   = 80.0
	HungerPerSnack       = 25.0
	HappinessPerPlay     = 20.0
	CareExpPerSnack      = 12
	CareExpPerPlay       = 18
	CareSnackMaxPerDay   = 5
	CarePlayMaxPerDay    = 5
	HungerDecayWindow    = 12 * time.Hour // full bar to empty
	HappinessDecayPerDay = 8.0
)

// IncubatorUnlockCosts is the gold price of each lockable incubator
var IncubatorUnlockCosts = map[int]int{
	3: 10000,
	4: 20000,
}

// HatchGoldRewards is the flat per-element gold reward for a hatch
var HatchGoldRewards = map[Element]int{
	ElementFire:  100,
	ElementWater: 100,
	ElementWood:  100,
	ElementMetal: 120,
	ElementEarth: 120,
	ElementLight: 150,
	ElementDark:  150,
}

// HatchReward returns the gold granted for hatching an egg of the element
func HatchReward(e Element) int {
	if r, ok := HatchGoldRewards[e]; ok {
		return r
	}
	return DefaultHatchReward
}

// ExpToNextLevel returns the exp needed to advance from level (Lv1->2: 105)
func ExpToNextLevel(level int) int {
	return 80 + level*25
}

// DateLayout is the calendar-day format used by daily counters
const DateLayout = "2006-01-02"
