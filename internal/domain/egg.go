package domain

import "time"

// Element identifies an egg type and the monster it hatches into
type Element string

const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementWood  Element = "wood"
	ElementMetal Element = "metal"
	ElementEarth Element = "earth"
	ElementLight Element = "light"
	ElementDark  Element = "dark"

	DefaultElement = ElementFire
)

// Elements lists every egg type in display order
var Elements = []Element{
	ElementFire, ElementWater, ElementWood, ElementMetal,
	ElementEarth, ElementLight, ElementDark,
}

// NormalizeElement maps an empty element to the default one (legacy rows)
func NormalizeElement(e Element) Element {
	if e == "" {
		return DefaultElement
	}
	return e
}

// EggTypeConfig holds the balance values of one egg type
type EggTypeConfig struct {
	Element      Element `json:"element" yaml:"element"`
	Label        string  `json:"label" yaml:"label"`
	HatchHours   float64 `json:"hatch_hours" yaml:"hatch_hours"`
	CrackAtHours float64 `json:"crack_at_hours" yaml:"crack_at_hours"`
}

// Valid reports whether 0 < CrackAtHours < HatchHours
func (c EggTypeConfig) Valid() bool {
	return c.CrackAtHours > 0 && c.CrackAtHours < c.HatchHours
}

// HatchDuration is the total incubation time
func (c EggTypeConfig) HatchDuration() time.Duration {
	return time.Duration(c.HatchHours * float64(time.Hour))
}

// EggTypeRow is a remote egg_types override; nil fields keep local defaults
type EggTypeRow struct {
	Element      Element  `json:"element"`
	HatchHours   *float64 `json:"hatch_hours"`
	CrackAtHours *float64 `json:"crack_at_hours"`
}

// Egg is an egg in inventory or an incubator.
// HatchingStartedAt is nil while the egg sits in an inventory slot.
type Egg struct {
	ID                string     `json:"id"`
	Element           Element    `json:"element"`
	CreatedAt         time.Time  `json:"created_at"`
	HatchingStartedAt *time.Time `json:"hatching_started_at,omitempty"`
}

// Started reports whether the egg has been placed in an incubator
func (e *Egg) Started() bool {
	return e != nil && e.HatchingStartedAt != nil
}

// Clone returns a deep copy of the egg
func (e *Egg) Clone() *Egg {
	if e == nil {
		return nil
	}
	c := *e
	if e.HatchingStartedAt != nil {
		t := *e.HatchingStartedAt
		c.HatchingStartedAt = &t
	}
	return &c
}

// SlotState is the derived state of one incubator
type SlotState string

const (
	SlotStateLocked     SlotState = "locked"
	SlotStateEmpty      SlotState = "empty"
	SlotStateIncubating SlotState = "incubating"
	SlotStateReady      SlotState = "ready"
)

// HatchPhase is the phase of the multi-tap hatch gesture
type HatchPhase string

const (
	HatchPhaseIdle     HatchPhase = "idle"
	HatchPhaseCracking HatchPhase = "cracking"
	HatchPhaseHatched  HatchPhase = "hatched"
)
