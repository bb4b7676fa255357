package roster

import (
	"fmt"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/gauge"
)

// GaugeKind names an adjustable care bar
type GaugeKind string

const (
	GaugeHunger    GaugeKind = "hunger"
	GaugeHappiness GaugeKind = "happiness"
	GaugeExp       GaugeKind = "exp"
)

func hungerGauge(m *domain.Monster) gauge.Linear {
	return gauge.Linear{
		Anchor: m.HungerUpdatedAt,
		Start:  m.Hunger,
		Rate:   -domain.GaugeMax / domain.HungerDecayWindow.Hours(),
		Min:    0,
		Max:    domain.GaugeMax,
	}
}

// feed rebases the hunger bar at now and moves it by delta
func feed(m *domain.Monster, delta float64, now time.Time) {
	g := hungerGauge(m).Rebase(now)
	m.Hunger = gauge.Clamp(g.Start+delta, g.Min, g.Max)
	m.HungerUpdatedAt = g.Anchor
}

// CurrentHunger derives the hunger bar at now from the stored value and its timestamp
func CurrentHunger(m *domain.Monster, now time.Time) float64 {
	if m == nil {
		return 0
	}
	return hungerGauge(m).At(now)
}

// Normalize returns a copy of m with defaults filled in, the daily care
// counters reset on a new day and happiness decayed per elapsed day.
func Normalize(m *domain.Monster, now time.Time) *domain.Monster {
	if m == nil {
		return nil
	}
	today := now.Format(domain.DateLayout)
	c := m.Clone()
	c.Element = domain.NormalizeElement(c.Element)

	if c.Level < 1 {
		c.Level = 1
	}
	if c.Exp < 0 {
		c.Exp = 0
	}
	if c.CareDate != today {
		c.CareDate = today
		c.CareSnack = 0
		c.CarePlay = 0
	}
	c.Hunger = gauge.Clamp(c.Hunger, 0, domain.GaugeMax)
	if c.HungerUpdatedAt.IsZero() {
		c.HungerUpdatedAt = now
	}

	anchor := c.LastDecayDate
	if anchor == "" {
		anchor = today
	}
	c.Happiness = gauge.Daily{
		Anchor:     anchor,
		Start:      gauge.Clamp(c.Happiness, 0, domain.GaugeMax),
		StepPerDay: domain.HappinessDecayPerDay,
		Min:        0,
		Max:        domain.GaugeMax,
	}.At(today)
	c.LastDecayDate = today
	return c
}

// addExp grants exp and levels up as many times as it covers
func addExp(m *domain.Monster, exp int) {
	m.Exp += exp
	for m.Exp >= domain.ExpToNextLevel(m.Level) {
		m.Exp -= domain.ExpToNextLevel(m.Level)
		m.Level++
	}
}

// Snack feeds the monster: hunger up, exp up, one of today's snacks used
func Snack(m *domain.Monster, now time.Time) (*domain.Monster, error) {
	if m == nil {
		return nil, domain.ErrFieldEmpty
	}
	c := Normalize(m, now)
	if c.CareSnack >= domain.CareSnackMaxPerDay {
		return nil, fmt.Errorf("%w: %d snacks today", domain.ErrCareLimitReached, c.CareSnack)
	}
	feed(c, domain.HungerPerSnack, now)
	addExp(c, domain.CareExpPerSnack)
	c.CareSnack++
	return c, nil
}

// Play raises happiness and exp, using one of today's plays
func Play(m *domain.Monster, now time.Time) (*domain.Monster, error) {
	if m == nil {
		return nil, domain.ErrFieldEmpty
	}
	c := Normalize(m, now)
	if c.CarePlay >= domain.CarePlayMaxPerDay {
		return nil, fmt.Errorf("%w: %d plays today", domain.ErrCareLimitReached, c.CarePlay)
	}
	c.Happiness = gauge.Clamp(c.Happiness+domain.HappinessPerPlay, 0, domain.GaugeMax)
	addExp(c, domain.CareExpPerPlay)
	c.CarePlay++
	return c, nil
}

// AdjustGauge moves one bar by delta. Exp stays below the next level threshold.
func AdjustGauge(m *domain.Monster, kind GaugeKind, delta float64, now time.Time) (*domain.Monster, error) {
	if m == nil {
		return nil, domain.ErrFieldEmpty
	}
	c := m.Clone()
	switch kind {
	case GaugeHunger:
		feed(c, delta, now)
	case GaugeHappiness:
		c.Happiness = gauge.Clamp(c.Happiness+delta, 0, domain.GaugeMax)
	case GaugeExp:
		maxExp := float64(domain.ExpToNextLevel(max(c.Level, 1)) - 1)
		c.Exp = int(gauge.Clamp(float64(c.Exp)+delta, 0, maxExp))
	default:
		return nil, fmt.Errorf("%w: unknown gauge %q", domain.ErrInvalidInput, kind)
	}
	return c, nil
}
