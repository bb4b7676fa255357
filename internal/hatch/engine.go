package hatch

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
	"github.com/osse101/Daymon_Go/internal/gauge"
)

// TypeSource resolves egg type thresholds; *eggtype.Registry satisfies it
type TypeSource interface {
	Get(element domain.Element) domain.EggTypeConfig
}

// Engine provides pure hatch progress logic (no DB dependencies).
// Progress is measured in hours on a 0..HatchHours scale and is always
// derived from HatchingStartedAt and the supplied clock.
type Engine struct {
	types TypeSource
}

// NewEngine creates a new hatch engine
func NewEngine(types TypeSource) *Engine {
	return &Engine{types: types}
}

// Config returns the thresholds that apply to egg
func (e *Engine) Config(egg *domain.Egg) domain.EggTypeConfig {
	return e.types.Get(domain.NormalizeElement(egg.Element))
}

func (e *Engine) progressGauge(egg *domain.Egg) gauge.Linear {
	cfg := e.Config(egg)
	return gauge.Linear{
		Anchor: *egg.HatchingStartedAt,
		Start:  0,
		Rate:   1,
		Min:    0,
		Max:    cfg.HatchHours,
	}
}

// Progress returns the hatch progress at now, clamped to [0, HatchHours].
// Eggs that have not started, or whose start lies in the future, report 0.
func (e *Engine) Progress(egg *domain.Egg, now time.Time) float64 {
	if !egg.Started() {
		return 0
	}
	return e.progressGauge(egg).At(now)
}

// IsCracked reports whether progress has reached the crack threshold
func (e *Engine) IsCracked(egg *domain.Egg, now time.Time) bool {
	if !egg.Started() {
		return false
	}
	return e.Progress(egg, now) >= e.Config(egg).CrackAtHours
}

// IsReady reports whether the egg can be hatched
func (e *Engine) IsReady(egg *domain.Egg, now time.Time) bool {
	if !egg.Started() {
		return false
	}
	return e.Progress(egg, now) >= e.Config(egg).HatchHours
}

// ReadyAt returns when the egg finishes incubating
func (e *Engine) ReadyAt(egg *domain.Egg) (time.Time, bool) {
	if !egg.Started() {
		return time.Time{}, false
	}
	return egg.HatchingStartedAt.Add(e.Config(egg).HatchDuration()), true
}

// Remaining returns the time left until ready, never negative
func (e *Engine) Remaining(egg *domain.Egg, now time.Time) time.Duration {
	readyAt, ok := e.ReadyAt(egg)
	if !ok {
		return 0
	}
	if d := readyAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// HourFraction is the fill of the current hour bucket in [0, 1).
// A ready egg reports 0.
func (e *Engine) HourFraction(egg *domain.Egg, now time.Time) float64 {
	if !egg.Started() || e.IsReady(egg, now) {
		return 0
	}
	p := e.Progress(egg, now)
	return p - math.Floor(p)
}

// Skew returns a copy of egg with its start moved back by hours, which advances
// progress by the same amount. Negative hours move progress back. Eggs that
// have not started are returned unchanged.
func (e *Engine) Skew(egg *domain.Egg, hours float64) *domain.Egg {
	c := egg.Clone()
	if !c.Started() {
		return c
	}
	shifted := c.HatchingStartedAt.Add(-time.Duration(hours * float64(time.Hour)))
	c.HatchingStartedAt = &shifted
	return c
}

// FormatRemaining renders d as zero-padded HH:MM, truncating seconds
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMin := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", totalMin/60, totalMin%60)
}
