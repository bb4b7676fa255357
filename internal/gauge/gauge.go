// Package gauge derives time-dependent values from an anchor instead of
// mutating state on a timer. Hatch progress and the care bars both store a
// value plus the moment it was true, and compute the current value on read.
package gauge

import (
	"time"
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Linear is a value that moves at a constant rate per hour from its anchor
type Linear struct {
	Anchor time.Time
	Start  float64
	// Rate is in units per hour; negative for decay
	Rate float64
	Min  float64
	Max  float64
}

// At returns the clamped value at now. Times before the anchor count as zero elapsed.
func (g Linear) At(now time.Time) float64 {
	elapsed := now.Sub(g.Anchor)
	if elapsed < 0 {
		elapsed = 0
	}
	return Clamp(g.Start+g.Rate*elapsed.Hours(), g.Min, g.Max)
}

// Rebase returns a gauge anchored at now holding the current value
func (g Linear) Rebase(now time.Time) Linear {
	g.Start = g.At(now)
	g.Anchor = now
	return g
}

// Daily is a value that drops by a fixed step per elapsed calendar day
type Daily struct {
	// Anchor is the calendar day (YYYY-MM-DD) Start was last true
	Anchor     string
	Start      float64
	StepPerDay float64
	Min        float64
	Max        float64
}

// At returns the clamped value on today. An unparsable anchor counts as today.
func (g Daily) At(today string) float64 {
	return Clamp(g.Start-g.StepPerDay*float64(DaysBetween(g.Anchor, today)), g.Min, g.Max)
}

// DaysBetween returns the whole calendar days from a to b, or 0 when either
// fails to parse or b is not after a
func DaysBetween(a, b string) int {
	const layout = "2006-01-02"
	from, err := time.Parse(layout, a)
	if err != nil {
		return 0
	}
	to, err := time.Parse(layout, b)
	if err != nil {
		return 0
	}
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
