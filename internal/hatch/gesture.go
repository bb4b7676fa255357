package hatch

import (
	"time"

	"github.com/osse101/Daymon_Go/internal/domain"
)

// Gesture is the multi-tap hatch interaction on a ready egg.
// Taps count 0..TapsNeeded; the final tap starts the crack and the egg is
// hatched once CrackDuration has passed. The phase is derived on read.
type Gesture struct {
	Taps           int        `json:"taps"`
	LastTapAt      time.Time  `json:"last_tap_at"`
	CrackStartedAt *time.Time `json:"crack_started_at,omitempty"`

	tapsNeeded    int
	tapWindow     time.Duration
	crackDuration time.Duration
}

// NewGesture returns an idle gesture with the standard tap rules
func NewGesture() *Gesture {
	return &Gesture{
		tapsNeeded:    domain.HatchTapsNeeded,
		tapWindow:     domain.HatchTapWindow,
		crackDuration: domain.HatchCrackDuration,
	}
}

// Phase returns the gesture phase at now
func (g *Gesture) Phase(now time.Time) domain.HatchPhase {
	if g.CrackStartedAt == nil {
		return domain.HatchPhaseIdle
	}
	if now.Sub(*g.CrackStartedAt) < orDefault(g.crackDuration, domain.HatchCrackDuration) {
		return domain.HatchPhaseCracking
	}
	return domain.HatchPhaseHatched
}

// Tap registers one tap. Taps on an egg that is not ready, and taps while
// cracking or hatched, are ignored. A gap longer than the tap window restarts
// the count. Returns whether the tap counted.
func (g *Gesture) Tap(ready bool, now time.Time) bool {
	if !ready || g.Phase(now) != domain.HatchPhaseIdle {
		return false
	}
	if g.Taps > 0 && now.Sub(g.LastTapAt) > orDefault(g.tapWindow, domain.HatchTapWindow) {
		g.Taps = 0
	}

	needed := g.tapsNeeded
	if needed <= 0 {
		needed = domain.HatchTapsNeeded
	}

	g.Taps++
	g.LastTapAt = now
	if g.Taps >= needed {
		g.Taps = needed
		started := now
		g.CrackStartedAt = &started
	}
	return true
}

// Hatched reports whether the gesture finished at now
func (g *Gesture) Hatched(now time.Time) bool {
	return g.Phase(now) == domain.HatchPhaseHatched
}

// Reset returns the gesture to idle (hatch dismissed or incubator changed)
func (g *Gesture) Reset() {
	g.Taps = 0
	g.LastTapAt = time.Time{}
	g.CrackStartedAt = nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
