package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
)

func TestCurrentHunger(t *testing.T) {
	m := NewHatchling("m", domain.ElementFire, testNow)
	m.Hunger = 100

	assert.InDelta(t, 100, CurrentHunger(m, testNow), 1e-9)
	assert.InDelta(t, 50, CurrentHunger(m, testNow.Add(6*time.Hour)), 1e-9)
	assert.Zero(t, CurrentHunger(m, testNow.Add(13*time.Hour)))
	assert.Zero(t, CurrentHunger(nil, testNow))
}

func TestNormalize(t *testing.T) {
	m := &domain.Monster{
		ID:            "m",
		Level:         0,
		Exp:           -5,
		Hunger:        140,
		Happiness:     50,
		LastDecayDate: "2026-03-07",
		CareDate:      "2026-03-09",
		CareSnack:     3,
		CarePlay:      2,
	}

	n := Normalize(m, testNow)

	assert.Equal(t, domain.ElementFire, n.Element)
	assert.Equal(t, 1, n.Level)
	assert.Zero(t, n.Exp)
	assert.Equal(t, 100.0, n.Hunger)
	assert.Equal(t, testNow, n.HungerUpdatedAt)
	assert.Equal(t, 26.0, n.Happiness, "three days of decay")
	assert.Equal(t, "2026-03-10", n.LastDecayDate)
	assert.Equal(t, "2026-03-10", n.CareDate)
	assert.Zero(t, n.CareSnack)
	assert.Zero(t, n.CarePlay)

	again := Normalize(n, testNow)
	assert.Equal(t, n, again, "normalizing twice on the same day changes nothing")
	assert.Nil(t, Normalize(nil, testNow))
}

func TestSnack(t *testing.T) {
	m := NewHatchling("m", domain.ElementFire, testNow)

	fed, err := Snack(m, testNow.Add(3*time.Hour))

	require.NoError(t, err)
	assert.InDelta(t, 80-25+25, fed.Hunger, 1e-9)
	assert.Equal(t, testNow.Add(3*time.Hour), fed.HungerUpdatedAt)
	assert.Equal(t, domain.CareExpPerSnack, fed.Exp)
	assert.Equal(t, 1, fed.CareSnack)
	assert.Zero(t, m.CareSnack, "original untouched")
}

func TestSnack_CapsAtHundred(t *testing.T) {
	m := NewHatchling("m", domain.ElementFire, testNow)

	fed, err := Snack(m, testNow)

	require.NoError(t, err)
	assert.Equal(t, 100.0, fed.Hunger)
}

func TestCare_DailyLimit(t *testing.T) {
	m := NewHatchling("m", domain.ElementFire, testNow)
	var err error
	for i := 0; i < domain.CareSnackMaxPerDay; i++ {
		m, err = Snack(m, testNow)
		require.NoError(t, err)
	}
	_, err = Snack(m, testNow)
	assert.ErrorIs(t, err, domain.ErrCareLimitReached)

	m, err = Snack(m, testNow.Add(24*time.Hour))
	require.NoError(t, err, "counters reset on a new day")
	assert.Equal(t, 1, m.CareSnack)

	p := NewHatchling("p", domain.ElementFire, testNow)
	for i := 0; i < domain.CarePlayMaxPerDay; i++ {
		p, err = Play(p, testNow)
		require.NoError(t, err)
	}
	_, err = Play(p, testNow)
	assert.ErrorIs(t, err, domain.ErrCareLimitReached)
}

func TestPlay_LevelsUp(t *testing.T) {
	m := NewHatchling("m", domain.ElementFire, testNow)
	m.Exp = 100

	played, err := Play(m, testNow)

	require.NoError(t, err)
	assert.Equal(t, 2, played.Level)
	assert.Equal(t, 100+domain.CareExpPerPlay-domain.ExpToNextLevel(1), played.Exp)
	assert.Equal(t, 100.0, played.Happiness)
}

func TestAddExp_MultipleLevels(t *testing.T) {
	m := &domain.Monster{Level: 1}
	addExp(m, 105+130+10)
	assert.Equal(t, 3, m.Level)
	assert.Equal(t, 10, m.Exp)
}

func TestCare_EmptyField(t *testing.T) {
	_, err := Snack(nil, testNow)
	assert.ErrorIs(t, err, domain.ErrFieldEmpty)
	_, err = Play(nil, testNow)
	assert.ErrorIs(t, err, domain.ErrFieldEmpty)
	_, err = AdjustGauge(nil, GaugeExp, 1, testNow)
	assert.ErrorIs(t, err, domain.ErrFieldEmpty)
}

func TestAdjustGauge(t *testing.T) {
	m := NewHatchling("m", domain.ElementFire, testNow)

	h, err := AdjustGauge(m, GaugeHunger, -100, testNow)
	require.NoError(t, err)
	assert.Zero(t, h.Hunger)

	hp, err := AdjustGauge(m, GaugeHappiness, 50, testNow)
	require.NoError(t, err)
	assert.Equal(t, 100.0, hp.Happiness)

	e, err := AdjustGauge(m, GaugeExp, 1000, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.ExpToNextLevel(1)-1, e.Exp)

	_, err = AdjustGauge(m, "mood", 1, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
