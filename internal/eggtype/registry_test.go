package eggtype

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Daymon_Go/internal/domain"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListEggTypes(ctx context.Context) ([]domain.EggTypeRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EggTypeRow), args.Error(1)
}

func f(v float64) *float64 { return &v }

func TestNewRegistry_Defaults(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, domain.Elements, r.Elements())
	for _, e := range r.Elements() {
		cfg := r.Get(e)
		assert.Equal(t, domain.DefaultHatchHours, cfg.HatchHours, "element %s", e)
		assert.Equal(t, domain.DefaultCrackAtHours, cfg.CrackAtHours, "element %s", e)
		assert.True(t, cfg.CrackAtHours > 0 && cfg.CrackAtHours < cfg.HatchHours, "threshold ordering for %s", e)
	}
}

func TestGet_UnknownFallsBackToDefault(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	cfg := r.Get("plasma")
	assert.Equal(t, domain.ElementFire, cfg.Element)
	assert.NotContains(t, r.Elements(), domain.Element("plasma"))
	assert.Contains(t, r.Elements(), domain.ElementDark)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"crack after hatch", "egg_types:\n  - element: fire\n    hatch_hours: 10\n    crack_at_hours: 12\n"},
		{"zero crack", "egg_types:\n  - element: fire\n    hatch_hours: 10\n    crack_at_hours: 0\n"},
		{"missing default", "egg_types:\n  - element: water\n    hatch_hours: 10\n    crack_at_hours: 5\n"},
		{"missing element", "egg_types:\n  - hatch_hours: 10\n    crack_at_hours: 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrEggTypeInvalid)
		})
	}

	_, err := Parse([]byte("egg_types: [oops"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eggs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("egg_types:\n  - element: fire\n    label: Quick\n    hatch_hours: 2\n    crack_at_hours: 1.5\n"), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.Get(domain.ElementFire).HatchHours)
	assert.Equal(t, "Quick", r.Get(domain.ElementFire).Label)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyRemoteOverrides(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites known fields and skips nil ones", func(t *testing.T) {
		r, _ := NewRegistry()
		n := r.ApplyRemoteOverrides(ctx, []domain.EggTypeRow{
			{Element: domain.ElementWater, HatchHours: f(12)},
			{Element: domain.ElementWood, HatchHours: f(30), CrackAtHours: f(25)},
		})

		assert.Equal(t, 3, n)
		assert.Equal(t, 12.0, r.Get(domain.ElementWater).HatchHours)
		assert.Equal(t, 19.0, r.Get(domain.ElementWater).CrackAtHours)
		assert.Equal(t, 30.0, r.Get(domain.ElementWood).HatchHours)
		assert.Equal(t, 25.0, r.Get(domain.ElementWood).CrackAtHours)
	})

	t.Run("ignores unknown elements", func(t *testing.T) {
		r, _ := NewRegistry()
		n := r.ApplyRemoteOverrides(ctx, []domain.EggTypeRow{{Element: "plasma", HatchHours: f(1)}})
		assert.Zero(t, n)
		assert.NotContains(t, r.Elements(), domain.Element("plasma"))
	})

	t.Run("skips fields that break ordering", func(t *testing.T) {
		r, _ := NewRegistry()
		n := r.ApplyRemoteOverrides(ctx, []domain.EggTypeRow{
			{Element: domain.ElementFire, HatchHours: f(10)},
			{Element: domain.ElementDark, HatchHours: f(40), CrackAtHours: f(-1)},
		})

		assert.Equal(t, 1, n)
		assert.Equal(t, 24.0, r.Get(domain.ElementFire).HatchHours)
		assert.Equal(t, 40.0, r.Get(domain.ElementDark).HatchHours)
		assert.Equal(t, 19.0, r.Get(domain.ElementDark).CrackAtHours)
	})

	t.Run("ordering holds for every entry after overrides", func(t *testing.T) {
		r, _ := NewRegistry()
		r.ApplyRemoteOverrides(ctx, []domain.EggTypeRow{
			{Element: domain.ElementFire, CrackAtHours: f(30)},
			{Element: domain.ElementMetal, HatchHours: f(0)},
			{Element: domain.ElementLight, HatchHours: f(6), CrackAtHours: f(5)},
		})
		for _, e := range r.Elements() {
			assert.True(t, r.Get(e).Valid(), "element %s", e)
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("applies remote rows", func(t *testing.T) {
		r, _ := NewRegistry()
		src := new(MockSource)
		src.On("ListEggTypes", ctx).Return([]domain.EggTypeRow{{Element: domain.ElementEarth, HatchHours: f(48)}}, nil)

		r.Load(ctx, src)

		assert.Equal(t, 48.0, r.Get(domain.ElementEarth).HatchHours)
		src.AssertExpectations(t)
	})

	t.Run("keeps defaults when the fetch fails", func(t *testing.T) {
		r, _ := NewRegistry()
		src := new(MockSource)
		src.On("ListEggTypes", ctx).Return(nil, errors.New("connection refused"))

		r.Load(ctx, src)

		assert.Equal(t, domain.DefaultHatchHours, r.Get(domain.ElementEarth).HatchHours)
		src.AssertExpectations(t)
	})
}
