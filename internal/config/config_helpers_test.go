package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperVar = "DAYMON_TEST_VAR"

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 5},
		{"3", 3},
		{"0", 0},
		{"-2", -2},
		{"2.5", 5},
		{"five", 5},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(helperVar, tt.raw)
			assert.Equal(t, tt.want, getEnvAsInt(helperVar, 5))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", DefaultSaveDebounce},
		{"250ms", 250 * time.Millisecond},
		{"1h30m", 90 * time.Minute},
		{"500", DefaultSaveDebounce},
		{"soon", DefaultSaveDebounce},
		{"0s", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(helperVar, tt.raw)
			assert.Equal(t, tt.want, getEnvAsDuration(helperVar, DefaultSaveDebounce))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"FALSE", false},
		{"on", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(helperVar, tt.raw)
			assert.Equal(t, tt.want, getEnvAsBool(helperVar, false))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv(helperVar, "")
	assert.Nil(t, getEnvAsList(helperVar))

	t.Setenv(helperVar, " 10.0.0.1, ,10.0.0.2 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList(helperVar))
}

func TestLoad_TimingKnobsFallBack(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")
	t.Setenv("SAVE_DEBOUNCE", "fast")
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("EVENT_RETRY_DELAY", "-")
	t.Setenv("DB_MAX_CONNS", "many")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultSaveDebounce, cfg.SaveDebounce)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, DefaultEventRetryDelay, cfg.EventRetryDelay)
	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
}
