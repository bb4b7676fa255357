package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets every required variable to a usable value
func setRequiredEnv(t *testing.T) {
	t.Helper()
	for _, name := range RequiredEnvVars {
		t.Setenv(name, "set")
	}
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
}

func TestValidateEnv(t *testing.T) {
	t.Run("complete environment", func(t *testing.T) {
		setRequiredEnv(t)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("schema version missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("schema version outdated", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected "+ExpectedEnvSchemaVersion+", got 0.9")
	})

	t.Run("lists every missing variable", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_HOST", "")
		t.Setenv("API_KEY", "")
		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST, API_KEY")
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DEBUG_CONTROLS", "")
	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	warnings, err = ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_DebugControls(t *testing.T) {
	tests := []struct {
		env, debug string
		warn       bool
	}{
		{"production", "true", true},
		{"prod", "1", true},
		{"production", "false", false},
		{"dev", "true", false},
	}
	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.debug, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("ENVIRONMENT", tt.env)
			t.Setenv("DEBUG_CONTROLS", tt.debug)

			warnings, err := ValidateEnvWithWarnings()
			require.NoError(t, err)
			if tt.warn {
				require.Len(t, warnings, 1)
				assert.Contains(t, warnings[0], "DEBUG_CONTROLS")
			} else {
				assert.Empty(t, warnings)
			}
		})
	}
}
