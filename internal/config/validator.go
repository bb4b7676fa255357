package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion must match ENV_SCHEMA_VERSION in the deployment's .env
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty for the hatchery to start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// placeholder values shipped in the sample .env, with the advice printed when one is still in use
var placeholders = []struct {
	name, value, advice string
}{
	{"DB_PASSWORD", "change_this_secure_password", "use a real password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32", "generate one with: openssl rand -hex 32"},
}

// ValidateEnv fails on a missing or outdated schema version, then lists every
// missing required variable in one error.
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports sample values still
// in use and debug controls left on in production.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, p := range placeholders {
		if os.Getenv(p.name) == p.value {
			warnings = append(warnings, fmt.Sprintf("%s still holds the sample value, %s", p.name, p.advice))
		}
	}

	env := os.Getenv("ENVIRONMENT")
	if debug, _ := strconv.ParseBool(os.Getenv("DEBUG_CONTROLS")); debug && (env == "prod" || env == "production") {
		warnings = append(warnings, "DEBUG_CONTROLS is enabled in production, players can edit hatch timers and gauges")
	}
	return warnings, nil
}
