package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// APIKey guards the debug endpoints (time skew, incubator reset)
	APIKey         string
	TrustedProxies []string

	SaveDebounce     time.Duration
	FlushInterval    time.Duration
	EggTypesRefresh  time.Duration
	SessionTTL       time.Duration
	SessionCacheSize int
	EggTypesFile     string
	DebugControls    bool
	Workers          int

	EventMaxRetries       int
	EventRetryDelay       time.Duration
	EventDeadLetterPath   string
	EventLogRetentionDays int
	EventLogCleanup       time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "daymon"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		SaveDebounce:     getEnvAsDuration("SAVE_DEBOUNCE", DefaultSaveDebounce),
		FlushInterval:    getEnvAsDuration("FLUSH_INTERVAL", DefaultFlushInterval),
		EggTypesRefresh:  getEnvAsDuration("EGG_TYPES_REFRESH", DefaultEggTypesRefresh),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		EggTypesFile:     getEnv("EGG_TYPES_FILE", ""),
		DebugControls:    getEnvAsBool("DEBUG_CONTROLS", false),
		Workers:          getEnvAsInt("WORKERS", DefaultWorkers),

		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath:   getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EventLogRetentionDays: getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays),
		EventLogCleanup:       getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanup),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL URL for DBName, escaping credentials
func (c *Config) GetDBConnString() string {
	return c.connString(c.DBName)
}

// GetMaintenanceConnString returns a connection string for the server's
// postgres database, used to create or drop DBName
func (c *Config) GetMaintenanceConnString() string {
	return c.connString("postgres")
}

func (c *Config) connString(dbName string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsProduction reports whether Environment names a production deployment
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}
