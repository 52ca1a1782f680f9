package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything read from the process environment at startup.
type Config struct {
	Server      ServerConfig
	DocIntel    DocIntelConfig
	Log         LogConfig
	AppVersion  string
	StrictPDF   bool
	EnvFileUsed string
}

type ServerConfig struct {
	ListenAddr string
}

// DocIntelConfig holds the Document Intelligence credentials and polling budget.
type DocIntelConfig struct {
	Endpoint     string
	APIKey       string
	APIVersion   string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

type LogConfig struct {
	IsProd bool
	Level  slog.Level
}

var envFiles = []string{".env", "../.env"}

// Load reads an optional .env file and then the environment.
// Missing credentials are not an error here; they surface per request.
func Load() *Config {
	used := ""
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			used = envFile
			break
		}
	}
	return FromEnv(used)
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv(envFileUsed string) *Config {
	isProd := strings.EqualFold(getEnv("APP_ENV", ""), "production")
	defaultLevel := slog.LevelDebug
	if isProd {
		defaultLevel = LOG_LEVEL_PROD
	}

	return &Config{
		Server: ServerConfig{
			ListenAddr: getEnv("LISTEN_ADDR", ServerListenAddr),
		},
		DocIntel: DocIntelConfig{
			Endpoint:     strings.TrimRight(getEnv("DOCINT_ENDPOINT", ""), "/"),
			APIKey:       getEnv("DOCINT_KEY", ""),
			APIVersion:   getEnv("DOCINT_API_VERSION", DefaultAPIVersion),
			PollInterval: getEnvAsDuration("DOCINT_POLL_INTERVAL", DefaultPollInterval),
			PollTimeout:  getEnvAsDuration("DOCINT_POLL_TIMEOUT", DefaultPollTimeout),
		},
		Log: LogConfig{
			IsProd: isProd,
			Level:  getEnvAsLevel("LOG_LEVEL", defaultLevel),
		},
		AppVersion:  getEnv("APP_VERSION", DefaultAppVersion),
		StrictPDF:   getEnvAsBool("STRICT_PDF_CHECK", false),
		EnvFileUsed: envFileUsed,
	}
}

// ServerWriteTimeout is how long a response may take to write. It grows with the configured poll budget
// so the server never cuts off an extraction that is still within its own limits.
func (c *Config) ServerWriteTimeout() time.Duration {
	worstCase := 2*BackendCallTimeout + c.DocIntel.PollTimeout + c.DocIntel.PollInterval
	return max(WriteTimeout, worstCase+WriteTimeoutHeadroom)
}

// MissingCredentials lists the required variables that are unset.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.DocIntel.Endpoint == "" {
		missing = append(missing, "DOCINT_ENDPOINT")
	}
	if c.DocIntel.APIKey == "" {
		missing = append(missing, "DOCINT_KEY")
	}
	return missing
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
