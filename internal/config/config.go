package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Panel   PanelConfig
	Refresh RefreshConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// BackendConfig points the gateway at the inventory backend API.
type BackendConfig struct {
	BaseURL  string
	APIToken string
}

// PanelConfig controls panel rendering behavior.
type PanelConfig struct {
	// AdminEnabled gates the user panel. When false the users endpoint is
	// never called and the panel stays empty.
	AdminEnabled bool
	// NotifyTTL is how long a notification stays active before self-removal.
	NotifyTTL time.Duration
	// NotifyMax caps concurrently active notifications; 0 means unbounded.
	NotifyMax int
}

// RefreshConfig holds the optional periodic refresh schedule.
type RefreshConfig struct {
	// CronSchedule triggers a full panel refresh when set; empty disables it.
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	notifyTTL, err := getenvMillis("NOTIFY_TTL_MS", 3000)
	if err != nil {
		return nil, err
	}

	notifyMax, err := getenvInt("NOTIFY_MAX_ACTIVE", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL:  os.Getenv("BACKEND_BASE_URL"),
			APIToken: os.Getenv("BACKEND_API_TOKEN"),
		},
		Panel: PanelConfig{
			AdminEnabled: getenvBool("ADMIN_PANEL_ENABLED", false),
			NotifyTTL:    notifyTTL,
			NotifyMax:    notifyMax,
		},
		Refresh: RefreshConfig{
			CronSchedule: os.Getenv("REFRESH_CRON_SCHEDULE"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Sao_Paulo"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL must be provided")
	}

	if c.Panel.NotifyTTL <= 0 {
		return errors.New("NOTIFY_TTL_MS must be positive")
	}

	if c.Panel.NotifyMax < 0 {
		return errors.New("NOTIFY_MAX_ACTIVE must not be negative")
	}

	if c.Refresh.Timezone == "" {
		return errors.New("TIMEZONE must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getenvMillis(key string, fallback int) (time.Duration, error) {
	value, err := getenvInt(key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(value) * time.Millisecond, nil
}
