package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers accepted by DB_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

// Config is the process configuration shared by every binary.
type Config struct {
	Port          string
	DBDriver      string
	DBPath        string
	DatabaseURL   string
	SeedPath      string
	AdminUsername string
	AdminPassword string
	LogLevel      string
	LogFormat     string
	LogOutput     string
}

// bcrypt truncates longer passwords.
const maxPasswordLen = 72

var defaults = map[string]string{
	"PORT":           "8080",
	"DB_DRIVER":      DriverMemory,
	"DB_PATH":        "data/corvo.db",
	"SEED_PATH":      "data/seeds/fixture.json",
	"ADMIN_USERNAME": "admin",
	"ADMIN_PASSWORD": "1234",
	"LOG_LEVEL":      "info",
	"LOG_FORMAT":     "json",
	"LOG_OUTPUT":     "stderr",
}

// Load reads .env (if present), the optional CONFIG_FILE and the
// environment, in increasing order of precedence.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := Config{
		Port:          v.GetString("PORT"),
		DBDriver:      strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBPath:        v.GetString("DB_PATH"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		SeedPath:      v.GetString("SEED_PATH"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		LogOutput:     v.GetString("LOG_OUTPUT"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a TCP port, got %q", c.Port))
	}

	switch c.DBDriver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			errs = append(errs, errors.New("DB_PATH is required for the sqlite driver"))
		}
	case DriverPgx:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the pgx driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be one of memory, sqlite, pgx; got %q", c.DBDriver))
	}

	if strings.TrimSpace(c.AdminUsername) == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME must not be empty"))
	}
	if len(c.AdminPassword) > maxPasswordLen {
		errs = append(errs, fmt.Errorf("ADMIN_PASSWORD must be at most %d bytes", maxPasswordLen))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DSN returns the data source name for the configured SQL driver.
func (c Config) DSN() string {
	if c.DBDriver == DriverPgx {
		return c.DatabaseURL
	}
	return c.DBPath
}
