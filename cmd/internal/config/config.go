package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	AccessTokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPass            string        `mapstructure:"DB_PASS"`
	DBName            string        `mapstructure:"DB_NAME"`
	MongoURI          string        `mapstructure:"MONGO_URI"`
	SQLitePath        string        `mapstructure:"SQLITE_PATH"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int           `mapstructure:"RATE_LIMIT_BURST"`
}

var keys = []string{
	"PORT", "ACCESS_TOKEN_SECRET", "TOKEN_TTL",
	"DB_DRIVER", "DB_USER", "DB_PASS", "DB_NAME", "MONGO_URI", "SQLITE_PATH",
	"LOG_LEVEL", "CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// Load reads .env (when present) into the process environment and then
// resolves every setting from the environment, falling back to defaults.
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("DB_NAME", "doctorsPortal")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("SQLITE_PATH", "./database.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	return c.ValidateStore()
}

// ValidateStore checks only the database settings, which is all the seed
// command needs.
func (c *Config) ValidateStore() error {
	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when DB_DRIVER is mongo")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER is sqlite")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverMongo, DriverSQLite, c.DBDriver)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
