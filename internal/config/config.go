// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Server      ServerConfig
	Database    DatabaseConfig `envconfig:"DB"`
	Store       StoreConfig
	CORS        CORSConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig `envconfig:"RATE_LIMIT"`
	Log         LogConfig
	Seed        bool `envconfig:"SEED_DATA" default:"true"`
}

type ServerConfig struct {
	Port         string        `split_words:"true" default:"8080"`
	Host         string        `split_words:"true" default:"localhost"`
	ReadTimeout  time.Duration `split_words:"true" default:"15s"`
	WriteTimeout time.Duration `split_words:"true" default:"15s"`
	IdleTimeout  time.Duration `split_words:"true" default:"60s"`
}

type DatabaseConfig struct {
	Host         string        `split_words:"true" default:"localhost"`
	Port         string        `split_words:"true" default:"5432"`
	User         string        `split_words:"true" default:"postgres"`
	Password     string        `split_words:"true"`
	Name         string        `split_words:"true" default:"online_shopping"`
	SSLMode      string        `split_words:"true" default:"disable"`
	MaxOpenConns int           `split_words:"true" default:"25"`
	MaxIdleConns int           `split_words:"true" default:"25"`
	MaxLifetime  time.Duration `split_words:"true" default:"5m"`
	LogLevel     string        `split_words:"true" default:"warn"`
}

// StoreConfig selects the persistence backend. The memory driver keeps
// everything in process and is meant for demos and local front-end work.
type StoreConfig struct {
	Driver string `split_words:"true" default:"postgres"`
}

type CORSConfig struct {
	AllowedOrigin string `split_words:"true" default:"http://localhost:3000"`
}

// AuthConfig holds the single credential pair accepted by the login check.
type AuthConfig struct {
	Username string `split_words:"true" default:"admin"`
	Password string `split_words:"true" default:"admin123"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `split_words:"true" default:"10"`
	Burst             int     `split_words:"true" default:"20"`
	LoginPerMinute    float64 `split_words:"true" default:"5"`
	LoginBurst        int     `split_words:"true" default:"5"`
}

type LogConfig struct {
	Level  string `split_words:"true" default:"info"`
	Format string `split_words:"true" default:"text"`
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Store.Driver == StoreDriverPostgres && c.Database.Password == "" && c.IsProduction() {
		return fmt.Errorf("database password is required in production")
	}

	if c.CORS.AllowedOrigin == "" {
		return fmt.Errorf("a CORS origin is required")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
