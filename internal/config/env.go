package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	App      App
	Database Database
	Redis    Redis
	Report   Report
	Limiter  Limiter
}

type App struct {
	Name    string `env:"APP_NAME" env-default:"Receipt Tracker"`
	Version string `env:"APP_VERSION" env-default:"1.0.0"`
	Env     string `env:"APP_ENV" env-default:"local"`
	Port    string `env:"APP_PORT" env-default:"3000"`
	APIKey  string `env:"API_KEY"`
}

type Database struct {
	Host         string `env:"DB_HOST" env-default:"localhost"`
	Port         string `env:"DB_PORT" env-default:"5432"`
	User         string `env:"DB_USER" env-default:"postgres"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME" env-default:"receipt_tracker"`
	SSLMode      string `env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	AutoMigrate  bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type Redis struct {
	Address  string `env:"REDIS_ADDRESS"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Report struct {
	CacheTTL time.Duration `env:"REPORT_CACHE_TTL" env-default:"1m"`
}

type Limiter struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"50"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"100"`
}

// ReadEnv loads the configuration from the process environment and
// validates it.
func ReadEnv() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadDatabaseEnv loads only the database section, for tools that never
// serve requests.
func ReadDatabaseEnv() (*Database, error) {
	var db Database
	if err := cleanenv.ReadEnv(&db); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &db, nil
}

// Validate reports every problem at once.
func (c *AppConfig) Validate() error {
	var problems []string

	if strings.TrimSpace(c.App.APIKey) == "" {
		problems = append(problems, "API_KEY is required")
	}
	if c.App.Port == "" {
		problems = append(problems, "APP_PORT is required")
	}
	if c.Database.Host == "" {
		problems = append(problems, "DB_HOST is required")
	}
	if c.Database.Name == "" {
		problems = append(problems, "DB_NAME is required")
	}
	if c.Database.MaxOpenConns < 1 {
		problems = append(problems, "DB_MAX_OPEN_CONNS must be positive")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		problems = append(problems, "DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	if c.Redis.DB < 0 {
		problems = append(problems, "REDIS_DB must not be negative")
	}
	if c.Report.CacheTTL < 0 {
		problems = append(problems, "REPORT_CACHE_TTL must not be negative")
	}
	if c.Limiter.RPS <= 0 {
		problems = append(problems, "RATE_LIMIT_RPS must be positive")
	}
	if c.Limiter.Burst < 1 {
		problems = append(problems, "RATE_LIMIT_BURST must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// DSN is the lib/pq connection URL for the database.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
