// Package config loads the service configuration from a TOML file.
// Secrets (database password, JWT secret) may be overridden through the
// environment so they never have to live in the file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config top-level service configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Jobs     JobsConfig     `toml:"jobs"`
	Logs     LogsConfig     `toml:"logs"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// AuthConfig JWT and password hashing settings
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
	BcryptCost      int    `toml:"bcrypt_cost"`
}

// MetricsConfig prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// JobsConfig background sweep schedules (cron expressions)
type JobsConfig struct {
	Enabled          bool   `toml:"enabled"`
	NoShowSchedule   string `toml:"no_show_schedule"`
	OverdueSchedule  string `toml:"overdue_schedule"`
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load reads the configuration file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Environment wins over the file for secrets.
	if v := os.Getenv("HOTEL_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("HOTEL_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 60,
			BcryptCost:      10,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "hotel-ops-service",
		},
		Jobs: JobsConfig{
			NoShowSchedule:  "0 3 * * *",
			OverdueSchedule: "*/15 * * * *",
		},
		Logs: LogsConfig{
			Level: "info",
		},
	}
}

func (c *Config) validate() error {
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database user and dbname are required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret (or HOTEL_JWT_SECRET) is required")
	}
	return nil
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
