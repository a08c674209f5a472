// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Kapaipai      KapaipaiConfig      `yaml:"kapaipai"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// KapaipaiConfig defines marketplace client and matching settings.
type KapaipaiConfig struct {
	SearchURL     string          `yaml:"search_url"`
	ListingsURL   string          `yaml:"listings_url"`
	Game          string          `yaml:"game"`
	Timeout       time.Duration   `yaml:"timeout"`
	Workers       int             `yaml:"workers"`
	IncludeFlawed bool            `yaml:"include_flawed"`
	ProductURLTpl string          `yaml:"product_url_template"`
	ImageURLTpl   string          `yaml:"image_url_template"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines marketplace call rate limiting. A zero DailyLimit
// means no daily budget.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ScheduleConfig defines the price-check cadence.
type ScheduleConfig struct {
	Enabled            *bool         `yaml:"enabled"` // default: true
	PriceCheckInterval time.Duration `yaml:"price_check_interval"`
	LeaseTTL           time.Duration `yaml:"lease_ttl"`
}

// IsEnabled reports whether the scheduled price check should run.
func (s *ScheduleConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Line    LineConfig    `yaml:"line"`
	Discord DiscordConfig `yaml:"discord"`
}

// LineConfig defines LINE Messaging API push settings.
type LineConfig struct {
	Enabled            bool   `yaml:"enabled"`
	ChannelAccessToken string `yaml:"channel_access_token"`
	DefaultUserID      string `yaml:"default_user_id"`
	PushURL            string `yaml:"push_url"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyKapaipaiDefaults(&cfg.Kapaipai)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		// multi-search may run ten cards' worth of marketplace calls
		s.WriteTimeout = 60 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
}

func applyKapaipaiDefaults(k *KapaipaiConfig) {
	if k.SearchURL == "" {
		k.SearchURL = "https://trade.kapaipai.tw/api/card/getFilteredList"
	}
	if k.ListingsURL == "" {
		k.ListingsURL = "https://trade.kapaipai.tw/api/product/listProduct"
	}
	if k.Game == "" {
		k.Game = "pkmtw"
	}
	if k.Timeout == 0 {
		k.Timeout = 10 * time.Second
	}
	if k.Workers == 0 {
		k.Workers = 8
	}
	applyRateLimitDefaults(&k.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10.0
	}
	if r.Burst == 0 {
		r.Burst = 8
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.PriceCheckInterval == 0 {
		s.PriceCheckInterval = 10 * time.Minute
	}
	if s.LeaseTTL == 0 {
		s.LeaseTTL = 2 * time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if cfg.Kapaipai.Workers < 0 {
		errs = append(errs, fmt.Errorf("kapaipai.workers must be positive (got %d)", cfg.Kapaipai.Workers))
	}
	if cfg.Kapaipai.RateLimit.DailyLimit < 0 {
		errs = append(errs, errors.New("kapaipai.rate_limit.daily_limit must not be negative"))
	}
	if cfg.Schedule.PriceCheckInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"schedule.price_check_interval must be at least 1m (got %s)",
			cfg.Schedule.PriceCheckInterval,
		))
	}

	if cfg.Notifications.Line.Enabled && cfg.Notifications.Line.ChannelAccessToken == "" {
		errs = append(errs, errors.New(
			"notifications.line.channel_access_token is required when line is enabled",
		))
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, errors.New(
			"notifications.discord.webhook_url is required when discord is enabled",
		))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
