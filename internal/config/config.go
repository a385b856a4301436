// Package config builds the process-wide configuration once at startup.
// Components receive the resulting value explicitly; nothing reads ambient
// environment state after Load returns.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port int    `koanf:"port"`
	Env  string `koanf:"env"` // development | production

	CORSOrigin  string `koanf:"cors_origin"`
	DatabaseURL string `koanf:"database_url"`

	// SMTP transport. All of host/user/pass must be set for mail to be
	// enabled; anything less means notifications are skipped with a log line.
	SMTPHost  string `koanf:"smtp_host"`
	SMTPPort  int    `koanf:"smtp_port"`
	SMTPUser  string `koanf:"smtp_user"`
	SMTPPass  string `koanf:"smtp_pass"`
	EmailFrom string `koanf:"email_from"`
	EmailTo   string `koanf:"email_to"`

	// Optional broker for the notification worker. Empty means notifications
	// are dispatched in-process.
	AMQPURL string `koanf:"amqp_url"`

	RateLimitWindowMS int `koanf:"rate_limit_window_ms"`
	RateLimitMax      int `koanf:"rate_limit_max"`

	// PhoneRequired toggles between the two observed form variants.
	PhoneRequired bool `koanf:"phone_required"`
}

func defaults() *Config {
	return &Config{
		Port:              3001,
		Env:               "production",
		CORSOrigin:        "http://localhost:5173",
		SMTPPort:          587,
		RateLimitWindowMS: 60_000,
		RateLimitMax:      10,
		PhoneRequired:     true,
	}
}

// Load layers a local .env file (if any) and the environment over defaults,
// then validates. A missing DATABASE_URL is a startup error by design.
func Load() (*Config, error) {
	godotenv.Load()

	k := koanf.New(".")

	// PORT -> port, DATABASE_URL -> database_url, ...
	provider := env.Provider("", ".", strings.ToLower)
	if err := k.Load(provider, nil); err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("ENV must be development or production, got %q", c.Env)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.RateLimitWindowMS <= 0 || c.RateLimitMax <= 0 {
		return errors.New("rate limit window and max must be positive")
	}
	if c.MailConfigured() && (c.EmailFrom == "" || c.EmailTo == "") {
		return errors.New("EMAIL_FROM and EMAIL_TO are required when SMTP is configured")
	}
	return nil
}

func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func (c *Config) QueueConfigured() bool {
	return c.AMQPURL != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
