// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is shared by the web and terminal hosts.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	ContentPath   string `env:"CONTENT_PATH"`
	ReducedMotion bool   `env:"REDUCED_MOTION" envDefault:"false"`
	// HashSalt keeps visitor hashes stable across restarts. A random salt is
	// generated when empty.
	HashSalt string `env:"HASH_SALT"`
	LogPath  string `env:"TERMFOLIO_LOG" envDefault:"termfolio.log"`

	SMTP  SMTP
	Admin Admin
}

// Admin holds the dashboard credentials. The admin routes are disabled
// unless both are set.
type Admin struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Enabled reports whether credentials are present.
func (a Admin) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

// SMTP configures the contact form mailer.
type SMTP struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != "" && s.To != ""
}

// MotionScale is the typewriter timing factor for the motion preference.
func (c Config) MotionScale() float64 {
	if c.ReducedMotion {
		return 2
	}
	return 1
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses a fixed environment, for tests and tools.
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
