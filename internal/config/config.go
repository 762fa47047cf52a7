// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the auth server. A missing JWT
// secret is a startup-fatal condition; it is never checked per request.
type Config struct {
	Port           string `env:"PORT" envDefault:"3001"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"geoservice-auth.db"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	FrontendURL    string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	SESSenderEmail string `env:"AWS_SES_SENDER_EMAIL"`
	AWSRegion      string `env:"AWS_REGION"`
	BcryptCost     int    `env:"BCRYPT_COST" envDefault:"10"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	return nil
}
