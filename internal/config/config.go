package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is everything the process reads from the environment. The
// Stripe key and site URL are opaque boundary configuration; the core
// data model never sees them.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	SiteURL         string `envconfig:"SITE_URL"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	Environment     string `envconfig:"APP_ENV" default:"development"`
}

// Load reads an optional .env file for local development, then the
// process environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	// envconfig's required tag only rejects an unset variable; an empty
	// value must fail the same way.
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY must not be empty")
	}
	return &cfg, nil
}
