package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	APIPort      string   `env:"API_PORT" envDefault:"5000"`
	LogLevel     int      `env:"LOG_LEVEL" envDefault:"0"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000"`
	Mongo        Mongo    `envPrefix:"MONGO_"`
	Auth         Auth     `envPrefix:"AUTH_"`
	Stripe       Stripe   `envPrefix:"STRIPE_"`
	Booking      Booking  `envPrefix:"BOOKING_"`
}

// Mongo contains document store connection parameters.
type Mongo struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"doctors-portal"`
}

// Auth contains identity-provider verification parameters.
type Auth struct {
	// PublicKeyFile is a PEM file holding the provider's signing public
	// keys; multiple PUBLIC KEY blocks are accepted for key rotation.
	PublicKeyFile string `env:"PUBLIC_KEY_FILE" envDefault:"idp-keys.pem"`
}

// Stripe contains payment provider parameters.
type Stripe struct {
	SecretKey string `env:"SECRET"`
	Currency  string `env:"CURRENCY" envDefault:"usd"`
}

// Booking contains appointment registry parameters.
type Booking struct {
	// EnforceUniqueSlot installs a unique index on (treatment, date, slot)
	// so two patients cannot book the same slot. Turning it off restores
	// first-come-unchecked inserts.
	EnforceUniqueSlot bool `env:"ENFORCE_UNIQUE_SLOT" envDefault:"true"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
