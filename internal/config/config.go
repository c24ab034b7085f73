package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Database Database `envPrefix:"DATABASE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Reply    Reply    `envPrefix:"REPLY_"`
	Sim      Sim      `envPrefix:"SIM_"`
	Gemini   Gemini   `envPrefix:"GEMINI_"`
	Storage  Storage  `envPrefix:"MINIO_"`
	Images   Images   `envPrefix:"IMAGES_"`
}

// Database contains local database parameters.
type Database struct {
	Path string `env:"PATH" envDefault:"flirtshaala.db"`
}

// Auth selects the authentication backend.
type Auth struct {
	// Provider is "demo" (always succeeds) or "local" (accounts stored in
	// the local database with hashed passwords).
	Provider string `env:"PROVIDER" envDefault:"demo"`
}

// Reply selects the witty-reply backend.
type Reply struct {
	// Provider is "canned" or "gemini".
	Provider string `env:"PROVIDER" envDefault:"canned"`
}

// Sim contains artificial delays for the simulated collaborators.
type Sim struct {
	LoginDelay    time.Duration `env:"LOGIN_DELAY" envDefault:"1s"`
	SignupDelay   time.Duration `env:"SIGNUP_DELAY" envDefault:"1200ms"`
	OCRDelay      time.Duration `env:"OCR_DELAY" envDefault:"2s"`
	ReplyDelay    time.Duration `env:"REPLY_DELAY" envDefault:"1500ms"`
	PurchaseDelay time.Duration `env:"PURCHASE_DELAY" envDefault:"1s"`
}

// Gemini contains parameters for the Gemini reply backend.
type Gemini struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-1.5-flash-latest"`
}

// Storage contains object storage parameters for screenshot uploads.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"flirtshaala-screenshots"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Images contains the local screenshot directory used when no object
// storage endpoint is configured.
type Images struct {
	Dir string `env:"DIR" envDefault:"screenshots"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
