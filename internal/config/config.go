// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the pigpen server configuration.
type Config struct {
	Env         string `env:"PIGPEN_ENV" envDefault:"development"`
	Addr        string `env:"PIGPEN_ADDR" envDefault:":8080"`
	CatalogPath string `env:"PIGPEN_CATALOG_PATH" envDefault:"data/pig-parts.yaml"`
	LogLevel    string `env:"PIGPEN_LOG_LEVEL" envDefault:"info"`
}

// Load reads optional dotenv files (".env" when none are given) and then
// parses the environment. Variables already set win over dotenv values.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Env, validation.Required, validation.In(EnvDevelopment, EnvProduction)),
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.CatalogPath, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.By(validLevel)),
	)
}

func validLevel(value interface{}) error {
	s, _ := value.(string)
	if _, err := zerolog.ParseLevel(s); err != nil {
		return errors.New("must be a zerolog level (debug, info, warn, error)")
	}
	return nil
}
