package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the process environment.
type Env struct {
	ConfigPath string `env:"CRAZYFUN_CONFIG" envDefault:"./crazyfun_config.json"`
	DBPath     string `env:"CRAZYFUN_DB" envDefault:"./data/crazyfun.db"`
	// Addr overrides the server address from the config file when set.
	Addr      string `env:"CRAZYFUN_ADDR"`
	Telemetry bool   `env:"CRAZYFUN_TELEMETRY" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target interface{}) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the current environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
