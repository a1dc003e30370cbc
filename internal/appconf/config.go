// Package appconf holds application configuration and its loading rules.
package appconf

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment selects runtime behavior (clock implementation, log level).
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvironmentFromString maps a config value to an Environment.
func EnvironmentFromString(s string) (Environment, error) {
	switch s {
	case "", "development":
		return Development, nil
	case "test":
		return Test, nil
	case "production":
		return Production, nil
	default:
		return Development, fmt.Errorf("unknown environment %q", s)
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config is the application configuration.
type Config struct {
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	EnvName  string `yaml:"env" validate:"omitempty,oneof=development test production"`
	DBPath   string `yaml:"db-path" validate:"required"`
	Timezone string `yaml:"timezone"`

	Env Environment `yaml:"-"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		Port:   4000,
		DBPath: "nearest-bus.db",
		Env:    Development,
	}
}

// Load reads and validates a YAML config file. Fields absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	env, err := EnvironmentFromString(cfg.EnvName)
	if err != nil {
		return Config{}, err
	}
	cfg.Env = env

	return cfg, nil
}

// Validate checks a config against its struct rules.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
