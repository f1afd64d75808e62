package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ClosureOverride defines a recurring venue-closed rule: no coverage tasks
// are generated for dates matched by the rrule.
type ClosureOverride struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// Engine tuning. Zero values fall back to the defaults below.
	RestMinutes              int     `yaml:"restMinutes,omitempty" validate:"omitempty,min=0"`
	FixedShiftToleranceHours float64 `yaml:"fixedShiftToleranceHours,omitempty" validate:"omitempty,min=0"`
	SeniorBonus              float64 `yaml:"seniorBonus,omitempty" validate:"omitempty,min=0"`

	// ExcludedStations are never auto-scheduled.
	ExcludedStations []string `yaml:"excludedStations,omitempty"`

	// LookbackDays is how far before the range start existing shifts are
	// loaded so the rest rule holds across the boundary. Minimum 2.
	LookbackDays int `yaml:"lookbackDays,omitempty" validate:"omitempty,min=2"`

	Closures []ClosureOverride `yaml:"closures,omitempty" validate:"dive"`
}

const (
	defaultRestMinutes    = 660
	defaultToleranceHours = 2.0
	defaultSeniorBonus    = 50
	defaultLookbackDays   = 2
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from staffplan_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for a named environment
// (staffplan_config.<env>.yaml); an empty env falls back to staffplan_config.yaml
func LoadWithEnv(env string) (*Config, error) {
	name := "staffplan_config.yaml"
	if env != "" {
		name = fmt.Sprintf("staffplan_config.%s.yaml", env)
	}

	configPath, err := findConfigFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, closure := range cfg.Closures {
		if _, err := rrule.StrToRRule(closure.RRule); err != nil {
			return fmt.Errorf("invalid rrule in closures[%d]: %w", i, err)
		}
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.RestMinutes == 0 {
		cfg.RestMinutes = defaultRestMinutes
	}
	if cfg.FixedShiftToleranceHours == 0 {
		cfg.FixedShiftToleranceHours = defaultToleranceHours
	}
	if cfg.SeniorBonus == 0 {
		cfg.SeniorBonus = defaultSeniorBonus
	}
	if cfg.LookbackDays == 0 {
		cfg.LookbackDays = defaultLookbackDays
	}
	if cfg.ExcludedStations == nil {
		cfg.ExcludedStations = []string{"MANAGER"}
	}
}

// findConfigFile searches for the named config file in current directory and home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
