package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override loaded configuration.
const (
	EnvHitPolicy    = "CLICKER_HIT_POLICY"
	EnvTimerFormat  = "CLICKER_TIMER_FORMAT"
	EnvResetOnStart = "CLICKER_RESET_ON_START"
	EnvDifficulty   = "CLICKER_DIFFICULTY"
)

// Load loads a variant's configuration.
// Search order: customPath -> ~/.clicker/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
func Load(variant, customPath string) (Config, error) {
	cfg, ok := Default(variant)
	if !ok {
		return cfg, fmt.Errorf("unknown variant %q", variant)
	}
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := cfg
	if err := yaml.Unmarshal(GetDefaultYAML(variant), &embedded); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clicker", "configs", filename)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Targets.Count <= 0 {
		errs = append(errs, fmt.Errorf("targets.count must be positive, got %d", c.Targets.Count))
	}
	if c.Targets.Radius <= 0 {
		errs = append(errs, fmt.Errorf("targets.radius must be positive, got %g", c.Targets.Radius))
	}
	if c.Targets.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("targets.spawn_margin must not be negative, got %g", c.Targets.SpawnMargin))
	}
	switch c.Motion.Mode {
	case MotionTiered:
	case MotionRandom:
		if c.Motion.RandomMax < 0 {
			errs = append(errs, fmt.Errorf("motion.random_max must not be negative, got %d", c.Motion.RandomMax))
		}
	default:
		errs = append(errs, fmt.Errorf("motion.mode %q is not tiered or random", c.Motion.Mode))
	}
	switch c.Scoring.HitPolicy {
	case HitAll, HitNearest:
	default:
		errs = append(errs, fmt.Errorf("scoring.hit_policy %q is not all or nearest", c.Scoring.HitPolicy))
	}
	switch c.Scoring.Count {
	case CountClicks, CountHits:
	default:
		errs = append(errs, fmt.Errorf("scoring.count %q is not clicks or hits", c.Scoring.Count))
	}
	switch c.Timer.Format {
	case TimerFixed, TimerLiteral:
	default:
		errs = append(errs, fmt.Errorf("timer.format %q is not fixed or literal", c.Timer.Format))
	}

	return errors.Join(errs...)
}

// ApplyEnv loads an optional .env file and applies CLICKER_* overrides.
// It returns the tier named by CLICKER_DIFFICULTY, or "" if unset.
func ApplyEnv(cfg *Config) (string, error) {
	// A missing .env is normal
	_ = godotenv.Load()

	if v := os.Getenv(EnvHitPolicy); v != "" {
		cfg.Scoring.HitPolicy = HitPolicy(v)
	}
	if v := os.Getenv(EnvTimerFormat); v != "" {
		cfg.Timer.Format = TimerFormat(v)
	}
	if v := os.Getenv(EnvResetOnStart); v != "" {
		reset, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("invalid %s: %w", EnvResetOnStart, err)
		}
		cfg.Scoring.ResetOnStart = reset
	}

	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid environment overrides: %w", err)
	}
	return os.Getenv(EnvDifficulty), nil
}
