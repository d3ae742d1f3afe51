package config

import (
	_ "embed"
)

// Variant identifiers. Each has an embedded default YAML.
const (
	VariantClicker = "clicker"
	VariantPoints  = "points"
)

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

//go:embed defaults/points.yaml
var defaultPointsYAML []byte

// DefaultClickerConfig returns the timed clicker configuration.
func DefaultClickerConfig() Config {
	return Config{
		Title: "Clicker Game",
		Targets: TargetsConfig{
			Count:       10,
			Radius:      15,
			SpawnMargin: 30,
		},
		Motion: MotionConfig{
			Mode:      MotionTiered,
			RandomMax: 2,
		},
		Tiers: TierSpeeds{
			Easy:   1.0,
			Medium: 3.0,
			Hard:   5.0,
		},
		Scoring: ScoringConfig{
			ResetOnStart: true,
			HitPolicy:    HitAll,
			Count:        CountClicks,
			Label:        "Clicks",
		},
		Timer: TimerConfig{
			Enabled: true,
			Format:  TimerFixed,
		},
	}
}

// DefaultPointsConfig returns the points game configuration.
func DefaultPointsConfig() Config {
	cfg := DefaultClickerConfig()
	cfg.Title = "Points Game"
	cfg.Motion.Mode = MotionRandom
	cfg.Scoring.ResetOnStart = false
	cfg.Scoring.Count = CountHits
	cfg.Scoring.Label = "Points"
	cfg.Timer.Enabled = false
	return cfg
}

// Default returns the hardcoded configuration for a variant.
func Default(variant string) (Config, bool) {
	switch variant {
	case VariantClicker:
		return DefaultClickerConfig(), true
	case VariantPoints:
		return DefaultPointsConfig(), true
	default:
		return Config{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClicker:
		return defaultClickerYAML
	case VariantPoints:
		return defaultPointsYAML
	default:
		return nil
	}
}
