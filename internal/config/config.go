// Package config provides YAML-based variant configuration loading and
// difficulty tiers for the clicker game.
package config

// Config contains all tunables of one game variant.
type Config struct {
	Title   string        `yaml:"title"`
	Targets TargetsConfig `yaml:"targets"`
	Motion  MotionConfig  `yaml:"motion"`
	Tiers   TierSpeeds    `yaml:"tiers"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timer   TimerConfig   `yaml:"timer"`
}

// TargetsConfig defines the spawned batch.
type TargetsConfig struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Distance kept from every wall at spawn
}

// MotionMode selects how spawn velocities are chosen.
type MotionMode string

const (
	// MotionTiered uses the tier speed on both axes with a random sign each.
	MotionTiered MotionMode = "tiered"
	// MotionRandom draws a uniform integer in [-RandomMax, RandomMax] per axis.
	MotionRandom MotionMode = "random"
)

// MotionConfig defines spawn velocity rules.
type MotionConfig struct {
	Mode      MotionMode `yaml:"mode"`
	RandomMax int        `yaml:"random_max"`
}

// TierSpeeds is the per-axis speed for each tier, in world units per tick.
type TierSpeeds struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// Speed returns the speed for a tier.
func (s TierSpeeds) Speed(t Tier) float64 {
	switch t {
	case TierMedium:
		return s.Medium
	case TierHard:
		return s.Hard
	default:
		return s.Easy
	}
}

// HitPolicy decides what a click removes when targets overlap.
type HitPolicy string

const (
	// HitAll removes every target containing the click point.
	HitAll HitPolicy = "all"
	// HitNearest removes only the containing target closest to the click.
	HitNearest HitPolicy = "nearest"
)

// CountMode selects which counter the HUD shows.
type CountMode string

const (
	CountClicks CountMode = "clicks" // Every left press while running
	CountHits   CountMode = "hits"   // Every removed target
)

// ScoringConfig defines counters.
type ScoringConfig struct {
	ResetOnStart bool      `yaml:"reset_on_start"`
	HitPolicy    HitPolicy `yaml:"hit_policy"`
	Count        CountMode `yaml:"count"`
	Label        string    `yaml:"label"`
}

// TimerFormat selects how elapsed time is printed.
type TimerFormat string

const (
	// TimerFixed prints milliseconds zero-padded to three digits ("3.045").
	TimerFixed TimerFormat = "fixed"
	// TimerLiteral prints the millisecond magnitude as-is ("3.45" for 3045ms).
	TimerLiteral TimerFormat = "literal"
)

// TimerConfig defines session timing display.
type TimerConfig struct {
	Enabled bool        `yaml:"enabled"`
	Format  TimerFormat `yaml:"format"`
}

// TiersEnabled reports whether the menu offers tier selection.
func (c Config) TiersEnabled() bool {
	return c.Motion.Mode == MotionTiered
}
