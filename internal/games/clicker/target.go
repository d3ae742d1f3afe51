package clicker

import (
	"math/rand"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

// Target is a moving circular hit region. The radius is shared by all
// targets of a game and lives in Arena.
type Target struct {
	Pos core.Vec2 // Center
	Vel core.Vec2 // Displacement per tick
}

// Spawn creates a fresh batch of targets inside bounds.
// Each coordinate is uniform in [margin, dim-margin]; velocity follows the
// configured motion mode. Bounds must be at least twice the margin.
func Spawn(rng *rand.Rand, cfg config.Config, tier config.Tier, bounds core.Size) []Target {
	targets := make([]Target, 0, cfg.Targets.Count)
	margin := cfg.Targets.SpawnMargin

	for i := 0; i < cfg.Targets.Count; i++ {
		// y is drawn before x; seeded runs depend on the order
		y := margin + rng.Float64()*(bounds.H-2*margin)
		x := margin + rng.Float64()*(bounds.W-2*margin)

		targets = append(targets, Target{
			Pos: core.V(x, y),
			Vel: spawnVelocity(rng, cfg, tier),
		})
	}
	return targets
}

// spawnVelocity picks the initial velocity for one target.
func spawnVelocity(rng *rand.Rand, cfg config.Config, tier config.Tier) core.Vec2 {
	if cfg.Motion.Mode == config.MotionRandom {
		span := 2*cfg.Motion.RandomMax + 1
		return core.V(
			float64(rng.Intn(span)-cfg.Motion.RandomMax),
			float64(rng.Intn(span)-cfg.Motion.RandomMax),
		)
	}

	speed := cfg.Tiers.Speed(tier)
	v := core.V(speed, speed)
	if rng.Intn(2) == 0 {
		v.X = -v.X
	}
	if rng.Intn(2) == 0 {
		v.Y = -v.Y
	}
	return v
}
