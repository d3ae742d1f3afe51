package clicker

import (
	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

// Arena holds the fixed parameters of target simulation.
type Arena struct {
	Bounds core.Size
	Radius float64
	Policy config.HitPolicy
}

// Integrate moves a target by one tick of its velocity.
func Integrate(t *Target) {
	t.Pos = t.Pos.Add(t.Vel)
}

// Bounce flips each velocity axis whose coordinate touches or passes the
// wall band. Positions are not clamped, so a target may sit past the band
// for one frame.
func (a Arena) Bounce(t *Target) {
	if t.Pos.X <= a.Radius || t.Pos.X >= a.Bounds.W-a.Radius {
		t.Vel.X = -t.Vel.X
	}
	if t.Pos.Y <= a.Radius || t.Pos.Y >= a.Bounds.H-a.Radius {
		t.Vel.Y = -t.Vel.Y
	}
}

// HitTest returns a mask of targets removed by a click at p.
// With HitAll every containing target is hit; with HitNearest only the
// containing target whose center is closest to p.
func (a Arena) HitTest(targets []Target, p core.Vec2) []bool {
	hit := make([]bool, len(targets))
	nearest := -1
	nearestDist := 0.0

	for i, t := range targets {
		c := core.Circle{Center: t.Pos, Radius: a.Radius}
		if !c.Contains(p) {
			continue
		}
		if a.Policy != config.HitNearest {
			hit[i] = true
			continue
		}
		d := p.Sub(t.Pos).LenSq()
		if nearest < 0 || d < nearestDist {
			nearest, nearestDist = i, d
		}
	}

	if nearest >= 0 {
		hit[nearest] = true
	}
	return hit
}

// Advance runs one frame of simulation: move, bounce, resolve the click
// (if any) and drop hit targets. It returns the survivors in their original
// order together with the centers of removed targets. The input slice is
// not modified.
func (a Arena) Advance(targets []Target, click *core.Vec2) (survivors []Target, removed []core.Vec2) {
	moved := make([]Target, len(targets))
	for i, t := range targets {
		Integrate(&t)
		a.Bounce(&t)
		moved[i] = t
	}

	if click == nil {
		return moved, nil
	}

	hit := a.HitTest(moved, *click)
	survivors = moved[:0]
	for i, t := range moved {
		if hit[i] {
			removed = append(removed, t.Pos)
			continue
		}
		survivors = append(survivors, t)
	}
	return survivors, removed
}
