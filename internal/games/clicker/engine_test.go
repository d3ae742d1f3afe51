package clicker

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

func testArena(policy config.HitPolicy) Arena {
	return Arena{
		Bounds: core.Size{W: 1200, H: 800},
		Radius: 15,
		Policy: policy,
	}
}

func TestIntegrate(t *testing.T) {
	tg := Target{Pos: core.V(100, 100), Vel: core.V(2, -3)}
	Integrate(&tg)
	if tg.Pos != core.V(102, 97) {
		t.Errorf("Integrate() position = %v, expected (102, 97)", tg.Pos)
	}
	if tg.Vel != core.V(2, -3) {
		t.Errorf("Integrate() should not change velocity, got %v", tg.Vel)
	}
}

func TestBounce(t *testing.T) {
	a := testArena(config.HitAll)

	tests := []struct {
		name    string
		target  Target
		wantVel core.Vec2
	}{
		{"free flight", Target{Pos: core.V(600, 400), Vel: core.V(3, 3)}, core.V(3, 3)},
		{"left wall band", Target{Pos: core.V(15, 400), Vel: core.V(-1, 0)}, core.V(1, 0)},
		{"past left wall", Target{Pos: core.V(9, 400), Vel: core.V(-1, 0)}, core.V(1, 0)},
		{"right wall band", Target{Pos: core.V(1185, 400), Vel: core.V(5, 1)}, core.V(-5, 1)},
		{"top wall", Target{Pos: core.V(600, 14), Vel: core.V(1, -1)}, core.V(1, 1)},
		{"bottom wall", Target{Pos: core.V(600, 786), Vel: core.V(1, 2)}, core.V(1, -2)},
		{"corner", Target{Pos: core.V(1190, 790), Vel: core.V(3, 3)}, core.V(-3, -3)},
		{"just inside", Target{Pos: core.V(15.5, 784.5), Vel: core.V(-1, 1)}, core.V(-1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tg := tc.target
			a.Bounce(&tg)
			if tg.Vel != tc.wantVel {
				t.Errorf("Bounce() velocity = %v, expected %v", tg.Vel, tc.wantVel)
			}
			if tg.Pos != tc.target.Pos {
				t.Errorf("Bounce() must not clamp position, got %v", tg.Pos)
			}
		})
	}
}

func TestAdvanceBounceAfterMove(t *testing.T) {
	// Target already past the left band keeps going for one frame, then flips
	a := testArena(config.HitAll)
	targets := []Target{{Pos: core.V(10, 400), Vel: core.V(-1, 0)}}

	survivors, removed := a.Advance(targets, nil)
	if len(removed) != 0 || len(survivors) != 1 {
		t.Fatalf("no click should remove nothing, got %d survivors, %d removed", len(survivors), len(removed))
	}
	if survivors[0].Vel != core.V(1, 0) {
		t.Errorf("post-frame velocity = %v, expected (1, 0)", survivors[0].Vel)
	}
	if survivors[0].Pos != core.V(9, 400) {
		t.Errorf("post-frame position = %v, expected unclamped (9, 400)", survivors[0].Pos)
	}
	if targets[0].Pos != core.V(10, 400) {
		t.Error("Advance must not modify its input slice")
	}
}

func TestAdvanceClickRemovesTarget(t *testing.T) {
	a := testArena(config.HitAll)
	targets := []Target{
		{Pos: core.V(98, 98), Vel: core.V(2, 2)}, // at (100, 100) after the move
		{Pos: core.V(500, 500), Vel: core.V(1, 1)},
	}
	click := core.V(100, 100)

	survivors, removed := a.Advance(targets, &click)
	if len(survivors) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(survivors))
	}
	if len(removed) != 1 || removed[0] != core.V(100, 100) {
		t.Errorf("removed = %v, expected [(100, 100)]", removed)
	}
	if survivors[0].Pos != core.V(501, 501) {
		t.Errorf("survivor should keep its updated state, got %+v", survivors[0])
	}
}

func TestHitTestBoundaryInclusive(t *testing.T) {
	a := testArena(config.HitAll)
	targets := []Target{{Pos: core.V(100, 100)}}

	if hit := a.HitTest(targets, core.V(115, 100)); !hit[0] {
		t.Error("click exactly one radius away should hit")
	}
	if hit := a.HitTest(targets, core.V(100, 115.001)); hit[0] {
		t.Error("click just beyond the radius should miss")
	}
}

func TestHitTestOverlapPolicies(t *testing.T) {
	targets := []Target{
		{Pos: core.V(100, 100)},
		{Pos: core.V(110, 100)},
		{Pos: core.V(300, 300)},
	}
	click := core.V(107, 100)

	all := testArena(config.HitAll).HitTest(targets, click)
	if !all[0] || !all[1] || all[2] {
		t.Errorf("HitAll mask = %v, expected [true true false]", all)
	}

	nearest := testArena(config.HitNearest).HitTest(targets, click)
	if nearest[0] || !nearest[1] || nearest[2] {
		t.Errorf("HitNearest mask = %v, expected [false true false]", nearest)
	}

	miss := testArena(config.HitNearest).HitTest(targets, core.V(700, 700))
	for i, h := range miss {
		if h {
			t.Errorf("miss should hit nothing, target %d hit", i)
		}
	}
}

func TestAdvanceZeroVelocityIdempotent(t *testing.T) {
	a := testArena(config.HitAll)
	targets := []Target{{Pos: core.V(600, 400)}}

	for i := 0; i < 1000; i++ {
		targets, _ = a.Advance(targets, nil)
	}
	if len(targets) != 1 || targets[0] != (Target{Pos: core.V(600, 400)}) {
		t.Errorf("stationary target drifted: %+v", targets)
	}
}

func TestAdvanceStaysNearArena(t *testing.T) {
	a := testArena(config.HitAll)
	rng := rand.New(rand.NewSource(5))
	targets := Spawn(rng, config.DefaultClickerConfig(), config.TierHard, a.Bounds)

	// Overshoot is bounded by one frame of speed
	for frame := 0; frame < 5000; frame++ {
		targets, _ = a.Advance(targets, nil)
		for i, tg := range targets {
			if tg.Pos.X < a.Radius-5 || tg.Pos.X > a.Bounds.W-a.Radius+5 ||
				tg.Pos.Y < a.Radius-5 || tg.Pos.Y > a.Bounds.H-a.Radius+5 {
				t.Fatalf("frame %d target %d escaped: %v", frame, i, tg.Pos)
			}
		}
	}
}

func TestAdvanceMonotonic(t *testing.T) {
	a := testArena(config.HitAll)
	rng := rand.New(rand.NewSource(8))
	targets := Spawn(rng, config.DefaultClickerConfig(), config.TierMedium, a.Bounds)

	for frame := 0; frame < 600 && len(targets) > 0; frame++ {
		var click *core.Vec2
		if frame%3 == 0 {
			// Aim at where the first target will be after this frame's move
			p := targets[0].Pos.Add(targets[0].Vel)
			if frame%2 == 0 {
				p = core.V(rng.Float64()*1200, rng.Float64()*800)
			}
			click = &p
		}

		before := len(targets)
		var removed []core.Vec2
		targets, removed = a.Advance(targets, click)

		if len(targets) > before {
			t.Fatalf("frame %d: target count grew from %d to %d", frame, before, len(targets))
		}
		if len(targets) < before && click == nil {
			t.Fatalf("frame %d: targets removed without a click", frame)
		}
		if before-len(targets) != len(removed) {
			t.Fatalf("frame %d: removed %d but count dropped by %d", frame, len(removed), before-len(targets))
		}
	}
}
