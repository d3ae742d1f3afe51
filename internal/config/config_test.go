package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		variant string
		want    Config
	}{
		{VariantClicker, DefaultClickerConfig()},
		{VariantPoints, DefaultPointsConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			cfg, err := Load(tc.variant, "")
			if err != nil {
				t.Fatalf("Load(%q) error: %v", tc.variant, err)
			}
			if cfg != tc.want {
				t.Errorf("embedded YAML and hardcoded defaults differ:\n got %+v\nwant %+v", cfg, tc.want)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("default config should be valid: %v", err)
			}
		})
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	if _, err := Load("pong", ""); err == nil {
		t.Error("Load should fail for unknown variant")
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "fast.yaml")
	data := []byte("tiers:\n  hard: 9.5\nscoring:\n  hit_policy: nearest\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantClicker, path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Tiers.Hard != 9.5 {
		t.Errorf("Tiers.Hard = %g, expected 9.5", cfg.Tiers.Hard)
	}
	if cfg.Scoring.HitPolicy != HitNearest {
		t.Errorf("HitPolicy = %q, expected nearest", cfg.Scoring.HitPolicy)
	}
	// Unset fields keep defaults
	if cfg.Targets.Count != 10 {
		t.Errorf("Targets.Count = %d, expected default 10", cfg.Targets.Count)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	if _, err := Load(VariantClicker, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("targets: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantClicker, bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("targets:\n  count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantClicker, invalid); err == nil {
		t.Error("invalid custom config should be an error")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".clicker", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "points.yaml"), []byte("targets:\n  count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantPoints, "")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Targets.Count != 3 {
		t.Errorf("Targets.Count = %d, expected 3 from user config", cfg.Targets.Count)
	}
	if cfg.Motion.Mode != MotionRandom {
		t.Errorf("Motion.Mode = %q, expected points default random", cfg.Motion.Mode)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultClickerConfig()
	cfg.Targets.Count = 0
	cfg.Motion.Mode = "teleport"
	cfg.Timer.Format = "roman"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"targets.count", "motion.mode", "timer.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		name    string
		want    Tier
		wantErr bool
	}{
		{"", TierEasy, false},
		{"easy", TierEasy, false},
		{"Medium", TierMedium, false},
		{"normal", TierMedium, false},
		{" HARD ", TierHard, false},
		{"insane", TierEasy, true},
	}

	for _, tc := range tests {
		got, err := ParseTier(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTier(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseTier(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestTierSpeeds(t *testing.T) {
	s := DefaultClickerConfig().Tiers
	if s.Speed(TierEasy) != 1.0 || s.Speed(TierMedium) != 3.0 || s.Speed(TierHard) != 5.0 {
		t.Errorf("tier speeds = %g/%g/%g, expected 1/3/5",
			s.Speed(TierEasy), s.Speed(TierMedium), s.Speed(TierHard))
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvHitPolicy, "nearest")
	t.Setenv(EnvTimerFormat, "literal")
	t.Setenv(EnvResetOnStart, "true")
	t.Setenv(EnvDifficulty, "hard")

	cfg := DefaultPointsConfig()
	tier, err := ApplyEnv(&cfg)
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if tier != "hard" {
		t.Errorf("difficulty = %q, expected hard", tier)
	}
	if cfg.Scoring.HitPolicy != HitNearest {
		t.Errorf("HitPolicy = %q, expected nearest", cfg.Scoring.HitPolicy)
	}
	if cfg.Timer.Format != TimerLiteral {
		t.Errorf("Timer.Format = %q, expected literal", cfg.Timer.Format)
	}
	if !cfg.Scoring.ResetOnStart {
		t.Error("ResetOnStart should be true from env")
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvHitPolicy, "random")

	cfg := DefaultClickerConfig()
	if _, err := ApplyEnv(&cfg); err == nil {
		t.Error("ApplyEnv should reject an unknown hit policy")
	}

	t.Setenv(EnvHitPolicy, "")
	t.Setenv(EnvResetOnStart, "maybe")
	cfg = DefaultClickerConfig()
	if _, err := ApplyEnv(&cfg); err == nil {
		t.Error("ApplyEnv should reject a non-boolean reset flag")
	}
}
