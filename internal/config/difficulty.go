package config

import (
	"fmt"
	"strings"
)

// Tier represents a named difficulty level.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// String returns the display name of the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseTier converts a preset name (case-insensitive) to a Tier.
// An empty name yields TierEasy.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "easy":
		return TierEasy, nil
	case "medium", "normal":
		return TierMedium, nil
	case "hard":
		return TierHard, nil
	default:
		return TierEasy, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
	}
}
