package clicker

import (
	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/registry"
)

// Ensure Game satisfies the registry contracts.
var (
	_ registry.Game         = (*Game)(nil)
	_ registry.TierSelector = (*Game)(nil)
)

// Register both variants with the registry
func init() {
	for _, id := range []string{config.VariantClicker, config.VariantPoints} {
		id := id
		registry.Register(id, func(cfg config.Config) registry.Game {
			return New(id, cfg)
		})
	}
}
