package discovery

import (
	"fmt"

	"github.com/marvinh/leadscout/internal/config"
)

// NewFromConfig creates a Discoverer based on the configured mode.
// Parameters:
//   - cfg: discovery configuration.
// Returns:
//   - Discoverer: initialized discoverer implementation.
//   - error: non-nil if the mode is unknown or misconfigured.
func NewFromConfig(cfg *config.DiscoveryConfig) (Discoverer, error) {
	switch cfg.Mode {
	case "", "simulated":
		return NewSimulated(cfg.Seed), nil
	case "remote":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("discovery.base_url is required for remote mode")
		}
		return NewRemote(&RemoteConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown discovery mode %q", cfg.Mode)
	}
}
