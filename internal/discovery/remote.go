package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/marvinh/leadscout/internal/domain"
)

// Remote calls an external scraping service over HTTP. The service owns the
// actual platform access; this adapter only shapes the request and response.
type Remote struct {
	client  *resty.Client
	baseURL string
}

// RemoteConfig holds configuration for the remote discoverer.
type RemoteConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewRemote creates a remote discoverer.
// Parameters:
//   - cfg: remote service configuration.
// Returns:
//   - *Remote: initialized discoverer.
func NewRemote(cfg *RemoteConfig) *Remote {
	client := resty.New()
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	client.SetHeader("Content-Type", "application/json")
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	client.SetTimeout(timeout)

	return &Remote{
		client:  client,
		baseURL: cfg.BaseURL,
	}
}

type discoverRequest struct {
	Platform string   `json:"platform"`
	Keywords []string `json:"keywords"`
	Quantity int      `json:"quantity"`
}

type discoverResponse struct {
	Candidates []domain.Candidate `json:"candidates"`
	Error      string             `json:"error,omitempty"`
}

// Discover fetches candidates from the remote service.
func (r *Remote) Discover(ctx context.Context, platform domain.Platform, keywords []string, quantity int, progress ProgressFunc) ([]domain.Candidate, error) {
	if progress != nil {
		progress(fmt.Sprintf("requesting %d %s candidates from discovery service", quantity, platform))
	}

	var result discoverResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(&discoverRequest{
			Platform: string(platform),
			Keywords: keywords,
			Quantity: quantity,
		}).
		SetResult(&result).
		Post(r.baseURL + "/discover")
	if err != nil {
		return nil, fmt.Errorf("discovery request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("discovery service returned %s: %s", resp.Status(), resp.String())
	}
	if result.Error != "" {
		return nil, fmt.Errorf("discovery service error: %s", result.Error)
	}

	// The service may over-deliver; enforce the cap here.
	candidates := result.Candidates
	if len(candidates) > quantity {
		candidates = candidates[:quantity]
	}
	for i := range candidates {
		if candidates[i].Platform == "" {
			candidates[i].Platform = platform
		}
	}

	if progress != nil {
		progress(fmt.Sprintf("discovery service returned %d candidates on %s", len(candidates), platform))
	}
	return candidates, nil
}
