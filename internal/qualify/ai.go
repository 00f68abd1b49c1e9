package qualify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/marvinh/leadscout/internal/domain"
)

const qualifySystemPrompt = `You qualify sales leads. Given a social profile and an offering description,
respond with a single JSON object and nothing else:
{"is_qualified": bool, "relevance_score": number between 0 and 1,
"business_type": short label like "agency"/"creator"/"local business"/"personal",
"summary": one sentence on fit}.
Mark is_qualified false for fan pages, parody accounts, and profiles unrelated
to the offering.`

// AIQualifier scores candidates with an OpenAI-compatible chat completion API.
type AIQualifier struct {
	client   *resty.Client
	model    string
	endpoint string
	enabled  bool
}

// AIConfig holds configuration for the AI qualifier.
type AIConfig struct {
	Enabled bool
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewAIQualifier creates a new AI qualifier client.
// Parameters:
//   - cfg: qualifier configuration including model and API key.
// Returns:
//   - *AIQualifier: initialized client wrapper.
func NewAIQualifier(cfg *AIConfig) *AIQualifier {
	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	client.SetTimeout(timeout)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &AIQualifier{
		client:   client,
		model:    cfg.Model,
		endpoint: baseURL + "/chat/completions",
		enabled:  cfg.Enabled && cfg.APIKey != "",
	}
}

// GetModel returns the model name being used.
func (q *AIQualifier) GetModel() string {
	return q.model
}

// OpenAI-compatible Chat Completion API request/response structures
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Qualify scores a candidate against the offering via the chat API.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - candidate: profile to score.
//   - offering: what the user is selling.
// Returns:
//   - *Qualification: parsed scoring outcome.
//   - error: non-nil if the API call or response parsing fails; callers fall
//     back to the local heuristic on any error.
func (q *AIQualifier) Qualify(ctx context.Context, candidate *domain.Candidate, offering string) (*Qualification, error) {
	if !q.enabled {
		return nil, fmt.Errorf("ai qualifier disabled")
	}

	req := chatRequest{
		Model: q.model,
		Messages: []chatMessage{
			{Role: "system", Content: qualifySystemPrompt},
			{Role: "user", Content: buildUserPrompt(candidate, offering)},
		},
		MaxTokens:   300,
		Temperature: 0,
	}

	var result chatResponse
	resp, err := q.client.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&result).
		Post(q.endpoint)
	if err != nil {
		return nil, fmt.Errorf("qualifier request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("qualifier API returned %s: %s", resp.Status(), resp.String())
	}
	if result.Error != nil {
		return nil, fmt.Errorf("qualifier API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("qualifier API returned no choices")
	}

	return parseQualification(result.Choices[0].Message.Content)
}

func buildUserPrompt(c *domain.Candidate, offering string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Offering: %s\n\nProfile:\n", offering)
	fmt.Fprintf(&b, "- platform: %s\n- username: %s\n- followers: %d\n", c.Platform, c.Username, c.FollowerCount)
	if c.Bio != "" {
		fmt.Fprintf(&b, "- bio: %s\n", c.Bio)
	}
	if c.FullName != "" {
		fmt.Fprintf(&b, "- name: %s\n", c.FullName)
	}
	if c.Title != "" {
		fmt.Fprintf(&b, "- title: %s\n", c.Title)
	}
	if c.Company != "" {
		fmt.Fprintf(&b, "- company: %s\n", c.Company)
	}
	return b.String()
}

// parseQualification extracts the JSON object from the model output, which
// may be wrapped in markdown fences or surrounding prose.
func parseQualification(content string) (*Qualification, error) {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}

	var q Qualification
	if err := json.Unmarshal([]byte(content), &q); err != nil {
		return nil, fmt.Errorf("failed to parse qualifier response: %w", err)
	}
	if q.RelevanceScore < 0 {
		q.RelevanceScore = 0
	}
	if q.RelevanceScore > 1 {
		q.RelevanceScore = 1
	}
	return &q, nil
}
