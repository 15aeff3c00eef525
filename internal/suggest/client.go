package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/TalkWave/internal/metrics"
)

// Client calls a text-generation HTTP endpoint: one POST with a prompt, one
// free-text completion back.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	maxTokens  int
}

func NewClient(endpoint, model, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		model:      model,
		apiKey:     apiKey,
		maxTokens:  256,
	}
}

type completionRequest struct {
	Model     string `json:"model,omitempty"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Text    string `json:"text"`
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// Complete sends the prompt and returns the raw completion text. apiKey
// overrides the configured key when non-empty (the user may store their own
// key locally).
func (c *Client) Complete(ctx context.Context, prompt, apiKey string) (string, error) {
	metrics.SuggestionRequests.Inc()

	body, err := json.Marshal(completionRequest{
		Model:     c.model,
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey == "" {
		apiKey = c.apiKey
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.SuggestionErrors.Inc()
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.SuggestionErrors.Inc()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, payload)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		metrics.SuggestionErrors.Inc()
		return "", fmt.Errorf("decode completion: %w", err)
	}

	if completion.Text != "" {
		return completion.Text, nil
	}
	if len(completion.Choices) > 0 {
		return completion.Choices[0].Text, nil
	}
	return "", fmt.Errorf("completion endpoint returned no text")
}
