// Package mlruntime is the HTTP client for the model runtime sidecar,
// the process that holds the BERT tokenizer and model and turns text
// into raw class scores.
package mlruntime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxTokens is the tokenizer truncation cap enforced by the runtime.
const MaxTokens = 512

// PredictRequest asks the runtime to score a single text.
type PredictRequest struct {
	Text      string `json:"text"`
	MaxTokens int    `json:"max_tokens"`
}

// PredictResponse carries the raw 2-class logits. Index 0 is the
// legitimate class, index 1 is the phishing class; the ordering is a
// fixed property of the pre-trained model.
type PredictResponse struct {
	Logits []float64 `json:"logits"`
}

// HealthResponse reports whether the runtime has the model loaded and
// which device it runs on.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Model       string `json:"model"`
	Device      string `json:"device"`
}

// Client talks to the model runtime over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a runtime client with a bounded per-call timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict sends text to the runtime and returns the raw class logits.
// The runtime truncates input to MaxTokens tokens before the forward
// pass. Failures are returned as-is; the caller decides how to surface
// them. There are no retries.
func (c *Client) Predict(ctx context.Context, text string) (*PredictResponse, error) {
	body, err := json.Marshal(PredictRequest{Text: text, MaxTokens: MaxTokens})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("model runtime returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("model runtime returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Logits) != 2 {
		return nil, fmt.Errorf("model runtime returned %d logits, want 2", len(result.Logits))
	}

	return &result, nil
}

// Health checks the runtime and reports model/device state.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model runtime returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
