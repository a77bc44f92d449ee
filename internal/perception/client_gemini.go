// Package perception talks to the Gemini completion endpoint.
// The client makes exactly one attempt per call: no retries, no backoff.
// The pipeline above it treats any failure as a signal to fall back, so
// retrying here would only delay the fallback response the user is
// waiting on.
package perception

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mindease/internal/logging"
	"mindease/internal/types"
)

var (
	// ErrNoAPIKey means the client was constructed without a key.
	ErrNoAPIKey = errors.New("API key not configured")
	// ErrNoCandidates means the endpoint answered 200 but the payload
	// carried no usable completion text.
	ErrNoCandidates = errors.New("no completion returned")
)

// GeminiClient implements types.CompletionClient against the Gemini
// generateContent REST endpoint.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ types.CompletionClient = (*GeminiClient)(nil)

// NewGeminiClient creates a client for the given endpoint.
// Cancellation and deadlines are the caller's responsibility via ctx;
// the client itself imposes no timeout.
func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &GeminiClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{},
	}
}

// Complete sends one generateContent request and returns the trimmed
// text of the first candidate.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, params types.GenerationParams) (string, error) {
	if c.apiKey == "" {
		logging.APIError("[Gemini] Complete: API key not configured")
		return "", ErrNoAPIKey
	}

	timer := logging.StartTimer(logging.CategoryAPI, "generateContent")
	defer timer.Stop()
	logging.APIDebug("[Gemini] Complete: model=%s prompt_len=%d max_tokens=%d", c.model, len(prompt), params.MaxOutputTokens)

	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: GeminiGenerationConfig{
			Temperature:     params.Temperature,
			TopK:            params.TopK,
			TopP:            params.TopP,
			MaxOutputTokens: params.MaxOutputTokens,
		},
		SafetySettings: defaultSafetySettings,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.APIError("[Gemini] Complete: transport error: %v", err)
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.APIError("[Gemini] Complete: status %d: %s", resp.StatusCode, truncateForLog(body))
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		logging.APIError("[Gemini] Complete: response had no candidates")
		return "", ErrNoCandidates
	}

	var result strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		result.WriteString(part.Text)
	}

	text := strings.TrimSpace(result.String())
	if text == "" {
		return "", ErrNoCandidates
	}

	logging.APIDebug("[Gemini] Complete: ok, response_len=%d", len(text))
	return text, nil
}

func truncateForLog(body []byte) string {
	const max = 200
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
