package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/front10k/tarrot7/internal/domain"
)

// temperature is fixed; the reading persona wants some variety but not
// free association.
const temperature = 0.7

// Client implements ports.ReportModel via the OpenAI Responses API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

// generateRequest / generateResponse mirror the Responses API shapes.
type generateRequest struct {
	Model       string  `json:"model"`
	Input       string  `json:"input"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	OutputText string `json:"output_text"`
}

// Generate sends the reading prompt and returns the model's raw output
// text, trimmed. Exactly one attempt: no retry, no model fallback — a
// failed call is the caller's cue to degrade.
func (c *Client) Generate(ctx context.Context, payload domain.ReadingPayload) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrCredentialMissing
	}

	body, err := json.Marshal(generateRequest{
		Model:       c.model,
		Input:       buildPrompt(payload),
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/responses"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamStatus, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrUpstreamStatus, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(ctx, "generation request failed", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", domain.ErrUpstreamStatus, resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamStatus, err)
	}

	return strings.TrimSpace(out.OutputText), nil
}
