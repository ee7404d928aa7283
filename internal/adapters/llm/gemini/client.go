package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cobra893021/kajicon-go/internal/domain"
)

// Client implements ports.Generator via the Gemini generateContent REST API.
// The API key travels in a header, never in the URL, so it cannot surface in
// request logs or wrapped errors.
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
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

// Wire shapes mirror the generativelanguage.googleapis.com API.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends promptText to the model and returns the raw text of the
// first candidate. JSON response mode is requested, but callers must still
// validate the payload themselves. No automatic retry.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: promptText}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: http call: %v", domain.ErrUpstreamLLM, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrUpstreamLLM, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d: %s", domain.ErrUpstreamLLM, resp.StatusCode, truncate(respBody, 512))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamLLM, err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", domain.ErrUpstreamLLM)
	}

	text := strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate text", domain.ErrUpstreamLLM)
	}

	c.logger.DebugContext(ctx, "gemini response received", "model", c.model, "bytes", len(text))
	return text, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
