package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/errors"
	"github.com/tagmend/tagmend/internal/logger"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// Ensure AnthropicClient implements Client
var _ Client = (*AnthropicClient)(nil)

// AnthropicClient implements Client for the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	apiURL     string // Override for testing; defaults to anthropicAPIURL
}

// anthropicRequest represents a request to the Anthropic Messages API
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage is one turn of the conversation
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse represents a response from the Anthropic Messages API
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// NewAnthropicClient creates a client for the given key and model.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: newHTTPClient(),
		apiURL:     anthropicAPIURL,
	}
}

// Name returns the provider name
func (c *AnthropicClient) Name() string {
	return "Anthropic"
}

// RequestCorrections sends both buffers for review and decodes the
// correction set from the JSON response.
func (c *AnthropicClient) RequestCorrections(ctx context.Context, html, css string) (*correction.Set, error) {
	text, err := c.generate(ctx, "corrections", correctionSystemPrompt, correctionUserPrompt(html, css))
	if err != nil {
		return nil, err
	}
	return parseCorrectionSet(c.Name(), text)
}

// Ask sends both buffers plus the question and returns the free-text answer.
func (c *AnthropicClient) Ask(ctx context.Context, html, css, question string) (string, error) {
	return c.generate(ctx, "ask", askSystemPrompt, askUserPrompt(html, css, question))
}

// generate performs one Messages call and returns the concatenated text
// blocks.
func (c *AnthropicClient) generate(ctx context.Context, kind, system, user string) (string, error) {
	requestID := uuid.NewString()
	log := logger.WithRequest(requestID)
	log.Info("anthropic request", "kind", kind, "model", c.model, "promptBytes", len(user))

	req := anthropicRequest{
		Model:     c.model,
		MaxTokens: maxOutputTokens,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", errors.CollaboratorFailed("anthropic", fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.CollaboratorFailed("anthropic", fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("anthropic request failed", "err", err)
		return "", errors.CollaboratorFailed("anthropic", fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.CollaboratorFailed("anthropic", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("anthropic request failed", "status", resp.StatusCode)
		return "", errors.CollaboratorFailed("anthropic", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", errors.UnexpectedResponse(c.Name(), "failed to parse response: "+err.Error())
	}

	var text string
	for _, content := range apiResp.Content {
		if content.Type == "text" {
			text += content.Text
		}
	}
	if text == "" {
		return "", errors.UnexpectedResponse(c.Name(),
			fmt.Sprintf("model returned no text content (stop_reason: %s)", apiResp.StopReason))
	}

	log.Info("anthropic response", "kind", kind, "responseBytes", len(text))
	return text, nil
}
