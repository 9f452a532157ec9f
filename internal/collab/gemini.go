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

// geminiAPIBase is the Gemini API root (model and method are appended).
const geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

// Ensure GeminiClient implements Client
var _ Client = (*GeminiClient)(nil)

// GeminiClient implements Client for the Google Gemini API.
type GeminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	apiBase    string // Override for testing; defaults to geminiAPIBase
}

// geminiRequest represents a request to the Gemini generateContent API
type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	SystemInstruct   *geminiSystemInstruct   `json:"systemInstruction,omitempty"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

// geminiContent represents a content block in Gemini format
type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

// geminiPart represents a part of content
type geminiPart struct {
	Text string `json:"text"`
}

// geminiSystemInstruct represents the system instruction
type geminiSystemInstruct struct {
	Parts []geminiPart `json:"parts"`
}

// geminiGenerationConfig contains generation parameters
type geminiGenerationConfig struct {
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

// geminiResponse represents a response from the Gemini API
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
			Role string `json:"role"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// NewGeminiClient creates a client for the given key and model.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: newHTTPClient(),
		apiBase:    geminiAPIBase,
	}
}

// Name returns the provider name
func (c *GeminiClient) Name() string {
	return "Google Gemini"
}

// RequestCorrections sends both buffers for review and decodes the
// correction set from the JSON response.
func (c *GeminiClient) RequestCorrections(ctx context.Context, html, css string) (*correction.Set, error) {
	text, err := c.generate(ctx, "corrections", correctionSystemPrompt, correctionUserPrompt(html, css), true)
	if err != nil {
		return nil, err
	}
	return parseCorrectionSet(c.Name(), text)
}

// Ask sends both buffers plus the question and returns the free-text answer.
func (c *GeminiClient) Ask(ctx context.Context, html, css, question string) (string, error) {
	return c.generate(ctx, "ask", askSystemPrompt, askUserPrompt(html, css, question), false)
}

// generate performs one generateContent call and returns the concatenated
// candidate text. jsonOutput requests a JSON response body, which Gemini
// supports natively via responseMimeType.
func (c *GeminiClient) generate(ctx context.Context, kind, system, user string, jsonOutput bool) (string, error) {
	requestID := uuid.NewString()
	log := logger.WithRequest(requestID)
	log.Info("gemini request", "kind", kind, "model", c.model, "promptBytes", len(user))

	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
		SystemInstruct: &geminiSystemInstruct{
			Parts: []geminiPart{{Text: system}},
		},
		GenerationConfig: &geminiGenerationConfig{
			MaxOutputTokens: maxOutputTokens,
		},
	}
	if jsonOutput {
		req.GenerationConfig.ResponseMIMEType = "application/json"
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", errors.CollaboratorFailed("gemini", fmt.Errorf("failed to marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiBase, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.CollaboratorFailed("gemini", fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("gemini request failed", "err", err)
		return "", errors.CollaboratorFailed("gemini", fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.CollaboratorFailed("gemini", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("gemini request failed", "status", resp.StatusCode)
		return "", errors.CollaboratorFailed("gemini", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", errors.UnexpectedResponse(c.Name(), "failed to parse response: "+err.Error())
	}

	if len(apiResp.Candidates) == 0 {
		return "", errors.UnexpectedResponse(c.Name(), "model returned no candidates")
	}

	var text string
	for _, part := range apiResp.Candidates[0].Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", errors.UnexpectedResponse(c.Name(),
			fmt.Sprintf("model returned empty content (finish_reason: %s)", apiResp.Candidates[0].FinishReason))
	}

	log.Info("gemini response", "kind", kind, "responseBytes", len(text))
	return text, nil
}
