// Package collab talks to the external AI collaborator that powers
// corrections and chat answers. Both providers speak the same Client
// interface; the workflows never know which one is configured. Requests are
// issued from tea.Cmd goroutines, so everything here is a plain blocking
// call with no state beyond the client's credentials.
package collab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tagmend/tagmend/internal/config"
	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/errors"
)

// maxOutputTokens bounds every collaborator response.
const maxOutputTokens = 8192

// Client is the request/response surface both workflows consume.
type Client interface {
	// RequestCorrections reviews both buffers and returns one record per
	// input line, per file.
	RequestCorrections(ctx context.Context, html, css string) (*correction.Set, error)
	// Ask answers a free-text question about the buffers.
	Ask(ctx context.Context, html, css, question string) (string, error)
	// Name returns the human-readable provider name for logs and the header.
	Name() string
}

// New selects the provider from the config. A missing API key is rejected
// here, before any request can be attempted.
func New(cfg *config.Config) (Client, error) {
	key := cfg.GetAPIKey()
	if key == "" {
		return nil, errors.MissingAPIKey(cfg.GetProvider())
	}

	switch cfg.GetProvider() {
	case config.ProviderGemini:
		return NewGeminiClient(key, cfg.GetModel()), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(key, cfg.GetModel()), nil
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unknown provider %q", cfg.GetProvider()))
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{}
}
