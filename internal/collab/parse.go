package collab

import (
	"encoding/json"
	"strings"

	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/errors"
)

// correctionPayload decodes the collaborator's JSON object. Pointer slices
// distinguish a missing array from a present-but-empty one.
type correctionPayload struct {
	HTML *[]correction.Correction `json:"html"`
	CSS  *[]correction.Correction `json:"css"`
}

// parseCorrectionSet turns raw collaborator output into a correction set.
// The text is fence-stripped first since models wrap JSON in markdown fences
// even when told not to. A response missing either array, or not decodable
// as JSON, violates the output contract.
func parseCorrectionSet(provider, raw string) (*correction.Set, error) {
	cleaned := stripCodeFence(raw)

	var payload correctionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, errors.UnexpectedResponse(provider, "not valid JSON: "+err.Error())
	}
	if payload.HTML == nil {
		return nil, errors.UnexpectedResponse(provider, `missing "html" array`)
	}
	if payload.CSS == nil {
		return nil, errors.UnexpectedResponse(provider, `missing "css" array`)
	}

	return &correction.Set{HTML: *payload.HTML, CSS: *payload.CSS}, nil
}

// stripCodeFence removes a wrapping markdown code fence, language tag
// included, and returns the interior text. Text without a leading fence
// passes through untouched.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s
	}
	s = s[i+1:]

	if j := strings.LastIndex(s, "```"); j >= 0 {
		s = s[:j]
	}
	return strings.TrimSpace(s)
}
