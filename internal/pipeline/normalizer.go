package pipeline

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"promptimage/internal/domain"
)

// Normalizer trims raw prompts and rejects the ones that carry no content.
type Normalizer struct {
	invalid *InvalidInputPatternSet
}

func NewNormalizer(invalid *InvalidInputPatternSet) *Normalizer {
	return &Normalizer{invalid: invalid}
}

// Normalize returns the trimmed NFC form of raw or a *domain.RejectionError
// with ReasonEmptyInput or ReasonDegenerateInput.
func (n *Normalizer) Normalize(raw string) (domain.NormalizedPrompt, error) {
	text := norm.NFC.String(strings.TrimSpace(raw))
	if text == "" {
		return domain.NormalizedPrompt{}, &domain.RejectionError{Reason: domain.ReasonEmptyInput}
	}
	if n.invalid.Matches(text) {
		return domain.NormalizedPrompt{}, &domain.RejectionError{Reason: domain.ReasonDegenerateInput}
	}
	return domain.NormalizedPrompt{Text: text}, nil
}
