package llm

import (
	"context"
	"errors"
)

// ErrProvider marks failures of the inference call itself: transport
// errors, non-success status, or an envelope with no candidate content.
// Distinct from malformed inner JSON, which the parser absorbs.
var ErrProvider = errors.New("inference provider error")

type Client interface {
	AnalyzeFoodImage(ctx context.Context, imageBase64 string, userAllergies []string) (string, error)
}
