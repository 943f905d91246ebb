package generation

import (
	"context"
	"fmt"
)

// Generator defines the interface for turning a prompt into generated text.
// This interface serves as a boundary between the application core and
// external text-generation services.
//
// Implementations make exactly one attempt per call and do not retry.
// Every returned error wraps ErrUnavailable.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UnavailableGenerator always reports ErrNotConfigured. It stands in for a
// real generator when no credential is configured.
type UnavailableGenerator struct {
	reason string
}

// NewUnavailableGenerator returns a Generator that fails every call with reason.
func NewUnavailableGenerator(reason string) *UnavailableGenerator {
	return &UnavailableGenerator{reason: reason}
}

// Generate implements Generator.
func (g *UnavailableGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrNotConfigured, g.reason)
}
