// Package ai turns a natural-language edit request into plan steps.
package ai

import (
	"context"
	"fmt"

	"github.com/v0xg/devhub-listing/internal/pages"
	"github.com/v0xg/devhub-listing/internal/plan"
)

// Provider defines the interface for AI step generation
type Provider interface {
	GenerateSteps(ctx context.Context, listing pages.Snapshot, request string) ([]plan.Step, error)
}

// NewProvider creates a new AI provider based on the provider name
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}
