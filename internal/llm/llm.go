// Package llm handles text-generation provider communication. It exposes a
// single Complete-style interface over the OpenAI, Anthropic, and Google
// SDKs; prompt construction and response interpretation belong to callers.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider is the interface for text-generation backends. Complete is a
// blocking request/response call; cancellation and deadlines come from ctx.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// NewProvider is the factory for creating providers. It is a package-level
// variable so tests can replace it with a mock without modifying the call
// site. Tests must restore the original value; use t.Cleanup to do so safely.
var NewProvider func(providerName, model string) (Provider, error) = defaultNewProvider

// defaultNewProvider dispatches to the appropriate provider implementation.
func defaultNewProvider(providerName, model string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case "openai", "":
		return newOpenAIProvider(model)
	case "anthropic":
		return newAnthropicProvider(model)
	case "google":
		return newGoogleProvider(model)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", providerName)
	}
}
