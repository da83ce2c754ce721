// Package llm defines a minimal text-completion port so the assistant can be
// exercised in tests with deterministic stubs, without network access.
package llm

import "context"

// Client is a single-method interface over a generative-text service.
// The prompt goes in, the model's text comes back; callers own the prompts.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
