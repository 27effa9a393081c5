// Package llm provides interfaces and implementations for Large Language
// Model clients used by the reranking stage.
package llm

import (
	"context"
)

// GenerateOptions configures an LLM generation request. Reranking always
// requests deterministic decoding (temperature 0, thinking disabled).
type GenerateOptions struct {
	// Model overrides the client's default model.
	Model string

	// SystemPrompt sets system-level instructions for the model.
	SystemPrompt string

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float32

	// TopP and TopK narrow nucleus / top-k sampling. Zero leaves the
	// provider default.
	TopP float32
	TopK int

	// MaxTokens limits the response length. Zero means no limit.
	MaxTokens int

	// DisableThinking turns off extended reasoning on models that support
	// it; reranking wants a short, parseable answer, not a deliberation.
	DisableThinking bool
}

// LLM is the interface for LLM clients.
type LLM interface {
	// Generate sends a prompt and blocks until the full response arrives
	// or an error occurs.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
