package ai

import (
	"context"
)

// Generator defines the contract for free-text generation from prompts.
// The generator holds no conversation state: every call must embed all
// context in the prompt. Responses may carry structured payloads wrapped
// in prose; callers extract those with the helpers in extract.go.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
