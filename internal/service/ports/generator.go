package ports

import "context"

// TextGenerator produces one free-text completion per prompt. A non-empty
// apiKey overrides the configured one.
type TextGenerator interface {
	Complete(ctx context.Context, prompt, apiKey string) (string, error)
}
