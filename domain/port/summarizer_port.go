// domain/port/summarizer_port.go
package port

import "context"

// Summarizer is the upstream large-language-model API. Errors come back as
// free-form messages; callers classify them by substring, there is no
// structured error contract from the provider.
type Summarizer interface {
	// Complete sends a prompt and returns the model's text output, bounded
	// by maxTokens.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
