package summarizer

import (
	"context"
	"errors"

	"videosummary/internal/limit"
)

var (
	// ErrMissingCredential indicates the provider API key is absent from the
	// environment.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrSummarizationFailed wraps any error returned by the completion
	// provider. There is no retry path; the failure is fatal to the run.
	ErrSummarizationFailed = errors.New("summarization failed")
)

// Summarizer turns a transcript into a summary matching the given constraint.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, c limit.Constraint) (string, error)
}

// completer is the seam to the completion provider: one request built from a
// system instruction and a user message, returning the response text.
type completer interface {
	complete(ctx context.Context, system, user string) (string, error)
}
