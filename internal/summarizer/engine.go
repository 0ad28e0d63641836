package summarizer

import (
	"context"
	"fmt"
	"strings"

	"videosummary/internal/limit"
	"videosummary/internal/logger"
)

type implSummarizer struct {
	completer completer
	logger    logger.Logger
	chunkSize int
}

// Summarize splits the transcript into chunks, summarizes each with a single
// completion request, and when more than one chunk exists merges the partial
// summaries with one refinement request. Character-limited summaries are
// trimmed to the ceiling afterwards.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, c limit.Constraint) (string, error) {
	instruction := instructionFor(c)
	chunks := SplitChunks(transcript, s.chunkSize)

	if len(chunks) == 1 {
		summary, err := s.completer.complete(ctx, instruction, chunkPrompt(c, chunks[0]))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
		}
		return s.finish(summary, c), nil
	}

	s.logger.Info(ctx, "Transcript split into %d chunks", len(chunks))

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "Summarizing chunk %d/%d (%d chars)", i+1, len(chunks), len([]rune(chunk)))
		partial, err := s.completer.complete(ctx, instruction, chunkPrompt(c, chunk))
		if err != nil {
			return "", fmt.Errorf("%w: chunk %d/%d: %v", ErrSummarizationFailed, i+1, len(chunks), err)
		}
		partials = append(partials, partial)
	}

	combined := strings.Join(partials, "\n\n")
	final, err := s.completer.complete(ctx, instruction, refinePrompt(c, combined))
	if err != nil {
		return "", fmt.Errorf("%w: refine: %v", ErrSummarizationFailed, err)
	}
	return s.finish(final, c), nil
}

func (s *implSummarizer) finish(summary string, c limit.Constraint) string {
	summary = strings.TrimSpace(summary)
	if c.Characters > 0 {
		summary = TrimToLimit(summary, c.Characters)
	}
	return summary
}
