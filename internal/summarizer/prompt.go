package summarizer

import (
	"fmt"

	"videosummary/internal/limit"
)

// instructionFor builds the system instruction shared by the per-chunk and
// refinement passes, so the two never drift apart.
func instructionFor(c limit.Constraint) string {
	if c.Paragraphs > 0 {
		return fmt.Sprintf(
			"You are an expert summarizer. Return exactly %d paragraphs, separated by a single blank line, "+
				"no headings, no title, no bullet points.",
			c.Paragraphs,
		)
	}
	return fmt.Sprintf(
		"You are an expert summarizer. Produce a concise summary no longer than %d characters. "+
			"Avoid pre/postamble, no headings or bullet points. If truncation would harm clarity, prioritize clarity "+
			"while staying under the limit.",
		c.Characters,
	)
}

// chunkPrompt builds the user message for one transcript chunk. The note that
// the output will be refined later keeps the model from over-polishing
// provisional summaries.
func chunkPrompt(c limit.Constraint, chunk string) string {
	if c.Paragraphs > 0 {
		return fmt.Sprintf("Summarize this transcript chunk into at most %d paragraphs (will refine later):\n\n%s", c.Paragraphs, chunk)
	}
	return fmt.Sprintf("Summarize this transcript chunk within %d characters (will refine later):\n\n%s", c.Characters, chunk)
}

// refinePrompt builds the user message that merges per-chunk summaries into
// the final one.
func refinePrompt(c limit.Constraint, combined string) string {
	if c.Paragraphs > 0 {
		return fmt.Sprintf("Combine and refine into exactly %d paragraphs:\n\n%s", c.Paragraphs, combined)
	}
	return fmt.Sprintf("Combine and refine into a summary within %d characters (shorter is fine if clear):\n\n%s", c.Characters, combined)
}
