package summarizer

import (
	"fmt"
	"os"

	"videosummary/internal/config"
	"videosummary/internal/logger"
)

// New creates a Summarizer backed by the configured completion provider. The
// provider credential must be present in the environment.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	var comp completer

	switch cfg.Summarizer.Provider {
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY not set in environment. Set it and re-run.\n"+
				"Example (bash): export GEMINI_API_KEY=your_key_here", ErrMissingCredential)
		}
		comp = newGeminiCompleter(key, cfg.Summarizer.Model)
	default:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY not set in environment. Set it and re-run.\n"+
				"Example (bash): export OPENAI_API_KEY=your_key_here\n"+
				"Example (PowerShell): $env:OPENAI_API_KEY = \"your_key_here\"", ErrMissingCredential)
		}
		comp = newOpenAICompleter(key, cfg.Summarizer.Model)
	}

	return &implSummarizer{
		completer: comp,
		logger:    log,
		chunkSize: cfg.Summarizer.ChunkSize,
	}, nil
}
