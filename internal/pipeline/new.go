package pipeline

import (
	"io"
	"os"

	"videosummary/internal/config"
	"videosummary/internal/logger"
	"videosummary/internal/summarizer"
	"videosummary/internal/transcriber"
	"videosummary/pkg/executor"
)

type implPipeline struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	stdout      io.Writer
}

// New creates a Pipeline instance
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
		stdout:      os.Stdout,
	}
}
