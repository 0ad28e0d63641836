package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"videosummary/internal/config"
	"videosummary/internal/logger"
	"videosummary/pkg/executor"
)

type implTranscriber struct {
	executor executor.Executor
	logger   logger.Logger
	binary   string
	model    string
	language string
	threads  int
}

// New creates a Transcriber backed by the whisper.cpp CLI.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		executor: exec,
		logger:   log,
		binary:   cfg.Whisper.BinaryPath,
		model:    ModelPath(cfg.Whisper.ModelDir, cfg.Whisper.Model),
		language: cfg.Whisper.Language,
		threads:  cfg.Whisper.Threads,
	}
}

// ModelPath resolves a model size name (tiny, base, small, medium, large) to
// the ggml model file under dir. Values that already look like a file path
// are returned as-is.
func ModelPath(dir, model string) string {
	if strings.ContainsRune(model, filepath.Separator) || strings.HasSuffix(model, ".bin") {
		return model
	}
	return filepath.Join(dir, "ggml-"+model+".bin")
}

// Transcribe runs whisper.cpp on a 16kHz mono WAV and returns the transcript
// text captured from stdout.
//
// -m: model file
// -f: input audio
// -nt: no timestamps, plain text on stdout
// -l: force language (omitted for auto-detection)
// -t: number of threads
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := []string{
		"-m", t.model,
		"-f", audioPath,
		"-nt",
		"-t", strconv.Itoa(t.threads),
	}
	if t.language != "" && t.language != "auto" {
		args = append(args, "-l", t.language)
	}

	t.logger.Info(ctx, "Transcribing %s (model %s, language %s)", audioPath, t.model, t.language)

	out, err := t.executor.Execute(ctx, t.binary, args...)
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	transcript := strings.TrimSpace(out)
	t.logger.Info(ctx, "Transcription completed (%d chars)", len([]rune(transcript)))
	return transcript, nil
}
