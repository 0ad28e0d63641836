package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"videosummary/internal/limit"
	"videosummary/internal/transcriber"
)

// Summaries at or under this many characters are also echoed to the terminal.
const displayThreshold = 1000

// Run executes the full pipeline for one video: prerequisite checks, audio
// extraction, transcription, summarization, and writing the summary to
// outPath (or the default path next to the video when outPath is empty).
// The extracted waveform is removed on every exit path.
func (p *implPipeline) Run(ctx context.Context, videoPath, outPath string, c limit.Constraint) error {
	startTime := time.Now()

	if err := p.checkPrerequisites(); err != nil {
		return err
	}

	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, videoPath)
	}

	audioPath, err := p.extractAudio(ctx, videoPath)
	if err != nil {
		return err
	}
	defer p.cleanupTempFile(ctx, audioPath)

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	summary, err := p.summarizer.Summarize(ctx, transcript, c)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	if outPath == "" {
		outPath = DefaultOutputPath(videoPath)
	}
	if err := p.writeSummary(videoPath, outPath, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	p.logger.Info(ctx, "Summary written to %s (%s)", outPath, time.Since(startTime).Round(time.Millisecond))

	if len([]rune(summary)) <= displayThreshold {
		fmt.Fprintln(p.stdout, summary)
	}

	return nil
}

// checkPrerequisites verifies the external tools the pipeline shells out to
// before any work starts.
func (p *implPipeline) checkPrerequisites() error {
	if !p.executor.Available(p.cfg.FFmpeg.BinaryPath) {
		return fmt.Errorf("%w: %s not found on PATH. Install ffmpeg and ensure it is available:\n"+
			"  macOS: brew install ffmpeg\n"+
			"  Windows: winget install Gyan.FFmpeg\n"+
			"  Linux: use your distro's package manager",
			ErrMissingPrerequisite, p.cfg.FFmpeg.BinaryPath)
	}

	if !p.executor.Available(p.cfg.Whisper.BinaryPath) {
		return fmt.Errorf("%w: whisper binary %q not found. Build whisper.cpp and point whisper.binary_path at it",
			ErrMissingPrerequisite, p.cfg.Whisper.BinaryPath)
	}

	modelPath := transcriber.ModelPath(p.cfg.Whisper.ModelDir, p.cfg.Whisper.Model)
	if _, err := os.Stat(modelPath); err != nil {
		return fmt.Errorf("%w: whisper model %q not found at %s. Download it with whisper.cpp's download-ggml-model script",
			ErrMissingPrerequisite, p.cfg.Whisper.Model, modelPath)
	}

	return nil
}
