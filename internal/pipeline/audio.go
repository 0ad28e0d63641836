package pipeline

import (
	"context"
	"fmt"
	"os"
)

// extractAudio extracts the audio track of a video into a temporary 16kHz
// mono PCM WAV, the input format whisper expects.
//
// -i: input video
// -vn: no video
// -ar 16000: 16kHz sample rate
// -ac 1: mono
// -c:a pcm_s16le: uncompressed 16-bit PCM
// -y: overwrite the temp file
func (p *implPipeline) extractAudio(ctx context.Context, videoPath string) (string, error) {
	tmp, err := os.CreateTemp("", "videosummary-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp wav: %w", err)
	}
	audioPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp wav: %w", err)
	}

	p.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		p.cleanupTempFile(ctx, audioPath)
		return "", fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
	}

	return audioPath, nil
}

// cleanupTempFile removes a temporary file, logs a warning if it fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
