package pipeline

import (
	"context"
	"errors"

	"videosummary/internal/limit"
)

var (
	// ErrMissingPrerequisite indicates ffmpeg or the whisper model/binary is
	// unavailable.
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrInputNotFound indicates the input video path does not exist.
	ErrInputNotFound = errors.New("input video not found")

	// ErrTranscodeFailed indicates the ffmpeg audio extraction exited
	// non-zero.
	ErrTranscodeFailed = errors.New("audio extraction failed")
)

// Pipeline runs the whole video-to-summary flow for one input file.
type Pipeline interface {
	Run(ctx context.Context, videoPath, outPath string, c limit.Constraint) error
}
