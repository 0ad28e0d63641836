package watcher

import "context"

// Watcher monitors a directory for newly dropped video files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is invoked for each detected video file
type EventHandler func(ctx context.Context, filePath string) error
