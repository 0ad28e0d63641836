package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		want        []string
		dontWant    []string
	}{
		{"debug passes everything", "debug", []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"}, nil},
		{"info drops debug", "info", []string{"[INFO]", "[WARN]", "[ERROR]"}, []string{"[DEBUG]"}},
		{"warn drops info", "warn", []string{"[WARN]", "[ERROR]"}, []string{"[DEBUG]", "[INFO]"}},
		{"error only errors", "error", []string{"[ERROR]"}, []string{"[DEBUG]", "[INFO]", "[WARN]"}},
		{"unknown level defaults to info", "bogus", []string{"[INFO]"}, []string{"[DEBUG]"}},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.configLevel, &buf)

			log.Debug(ctx, "d")
			log.Info(ctx, "i")
			log.Warn(ctx, "w")
			log.Error(ctx, "e")

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.dontWant {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info(context.Background(), "processed %s in %d ms", "clip.mp4", 42)

	if !strings.Contains(buf.String(), "processed clip.mp4 in 42 ms") {
		t.Errorf("formatted message not found in output: %s", buf.String())
	}
}
