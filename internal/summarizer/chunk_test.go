package summarizer

import (
	"strings"
	"testing"
)

func TestSplitChunksShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
	}{
		{"empty", "", 8000},
		{"under limit", "hello world", 8000},
		{"exactly at limit", strings.Repeat("a", 100), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitChunks(tt.text, tt.max)
			if len(chunks) != 1 {
				t.Fatalf("got %d chunks, want 1", len(chunks))
			}
			if chunks[0] != tt.text {
				t.Errorf("chunk = %q, want %q", chunks[0], tt.text)
			}
		})
	}
}

func TestSplitChunksPartition(t *testing.T) {
	tests := []struct {
		name       string
		textLen    int
		max        int
		wantChunks int
	}{
		{"two full chunks", 200, 100, 2},
		{"ragged tail", 250, 100, 3},
		{"one over", 101, 100, 2},
		{"many chunks", 8000*3 + 1, 8000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("x", tt.textLen)
			chunks := SplitChunks(text, tt.max)

			if len(chunks) != tt.wantChunks {
				t.Fatalf("got %d chunks, want %d", len(chunks), tt.wantChunks)
			}
			if joined := strings.Join(chunks, ""); joined != text {
				t.Error("concatenated chunks do not reproduce the input")
			}
			for i, c := range chunks[:len(chunks)-1] {
				if len([]rune(c)) != tt.max {
					t.Errorf("chunk %d has length %d, want %d", i, len([]rune(c)), tt.max)
				}
			}
			if last := len([]rune(chunks[len(chunks)-1])); last > tt.max {
				t.Errorf("final chunk has length %d, exceeds %d", last, tt.max)
			}
		})
	}
}

func TestSplitChunksMultibyte(t *testing.T) {
	// 100 three-byte runes; a byte-based split at 90 would sever a rune
	text := strings.Repeat("語", 100)
	chunks := SplitChunks(text, 90)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if strings.Join(chunks, "") != text {
		t.Error("concatenated chunks do not reproduce the input")
	}
	if len([]rune(chunks[0])) != 90 {
		t.Errorf("first chunk has %d runes, want 90", len([]rune(chunks[0])))
	}
}
