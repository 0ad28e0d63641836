package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"videosummary/internal/limit"
	"videosummary/internal/logger"
)

type fakeCompleter struct {
	responses []string
	calls     []struct{ system, user string }
	err       error
}

func (f *fakeCompleter) complete(ctx context.Context, system, user string) (string, error) {
	f.calls = append(f.calls, struct{ system, user string }{system, user})
	if f.err != nil {
		return "", f.err
	}
	i := len(f.calls) - 1
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return f.responses[len(f.responses)-1], nil
}

func newTestEngine(comp completer, chunkSize int) *implSummarizer {
	return &implSummarizer{
		completer: comp,
		logger:    logger.New("error"),
		chunkSize: chunkSize,
	}
}

func TestSummarizeSingleChunk(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"  a tidy summary  "}}
	eng := newTestEngine(fake, 8000)

	c, _ := limit.ByParagraphs(2)
	got, err := eng.Summarize(context.Background(), "hello world. this is a test.", c)
	if err != nil {
		t.Fatal(err)
	}

	if got != "a tidy summary" {
		t.Errorf("summary = %q", got)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("completer called %d times, want 1 (no refinement for a single chunk)", len(fake.calls))
	}
	if !strings.Contains(fake.calls[0].system, "exactly 2 paragraphs") {
		t.Errorf("system instruction = %q", fake.calls[0].system)
	}
	if !strings.Contains(fake.calls[0].user, "will refine later") {
		t.Errorf("chunk prompt missing provisional note: %q", fake.calls[0].user)
	}
	if !strings.Contains(fake.calls[0].user, "hello world. this is a test.") {
		t.Errorf("chunk prompt missing transcript: %q", fake.calls[0].user)
	}
}

func TestSummarizeMultiChunkRefines(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"partial one", "partial two", "final summary"}}
	eng := newTestEngine(fake, 10)

	c, _ := limit.ByParagraphs(1)
	got, err := eng.Summarize(context.Background(), strings.Repeat("a", 15), c)
	if err != nil {
		t.Fatal(err)
	}

	if got != "final summary" {
		t.Errorf("summary = %q", got)
	}
	// 2 chunks + 1 refinement pass
	if len(fake.calls) != 3 {
		t.Fatalf("completer called %d times, want 3", len(fake.calls))
	}

	refine := fake.calls[2]
	if !strings.Contains(refine.user, "Combine and refine") {
		t.Errorf("refine prompt = %q", refine.user)
	}
	if !strings.Contains(refine.user, "partial one\n\npartial two") {
		t.Errorf("refine prompt does not join partials with a blank line: %q", refine.user)
	}
	// the same system instruction drives both passes
	if refine.system != fake.calls[0].system {
		t.Error("refinement uses a different system instruction than chunk summarization")
	}
}

func TestSummarizeCharacterLimitTrims(t *testing.T) {
	long := strings.Repeat("many words here ", 20)
	fake := &fakeCompleter{responses: []string{long}}
	eng := newTestEngine(fake, 8000)

	c, err := limit.Parse("40")
	if err != nil {
		t.Fatal(err)
	}
	got, err := eng.Summarize(context.Background(), "some transcript", c)
	if err != nil {
		t.Fatal(err)
	}

	if n := len([]rune(got)); n > 40+len(ellipsis) {
		t.Errorf("summary length %d exceeds ceiling", n)
	}
	if !strings.Contains(fake.calls[0].system, "no longer than 40 characters") {
		t.Errorf("system instruction = %q", fake.calls[0].system)
	}
}

func TestSummarizeCompleterError(t *testing.T) {
	fake := &fakeCompleter{err: fmt.Errorf("401 unauthorized")}
	eng := newTestEngine(fake, 8000)

	_, err := eng.Summarize(context.Background(), "transcript", limit.Default())
	if !errors.Is(err, ErrSummarizationFailed) {
		t.Errorf("error = %v, want ErrSummarizationFailed", err)
	}
}

func TestSummarizeChunkErrorAborts(t *testing.T) {
	fake := &fakeCompleter{err: fmt.Errorf("boom")}
	eng := newTestEngine(fake, 5)

	_, err := eng.Summarize(context.Background(), "0123456789", limit.Default())
	if !errors.Is(err, ErrSummarizationFailed) {
		t.Fatalf("error = %v, want ErrSummarizationFailed", err)
	}
	if len(fake.calls) != 1 {
		t.Errorf("completer called %d times after failure, want 1 (fail fast, no retries)", len(fake.calls))
	}
}
