package summarizer

import (
	"errors"
	"testing"

	"videosummary/internal/config"
	"videosummary/internal/logger"
)

func providerConfig(provider string) *config.Config {
	cfg := &config.Config{}
	cfg.Summarizer.Provider = provider
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func TestNewMissingOpenAICredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New(providerConfig("openai"), logger.New("error"))
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("New() error = %v, want ErrMissingCredential", err)
	}
}

func TestNewMissingGeminiCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := New(providerConfig("gemini"), logger.New("error"))
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("New() error = %v, want ErrMissingCredential", err)
	}
}

func TestNewWithCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	s, err := New(providerConfig("openai"), logger.New("error"))
	if err != nil {
		t.Fatal(err)
	}
	if s == nil {
		t.Fatal("New() returned nil Summarizer")
	}
}
