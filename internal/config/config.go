package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type SummarizerConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	ChunkSize int    `yaml:"chunk_size"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads a YAML config file and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads <= 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "openai"
	}
	if c.Summarizer.Provider != "openai" && c.Summarizer.Provider != "gemini" {
		return fmt.Errorf("summarizer.provider must be \"openai\" or \"gemini\", got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.Model == "" {
		switch c.Summarizer.Provider {
		case "gemini":
			c.Summarizer.Model = "gemini-2.5-flash"
		default:
			c.Summarizer.Model = "gpt-4o-mini"
		}
	}
	if c.Summarizer.ChunkSize <= 0 {
		c.Summarizer.ChunkSize = 8000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}
