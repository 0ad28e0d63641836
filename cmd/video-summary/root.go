package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"videosummary/internal/config"
	"videosummary/internal/limit"
	"videosummary/internal/logger"
	"videosummary/internal/pipeline"
	"videosummary/internal/summarizer"
	"videosummary/internal/transcriber"
	"videosummary/pkg/executor"
)

var (
	flagConfig       string
	flagWhisperModel string
	flagLanguage     string
	flagOpenAIModel  string
	flagProvider     string
	flagOut          string
	flagLimit        string
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "video-summary <video> [paragraphs]",
	Short: "Transcribe a video with Whisper and summarize it with an LLM",
	Long: `Extracts the audio track of a video, transcribes it locally with
whisper.cpp, and asks a text-completion model for a summary.

The summary shape is controlled by --limit ("800" for a character ceiling,
"3p" for a paragraph count), by the optional positional paragraph count, or
defaults to three paragraphs.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveConstraint(args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		p, _, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		return p.Run(cmd.Context(), args[0], flagOut, c)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to a YAML config file")
	pf.StringVar(&flagWhisperModel, "whisper-model", "base", "Whisper model size: tiny, base, small, medium, large")
	pf.StringVar(&flagLanguage, "language", "auto", "force language code or 'auto' to detect")
	pf.StringVar(&flagOpenAIModel, "openai-model", "gpt-4o-mini", "completion model for summarization")
	pf.StringVar(&flagProvider, "provider", "", "completion provider: openai or gemini")
	pf.StringVar(&flagLimit, "limit", "", "summary limit: <N> characters (e.g. 800) or <N>p paragraphs (e.g. 3p)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&flagOut, "out", "", "output path (default <video-stem>.summary.txt; .docx for a Word document)")

	rootCmd.AddCommand(watchCmd)
}

// resolveConstraint applies the precedence rule: --limit wins over the
// positional paragraph count, which wins over the three-paragraph default.
func resolveConstraint(args []string) (limit.Constraint, error) {
	if flagLimit != "" {
		return limit.Parse(flagLimit)
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return limit.Constraint{}, fmt.Errorf("%w: %q", limit.ErrInvalidParagraphs, args[1])
		}
		return limit.ByParagraphs(n)
	}
	return limit.Default(), nil
}

// loadConfig reads the optional config file and layers CLI flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("whisper-model") {
		cfg.Whisper.Model = flagWhisperModel
	}
	if flags.Changed("language") {
		cfg.Whisper.Language = flagLanguage
	}
	if flags.Changed("provider") {
		cfg.Summarizer.Provider = flagProvider
		cfg.Summarizer.Model = "" // re-derive the provider default
	}
	if flags.Changed("openai-model") {
		cfg.Summarizer.Model = flagOpenAIModel
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildPipeline(cfg *config.Config) (pipeline.Pipeline, logger.Logger, error) {
	log := logger.New(cfg.Logging.Level)
	exec := executor.New()

	sum, err := summarizer.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	tr := transcriber.New(cfg, exec, log)
	return pipeline.New(cfg, exec, tr, sum, log), log, nil
}
