package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"videosummary/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and summarize every video dropped into it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveConstraint(nil)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		p, log, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		handler := func(ctx context.Context, videoPath string) error {
			return p.Run(ctx, videoPath, "", c)
		}

		w, err := watcher.New(args[0], handler, log)
		if err != nil {
			return err
		}
		defer w.Stop()

		if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
