// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/skillsync-core/logging"
	"github.com/stacklok/skillsync-core/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the background refresh loop",
	Long: `Keep the cached manifest, remote listings, and pending counts fresh
by refreshing on an interval. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Duration("poll-interval", service.DefaultPollInterval, "cache refresh interval")
	_ = viper.BindPFlag("poll-interval", serveCmd.Flags().Lookup("poll-interval"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	level := slog.LevelInfo
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(level),
		logging.WithOutput(os.Stderr),
		logging.WithComponent("poller"),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := viper.GetDuration("poll-interval")
	if interval <= 0 {
		interval = service.DefaultPollInterval
	}

	// Refresh once up front so the first status is current.
	if err := e.Refresh(ctx); err != nil {
		logger.Warn("initial refresh failed", "error", err)
	}

	poller := service.NewPoller(e,
		service.WithPollInterval(interval),
		service.WithPollLogger(logger),
	)
	poller.Run(ctx)
	return nil
}
