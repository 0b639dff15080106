// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/skillsync-core/engine"
	"github.com/stacklok/skillsync-core/logging"
	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
	"github.com/stacklok/skillsync-core/resolve"
	"github.com/stacklok/skillsync-core/session"
	"github.com/stacklok/skillsync-core/state"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "skillsync",
	Short: "Sync a curated skill and connector catalog to the remote service",
	Long: `skillsync reconciles a team-curated catalog of skills and connectors
against an organization on the remote service, tracking what it installed
in a durable local ledger.

Example:
  skillsync sync --manifest-url https://example.com/catalog.json`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .skillsync.yaml)")
	rootCmd.PersistentFlags().String("manifest-url", "", "catalog manifest URL")
	rootCmd.PersistentFlags().String("base-url", remote.DefaultBaseURL, "remote service API base URL")
	rootCmd.PersistentFlags().String("org-id", "", "organization ID (overrides session lookup)")
	rootCmd.PersistentFlags().String("state-path", "", "state database path (default is under the XDG data dir)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	for _, key := range []string{"manifest-url", "base-url", "org-id", "state-path", "debug"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".skillsync")
	}

	viper.SetEnvPrefix("SKILLSYNC")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// buildClient wires the remote client and session sources from
// configuration. The cookie jar backing the HTTP client lets the
// session chain read the active-organization cookie.
func buildClient() (*remote.Client, *http.Client, session.Chain, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, nil, nil, err
	}
	httpClient := &http.Client{Jar: jar}

	client, err := remote.NewClient(
		remote.WithBaseURL(viper.GetString("base-url")),
		remote.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	cookies, err := session.NewCookieSource(jar, viper.GetString("base-url"))
	if err != nil {
		return nil, nil, nil, err
	}
	sessions := session.Chain{
		session.Static(viper.GetString("org-id")),
		session.NewEnvSource(nil),
		cookies,
	}
	return client, httpClient, sessions, nil
}

// buildEngine wires the engine from configuration. The returned cleanup
// closes the state store.
func buildEngine() (*engine.Engine, func(), error) {
	manifestURL := viper.GetString("manifest-url")
	if manifestURL == "" {
		return nil, nil, fmt.Errorf("manifest URL is required (--manifest-url or SKILLSYNC_MANIFEST_URL)")
	}

	level := slog.LevelInfo
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(level),
		logging.WithOutput(os.Stderr),
		logging.WithComponent("skillsync"),
	)

	manifests, err := manifest.NewClient(manifestURL)
	if err != nil {
		return nil, nil, err
	}

	client, httpClient, sessions, err := buildClient()
	if err != nil {
		return nil, nil, err
	}

	statePath := viper.GetString("state-path")
	if statePath == "" {
		statePath, err = state.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	store, err := state.OpenSQLite(statePath)
	if err != nil {
		return nil, nil, err
	}

	e, err := engine.New(engine.Config{
		Manifest: manifests,
		Resolver: resolve.New(resolve.WithHTTPClient(httpClient)),
		Remote:   client,
		Sessions: sessions,
		Store:    store,
	}, engine.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return e, func() { _ = store.Close() }, nil
}
