// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stacklok/skillsync-core/engine"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a full catalog sync",
	Long: `Reconcile every catalog skill and connector against the organization.
Connectors sync first so skill dependency checks see fresh state.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

var syncSkillCmd = &cobra.Command{
	Use:   "sync-skill NAME",
	Short: "Sync a single catalog skill by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyncSkill,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(syncSkillCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	e, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	report := e.RunFullSync(cmd.Context())

	for _, r := range report.ConnectorResults {
		printResult(cmd, "connector", r.ConnectorName, string(r.Action), r.Message)
	}
	for _, r := range report.Results {
		printResult(cmd, "skill", r.SkillName, string(r.Action), r.Message)
	}

	if !report.Success {
		return fmt.Errorf("sync failed: %s", report.Error)
	}
	cmd.Printf("synced %d skills, %d connectors\n", len(report.Results), len(report.ConnectorResults))
	return nil
}

func runSyncSkill(cmd *cobra.Command, args []string) error {
	e, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	result := e.SyncSkill(cmd.Context(), args[0])
	printResult(cmd, "skill", result.SkillName, string(result.Action), result.Message)

	if result.Action == engine.ActionError {
		return fmt.Errorf("sync failed for %s: %s", result.SkillName, result.Message)
	}
	return nil
}

func printResult(cmd *cobra.Command, kind, name, action, message string) {
	if message != "" {
		cmd.Printf("%-9s  %-10s %s (%s)\n", kind, action, name, message)
		return
	}
	cmd.Printf("%-9s  %-10s %s\n", kind, action, name)
}
