// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/stacklok/skillsync-core/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show skills and connectors with their lifecycle state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show pending create and update counts",
	Args:  cobra.NoArgs,
	RunE:  runPending,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pendingCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	e, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	status, err := e.Status(cmd.Context())
	if err != nil {
		return err
	}
	if !status.LoggedIn {
		cmd.Println("not logged in")
		return nil
	}

	if status.LastSyncTime > 0 {
		cmd.Printf("last sync: %s\n", time.UnixMilli(status.LastSyncTime).Format(time.RFC3339))
	} else {
		cmd.Println("last sync: never")
	}

	cmd.Printf("\nskills (%d):\n", len(status.Skills))
	for _, s := range status.Skills {
		version := ""
		if s.Record != nil {
			version = "v" + s.Record.Version
		}
		cmd.Printf("  %-10s %-30s %s\n", s.State, s.Skill.Name, version)
	}

	cmd.Printf("\nconnectors (%d):\n", len(status.Connectors))
	for _, c := range status.Connectors {
		cmd.Printf("  %-10s %-30s %s\n", c.State, c.Connector.Name, c.Connector.URL)
	}
	return nil
}

func runPending(cmd *cobra.Command, _ []string) error {
	e, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	pending, err := e.UpdatePendingCounts(cmd.Context())
	if err != nil {
		return err
	}
	printPending(cmd, pending)
	return nil
}

func printPending(cmd *cobra.Command, p engine.PendingCounts) {
	cmd.Printf("new skills:       %d %v\n", p.NewCount, p.NewSkillNames)
	cmd.Printf("skill updates:    %d %v\n", p.UpdateCount, p.UpdatedSkillNames)
	cmd.Printf("new connectors:   %d %v\n", p.NewConnectorCount, p.NewConnectorNames)
}
