// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable SKILL_ID",
	Short: "Enable a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleSkill(cmd, args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable SKILL_ID",
	Short: "Disable a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleSkill(cmd, args[0], false)
	},
}

var deleteSkillCmd = &cobra.Command{
	Use:   "delete-skill SKILL_ID [NAME]",
	Short: "Delete a skill and stop tracking it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := buildEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		if err := e.DeleteSkill(cmd.Context(), args[0], name); err != nil {
			return err
		}
		cmd.Printf("deleted skill %s\n", args[0])
		return nil
	},
}

var deleteConnectorCmd = &cobra.Command{
	Use:   "delete-connector CONNECTOR_ID [NAME]",
	Short: "Delete a connector and stop tracking it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := buildEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		if err := e.DeleteConnector(cmd.Context(), args[0], name); err != nil {
			return err
		}
		cmd.Printf("deleted connector %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(deleteSkillCmd)
	rootCmd.AddCommand(deleteConnectorCmd)
}

func toggleSkill(cmd *cobra.Command, skillID string, enabled bool) error {
	e, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := e.ToggleSkill(cmd.Context(), skillID, enabled); err != nil {
		return err
	}
	if enabled {
		cmd.Printf("enabled skill %s\n", skillID)
	} else {
		cmd.Printf("disabled skill %s\n", skillID)
	}
	return nil
}
