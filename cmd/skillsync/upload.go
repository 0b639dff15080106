// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/stacklok/skillsync-core/bundle"
)

var uploadOverwrite bool

var uploadCmd = &cobra.Command{
	Use:   "upload DIR...",
	Short: "Package skill directories and upload them as bundles",
	Long: `Package each directory into a skill bundle and upload it. The
directory must contain a SKILL.md document; its frontmatter name names
the skill.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadOverwrite, "overwrite", false, "replace the skill if it already exists")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	client, _, sessions, err := buildClient()
	if err != nil {
		return err
	}
	orgID, err := sessions.OrgID(cmd.Context())
	if err != nil {
		return err
	}

	for _, dir := range args {
		data, name, err := bundle.FromDir(dir)
		if err != nil {
			return err
		}
		skill, err := client.UploadSkill(cmd.Context(), orgID, name, data, uploadOverwrite)
		if err != nil {
			return err
		}
		cmd.Printf("uploaded %s (id %s)\n", skill.Name, skill.ID)
	}
	return nil
}
