// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

// Action is the per-entry outcome of a sync decision.
type Action string

// Sync actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
	ActionError   Action = "error"
)

// SkillResult is the outcome for one catalog skill entry.
type SkillResult struct {
	SkillName string `json:"skillName"`
	Action    Action `json:"action"`
	Message   string `json:"message,omitempty"`
}

// ConnectorResult is the outcome for one catalog connector entry.
type ConnectorResult struct {
	ConnectorName string `json:"connectorName"`
	Action        Action `json:"action"`
	Message       string `json:"message,omitempty"`
}

// Report is the overall outcome of a full sync run. Per-entry results
// accumulated before an abort are preserved.
type Report struct {
	Success          bool              `json:"success"`
	Results          []SkillResult     `json:"results"`
	ConnectorResults []ConnectorResult `json:"connectorResults"`
	Error            string            `json:"error,omitempty"`
}

// PendingCounts reports catalog entries not yet applied to the remote
// service: skills absent remotely, managed skills with a version behind
// the catalog, and connectors whose URL is absent remotely.
type PendingCounts struct {
	NewCount          int      `json:"newCount"`
	UpdateCount       int      `json:"updateCount"`
	NewSkillNames     []string `json:"newSkillNames"`
	UpdatedSkillNames []string `json:"updatedSkillNames"`
	NewConnectorCount int      `json:"newConnectorCount"`
	NewConnectorNames []string `json:"newConnectorNames"`
}
