// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package remote

// Skill is a skill as the remote service reports it.
type Skill struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Instructions        string `json:"instructions,omitempty"`
	Enabled             bool   `json:"enabled"`
	CreatorType         string `json:"creator_type,omitempty"`
	UpdatedAt           string `json:"updated_at,omitempty"`
	PartitionBy         string `json:"partition_by,omitempty"`
	IsPublicProvisioned *bool  `json:"is_public_provisioned,omitempty"`
}

// Connector is an integration endpoint as the remote service reports it.
// The service exposes two identifiers; UUID is the one its own delete and
// update operations accept, so it takes precedence over ID.
type Connector struct {
	ID        string `json:"id"`
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// EntityID returns the identifier to use when addressing this connector,
// preferring the service's secondary UUID field when present.
func (c Connector) EntityID() string {
	if c.UUID != "" {
		return c.UUID
	}
	return c.ID
}
