// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import "strings"

// Manifest is the remote catalog document: the authoritative list of skills
// and connectors a team wants installed.
type Manifest struct {
	Name       string      `json:"name"`
	Version    string      `json:"version"`
	Connectors []Connector `json:"connectors,omitempty"`
	Skills     []Skill     `json:"skills"`
}

// Connector is a catalog entry for an integration endpoint.
type Connector struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Skill is a catalog entry for an instruction document.
type Skill struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description"`
	Source      string `json:"source"`

	// Connectors names connector entries this skill depends on. The sync
	// engine refuses to install a skill whose connectors are missing.
	Connectors []string `json:"connectors,omitempty"`

	// EnabledByDefault controls the initial enabled state on creation.
	// Only an explicit false triggers a disable call; nil and true behave
	// the same.
	EnabledByDefault *bool `json:"enabledByDefault,omitempty"`

	// AllowUserToggle marks whether the UI should let users flip the
	// enabled state of this skill.
	AllowUserToggle *bool `json:"allowUserToggle,omitempty"`
}

// FindSkill returns the skill entry with the given name, matched
// case-insensitively, or nil.
func (m *Manifest) FindSkill(name string) *Skill {
	for i := range m.Skills {
		if strings.EqualFold(m.Skills[i].Name, name) {
			return &m.Skills[i]
		}
	}
	return nil
}

// FindConnector returns the connector entry with the given name, matched
// case-insensitively, or nil.
func (m *Manifest) FindConnector(name string) *Connector {
	for i := range m.Connectors {
		if strings.EqualFold(m.Connectors[i].Name, name) {
			return &m.Connectors[i]
		}
	}
	return nil
}
