// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"strings"

	"github.com/stacklok/skillsync-core/ledger"
	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
)

// State is a derived lifecycle label for a remote entity. States are
// computed from snapshots, never stored.
type State string

// Lifecycle states.
const (
	// StateManaged: tracked in the ledger, present in the catalog,
	// versions agree.
	StateManaged State = "managed"
	// StateOutdated: tracked and in the catalog, but the catalog has
	// moved to a different version.
	StateOutdated State = "outdated"
	// StateOrphaned: tracked in the ledger but gone from the catalog.
	StateOrphaned State = "orphaned"
	// StateOther: not tracked; the user's own entity.
	StateOther State = "other"
)

// SkillWithState pairs a remote skill with its lifecycle state and the
// catalog entry and ledger record that produced it, when they exist.
type SkillWithState struct {
	Skill  remote.Skill        `json:"skill"`
	State  State               `json:"state"`
	Entry  *manifest.Skill     `json:"entry,omitempty"`
	Record *ledger.SkillRecord `json:"record,omitempty"`
}

// ConnectorWithState pairs a remote connector with its lifecycle state.
// Connectors have no version, so they are never outdated.
type ConnectorWithState struct {
	Connector remote.Connector        `json:"connector"`
	State     State                   `json:"state"`
	Entry     *manifest.Connector     `json:"entry,omitempty"`
	Record    *ledger.ConnectorRecord `json:"record,omitempty"`
}

// SkillStates classifies every remote skill against a catalog snapshot and
// ledger map. Pure function: no network or storage access, reflects exactly
// the snapshots passed in.
func SkillStates(remoteSkills []remote.Skill, man *manifest.Manifest, records map[string]ledger.SkillRecord) []SkillWithState {
	out := make([]SkillWithState, 0, len(remoteSkills))

	for _, skill := range remoteSkills {
		var entry *manifest.Skill
		if man != nil {
			entry = man.FindSkill(skill.Name)
		}
		record, tracked := lookupRecord(records, skill.Name)

		s := SkillWithState{Skill: skill, Entry: entry}
		if tracked {
			s.Record = &record
		}

		switch {
		case tracked && entry != nil && entry.Version == record.Version:
			s.State = StateManaged
		case tracked && entry != nil:
			s.State = StateOutdated
		case tracked:
			s.State = StateOrphaned
		default:
			s.State = StateOther
		}

		out = append(out, s)
	}

	return out
}

// ConnectorStates classifies every remote connector. A connector is
// tracked when a ledger record matches its identifier or URL; catalog
// membership is checked by name or URL.
func ConnectorStates(remoteConns []remote.Connector, man *manifest.Manifest, records map[string]ledger.ConnectorRecord) []ConnectorWithState {
	out := make([]ConnectorWithState, 0, len(remoteConns))

	for _, conn := range remoteConns {
		var entry *manifest.Connector
		if man != nil {
			entry = man.FindConnector(conn.Name)
			if entry == nil {
				for i := range man.Connectors {
					if man.Connectors[i].URL == conn.URL {
						entry = &man.Connectors[i]
						break
					}
				}
			}
		}

		record, tracked := lookupConnectorRecord(records, conn)

		c := ConnectorWithState{Connector: conn, Entry: entry}
		if tracked {
			c.Record = &record
		}

		switch {
		case tracked && entry != nil:
			c.State = StateManaged
		case tracked:
			c.State = StateOrphaned
		default:
			c.State = StateOther
		}

		out = append(out, c)
	}

	return out
}

// lookupConnectorRecord matches a remote connector to a ledger record by
// remote identifier first, then by URL. Empty fields never match.
func lookupConnectorRecord(records map[string]ledger.ConnectorRecord, conn remote.Connector) (ledger.ConnectorRecord, bool) {
	id := conn.EntityID()
	for _, rec := range records {
		if id != "" && rec.ConnectorID == id {
			return rec, true
		}
		if conn.URL != "" && rec.URL == conn.URL {
			return rec, true
		}
	}
	return ledger.ConnectorRecord{}, false
}

// missingNames returns the entries of want absent from have, preserving
// order. Comparison is case-insensitive.
func missingNames(want []string, have map[string]bool) []string {
	var missing []string
	for _, name := range want {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}
