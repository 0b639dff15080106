// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/skillsync-core/ledger"
	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
)

func TestSkillStates(t *testing.T) {
	t.Parallel()

	man := &manifest.Manifest{
		Name:    "catalog",
		Version: "1",
		Skills: []manifest.Skill{
			{Name: "current", Version: "2", Description: "d", Source: "s"},
			{Name: "behind", Version: "5", Description: "d", Source: "s"},
			{Name: "untracked", Version: "1", Description: "d", Source: "s"},
		},
	}
	records := map[string]ledger.SkillRecord{
		"current": {Name: "current", Version: "2", Fingerprint: "f"},
		"behind":  {Name: "behind", Version: "4", Fingerprint: "f"},
		"removed": {Name: "removed", Version: "1", Fingerprint: "f"},
	}
	remoteSkills := []remote.Skill{
		{ID: "1", Name: "Current"},
		{ID: "2", Name: "behind"},
		{ID: "3", Name: "removed"},
		{ID: "4", Name: "untracked"},
		{ID: "5", Name: "users-own"},
	}

	states := SkillStates(remoteSkills, man, records)
	require.Len(t, states, 5)

	byName := map[string]SkillWithState{}
	for _, s := range states {
		byName[s.Skill.ID] = s
	}

	assert.Equal(t, StateManaged, byName["1"].State, "case-insensitive match, versions agree")
	assert.Equal(t, StateOutdated, byName["2"].State)
	assert.Equal(t, StateOrphaned, byName["3"].State)
	assert.Equal(t, StateOther, byName["4"].State, "in catalog but never tracked")
	assert.Equal(t, StateOther, byName["5"].State)

	require.NotNil(t, byName["1"].Entry)
	assert.Equal(t, "current", byName["1"].Entry.Name)
	require.NotNil(t, byName["2"].Record)
	assert.Equal(t, "4", byName["2"].Record.Version)
	assert.Nil(t, byName["5"].Entry)
	assert.Nil(t, byName["5"].Record)
}

func TestSkillStates_NilManifest(t *testing.T) {
	t.Parallel()

	records := map[string]ledger.SkillRecord{
		"tracked": {Name: "tracked", Version: "1"},
	}
	states := SkillStates([]remote.Skill{{ID: "1", Name: "tracked"}}, nil, records)

	require.Len(t, states, 1)
	assert.Equal(t, StateOrphaned, states[0].State)
}

func TestConnectorStates(t *testing.T) {
	t.Parallel()

	man := &manifest.Manifest{
		Name:    "catalog",
		Version: "1",
		Connectors: []manifest.Connector{
			{Name: "github", URL: "https://mcp.example.com/github"},
		},
	}
	records := map[string]ledger.ConnectorRecord{
		"github":  {Name: "github", URL: "https://mcp.example.com/github", ConnectorID: "u1"},
		"dropped": {Name: "dropped", URL: "https://mcp.example.com/dropped", ConnectorID: "u2"},
	}
	remoteConns := []remote.Connector{
		{ID: "c1", UUID: "u1", Name: "GitHub", URL: "https://mcp.example.com/github"},
		{ID: "c2", UUID: "u2", Name: "dropped", URL: "https://mcp.example.com/dropped"},
		{ID: "c3", UUID: "u3", Name: "personal", URL: "https://mcp.example.com/personal"},
	}

	states := ConnectorStates(remoteConns, man, records)
	require.Len(t, states, 3)

	assert.Equal(t, StateManaged, states[0].State)
	assert.Equal(t, StateOrphaned, states[1].State, "tracked but gone from the catalog")
	assert.Equal(t, StateOther, states[2].State)
}

func TestConnectorStates_MatchesRecordByURL(t *testing.T) {
	t.Parallel()

	// Record predates the service assigning this connector a fresh UUID.
	records := map[string]ledger.ConnectorRecord{
		"github": {Name: "github", URL: "https://mcp.example.com/github", ConnectorID: "stale"},
	}
	remoteConns := []remote.Connector{
		{ID: "c1", UUID: "u-new", Name: "github", URL: "https://mcp.example.com/github"},
	}

	states := ConnectorStates(remoteConns, nil, records)
	require.Len(t, states, 1)
	assert.Equal(t, StateOrphaned, states[0].State)
	require.NotNil(t, states[0].Record)
	assert.Equal(t, "stale", states[0].Record.ConnectorID)
}
