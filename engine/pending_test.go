// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
	"github.com/stacklok/skillsync-core/session"
)

func TestUpdatePendingCounts(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(testOrg))
	ctx := context.Background()

	man := &manifest.Manifest{
		Name:    "catalog",
		Version: "1",
		Connectors: []manifest.Connector{
			{Name: "github", URL: "https://mcp.example.com/github"},
			{Name: "jira", URL: "https://mcp.example.com/jira"},
		},
		Skills: []manifest.Skill{
			{Name: "installed", Version: "2", Description: "d", Source: "s"},
			{Name: "stale", Version: "3", Description: "d", Source: "s"},
			{Name: "brand-new", Version: "1", Description: "d", Source: "s"},
		},
	}
	require.NoError(t, te.engine.cachedManifest.Set(ctx, man))
	require.NoError(t, te.engine.cachedSkills.Set(ctx, []remote.Skill{
		{ID: "1", Name: "Installed"},
		{ID: "2", Name: "stale"},
	}))
	require.NoError(t, te.engine.cachedConns.Set(ctx, []remote.Connector{
		{ID: "c1", Name: "github", URL: "https://mcp.example.com/github"},
	}))
	require.NoError(t, te.engine.Skills().Upsert(ctx, "installed", "2", "f"))
	require.NoError(t, te.engine.Skills().Upsert(ctx, "stale", "2", "f"))

	counts, err := te.engine.UpdatePendingCounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.NewCount)
	assert.Equal(t, []string{"brand-new"}, counts.NewSkillNames)
	assert.Equal(t, 1, counts.UpdateCount)
	assert.Equal(t, []string{"stale"}, counts.UpdatedSkillNames)
	assert.Equal(t, 1, counts.NewConnectorCount)
	assert.Equal(t, []string{"jira"}, counts.NewConnectorNames)

	// Result is persisted for later reads.
	stored, err := te.engine.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, stored)
}

func TestUpdatePendingCounts_ZeroWhenLoggedOut(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(""))
	counts, err := te.engine.UpdatePendingCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.NewCount)
	assert.Zero(t, counts.UpdateCount)
	assert.Zero(t, counts.NewConnectorCount)
}

func TestUpdatePendingCounts_ZeroWithoutCachedManifest(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(testOrg))
	counts, err := te.engine.UpdatePendingCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.NewCount)
	assert.Empty(t, counts.NewSkillNames)
}

func TestRefresh_PopulatesCaches(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(testOrg))
	ctx := context.Background()

	man := &manifest.Manifest{
		Name:    "catalog",
		Version: "1",
		Skills: []manifest.Skill{
			{Name: "A", Version: "1", Description: "d", Source: "s"},
		},
	}
	te.manifest.EXPECT().Fetch(gomock.Any()).Return(man, nil)

	remoteSkills := []remote.Skill{{ID: "s1", Name: "other"}}
	var remoteConns []remote.Connector
	te.stubLists(&remoteSkills, &remoteConns)

	require.NoError(t, te.engine.Refresh(ctx))

	counts, err := te.engine.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, counts.NewSkillNames)

	cached, err := te.engine.cachedSkills.Get(ctx, nil)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "s1", cached[0].ID)
}

func TestRefresh_NoopWhenLoggedOut(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(""))
	require.NoError(t, te.engine.Refresh(context.Background()))
}
