// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
	"github.com/stacklok/skillsync-core/session"
)

func TestStatus_LoggedOut(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(""))

	status, err := te.engine.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.LoggedIn)
	assert.Empty(t, status.Skills)
	assert.Empty(t, status.Connectors)
}

func TestStatus_ClassifiesAgainstFreshListings(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(testOrg))
	ctx := context.Background()

	man := &manifest.Manifest{
		Skills: []manifest.Skill{{Name: "alpha", Version: "2"}},
	}
	te.manifest.EXPECT().Fetch(gomock.Any()).Return(man, nil)
	te.client.EXPECT().ListSkills(gomock.Any(), testOrg).Return([]remote.Skill{
		{ID: "s1", Name: "alpha"},
		{ID: "s2", Name: "mine"},
	}, nil)
	te.client.EXPECT().ListConnectors(gomock.Any(), testOrg).Return([]remote.Connector{}, nil)

	require.NoError(t, te.engine.Skills().Upsert(ctx, "alpha", "1", "abc"))

	status, err := te.engine.Status(ctx)
	require.NoError(t, err)
	require.True(t, status.LoggedIn)
	require.Len(t, status.Skills, 2)

	byName := map[string]SkillWithState{}
	for _, s := range status.Skills {
		byName[s.Skill.Name] = s
	}
	assert.Equal(t, StateOutdated, byName["alpha"].State)
	assert.Equal(t, StateOther, byName["mine"].State)

	// Pending reflects the version drift picked up from the caches.
	assert.Equal(t, 1, status.Pending.UpdateCount)
	assert.Contains(t, status.Pending.UpdatedSkillNames, "alpha")
}

func TestStatus_FallsBackToCachesOnFetchFailure(t *testing.T) {
	t.Parallel()

	te := newTestEngine(t, session.Static(testOrg))
	ctx := context.Background()

	cached := []remote.Skill{{ID: "s1", Name: "alpha"}}
	require.NoError(t, te.engine.cachedSkills.Set(ctx, cached))
	require.NoError(t, te.engine.cachedManifest.Set(ctx, &manifest.Manifest{
		Skills: []manifest.Skill{{Name: "alpha", Version: "1"}},
	}))

	boom := errors.New("upstream down")
	te.manifest.EXPECT().Fetch(gomock.Any()).Return(nil, boom)
	te.client.EXPECT().ListSkills(gomock.Any(), testOrg).Return(nil, boom)
	te.client.EXPECT().ListConnectors(gomock.Any(), testOrg).Return(nil, boom)

	status, err := te.engine.Status(ctx)
	require.NoError(t, err)
	require.True(t, status.LoggedIn)
	require.Len(t, status.Skills, 1)
	assert.Equal(t, "alpha", status.Skills[0].Skill.Name)
}
