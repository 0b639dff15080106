// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/skillsync-core/engine"
	"github.com/stacklok/skillsync-core/engine/mocks"
	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
	"github.com/stacklok/skillsync-core/session"
	"github.com/stacklok/skillsync-core/state"
)

const testOrg = "org-1"

type fixture struct {
	handler  *Handler
	engine   *engine.Engine
	manifest *mocks.MockManifestSource
	client   *mocks.MockRemoteClient
}

func newFixture(t *testing.T, sessions session.Source) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		manifest: mocks.NewMockManifestSource(ctrl),
		client:   mocks.NewMockRemoteClient(ctrl),
	}

	e, err := engine.New(engine.Config{
		Manifest: f.manifest,
		Resolver: mocks.NewMockContentResolver(ctrl),
		Remote:   f.client,
		Sessions: sessions,
		Store:    state.NewMemoryStore(),
	})
	require.NoError(t, err)

	f.engine = e
	f.handler = NewHandler(e)
	return f
}

func TestDispatch_CheckAuth(t *testing.T) {
	t.Parallel()

	t.Run("logged in", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, session.Static(testOrg))

		resp, err := f.handler.Dispatch(context.Background(), CheckAuth{})
		require.NoError(t, err)
		auth, ok := resp.(*AuthResponse)
		require.True(t, ok)
		assert.True(t, auth.LoggedIn)
		assert.Equal(t, testOrg, auth.OrgID)
	})

	t.Run("logged out", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, session.Static(""))

		resp, err := f.handler.Dispatch(context.Background(), CheckAuth{})
		require.NoError(t, err)
		auth, ok := resp.(*AuthResponse)
		require.True(t, ok)
		assert.False(t, auth.LoggedIn)
	})
}

func TestDispatch_SyncNotLoggedIn(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(""))

	resp, err := f.handler.Dispatch(context.Background(), Sync{})
	require.NoError(t, err)
	report, ok := resp.(*engine.Report)
	require.True(t, ok)
	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Error)
}

func TestDispatch_GetStatusLoggedOut(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(""))

	resp, err := f.handler.Dispatch(context.Background(), GetStatus{})
	require.NoError(t, err)
	status, ok := resp.(*engine.Status)
	require.True(t, ok)
	assert.False(t, status.LoggedIn)
	assert.Empty(t, status.Skills)
}

func TestDispatch_ToggleAndDeletes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(testOrg))
	ctx := context.Background()

	f.client.EXPECT().ListSkills(gomock.Any(), testOrg).Return([]remote.Skill{}, nil).AnyTimes()
	f.client.EXPECT().ListConnectors(gomock.Any(), testOrg).Return([]remote.Connector{}, nil).AnyTimes()

	f.client.EXPECT().EnableSkill(gomock.Any(), testOrg, "s1").Return(nil)
	_, err := f.handler.Dispatch(ctx, ToggleSkill{SkillID: "s1", Enabled: true})
	require.NoError(t, err)

	f.client.EXPECT().DeleteSkill(gomock.Any(), testOrg, "s1").Return(nil)
	_, err = f.handler.Dispatch(ctx, DeleteSkill{SkillID: "s1", SkillName: "A"})
	require.NoError(t, err)

	f.client.EXPECT().DeleteConnector(gomock.Any(), testOrg, "u1").Return(nil)
	_, err = f.handler.Dispatch(ctx, DeleteConnector{ConnectorID: "u1", ConnectorName: "github"})
	require.NoError(t, err)
}

func TestDispatch_GetPending(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(testOrg))

	resp, err := f.handler.Dispatch(context.Background(), GetPending{})
	require.NoError(t, err)
	counts, ok := resp.(engine.PendingCounts)
	require.True(t, ok)
	assert.Zero(t, counts.NewCount)
}

func TestDispatch_UnknownRequest(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(testOrg))

	_, err := f.handler.Dispatch(context.Background(), nil)
	require.Error(t, err)
}

func TestPoller_RefreshesOnTick(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(testOrg))

	man := &manifest.Manifest{Name: "catalog", Version: "1"}
	f.manifest.EXPECT().Fetch(gomock.Any()).Return(man, nil).MinTimes(1)
	f.client.EXPECT().ListSkills(gomock.Any(), testOrg).Return([]remote.Skill{}, nil).MinTimes(1)
	f.client.EXPECT().ListConnectors(gomock.Any(), testOrg).Return([]remote.Connector{}, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p := NewPoller(f.engine, WithPollInterval(10*time.Millisecond))
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestPoller_StopsWithoutSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t, session.Static(""))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p := NewPoller(f.engine, WithPollInterval(5*time.Millisecond))
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	// Logged out ticks are no-ops; no remote expectations needed.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}
