// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/skillsync-core/state"
)

func fixedClock(unixMilli int64) func() time.Time {
	return func() time.Time {
		return time.UnixMilli(unixMilli)
	}
}

func TestSkillLedger_UpsertPreservesInstalledAt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()

	l := NewSkillLedger(store, WithClock(fixedClock(1000)))
	require.NoError(t, l.Upsert(ctx, "code-review", "1.0.0", "aaaa"))

	rec, ok, err := l.Get(ctx, "code-review")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1000), rec.InstalledAt)
	assert.Equal(t, int64(1000), rec.UpdatedAt)
	assert.Equal(t, "1.0.0", rec.Version)
	assert.Equal(t, "aaaa", rec.Fingerprint)

	l = NewSkillLedger(store, WithClock(fixedClock(2000)))
	require.NoError(t, l.Upsert(ctx, "code-review", "1.1.0", "bbbb"))

	rec, ok, err = l.Get(ctx, "code-review")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1000), rec.InstalledAt, "installation time survives updates")
	assert.Equal(t, int64(2000), rec.UpdatedAt)
	assert.Equal(t, "1.1.0", rec.Version)
	assert.Equal(t, "bbbb", rec.Fingerprint)
}

func TestSkillLedger_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := NewSkillLedger(state.NewMemoryStore())

	require.NoError(t, l.Upsert(ctx, "a", "1.0.0", "aa"))
	require.NoError(t, l.Upsert(ctx, "b", "1.0.0", "bb"))

	require.NoError(t, l.Remove(ctx, "a"))
	require.NoError(t, l.Remove(ctx, "a"), "removing absent record is not an error")

	records, err := l.All(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Contains(t, records, "b")
}

func TestSkillLedger_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := NewSkillLedger(state.NewMemoryStore())
	require.NoError(t, l.Upsert(ctx, "a", "1.0.0", "aa"))

	records, err := l.All(ctx)
	require.NoError(t, err)
	delete(records, "a")

	_, ok, err := l.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnectorLedger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()

	l := NewConnectorLedger(store, WithClock(fixedClock(1000)))
	require.NoError(t, l.Upsert(ctx, "github", "https://mcp.example.com/github", "u1"))

	rec, ok, err := l.Get(ctx, "github")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://mcp.example.com/github", rec.URL)
	assert.Equal(t, "u1", rec.ConnectorID)
	assert.Equal(t, int64(1000), rec.InstalledAt)

	l = NewConnectorLedger(store, WithClock(fixedClock(2000)))
	require.NoError(t, l.Upsert(ctx, "github", "https://mcp.example.com/github-v2", "u2"))

	rec, _, err = l.Get(ctx, "github")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), rec.InstalledAt)
	assert.Equal(t, int64(2000), rec.UpdatedAt)
	assert.Equal(t, "u2", rec.ConnectorID)

	require.NoError(t, l.Remove(ctx, "github"))
	_, ok, err = l.Get(ctx, "github")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedgersShareStoreWithoutCollision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()

	skills := NewSkillLedger(store)
	connectors := NewConnectorLedger(store)

	require.NoError(t, skills.Upsert(ctx, "same-name", "1.0.0", "aa"))
	require.NoError(t, connectors.Upsert(ctx, "same-name", "https://mcp.example.com", "u1"))

	skillRecords, err := skills.All(ctx)
	require.NoError(t, err)
	connRecords, err := connectors.All(ctx)
	require.NoError(t, err)

	assert.Len(t, skillRecords, 1)
	assert.Len(t, connRecords, 1)
	assert.Equal(t, "aa", skillRecords["same-name"].Fingerprint)
	assert.Equal(t, "u1", connRecords["same-name"].ConnectorID)
}
