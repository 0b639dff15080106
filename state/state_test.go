// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest runs the Store contract tests against both backends.
func storeUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStore_GetSetDelete(t *testing.T) {
	t.Parallel()

	for name, store := range storeUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "k", []byte("v1")))
			got, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v1"), got)

			require.NoError(t, store.Set(ctx, "k", []byte("v2")))
			got, err = store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), got, "set replaces the whole slot")

			require.NoError(t, store.Delete(ctx, "k"))
			_, err = store.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, store.Delete(ctx, "k"), "deleting absent slot is not an error")
		})
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	t.Parallel()

	for name, store := range storeUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, KeyManagedSkills, []byte(`{"a":1}`)))
			require.NoError(t, store.Set(ctx, KeyManagedConnectors, []byte(`{"b":2}`)))
			require.NoError(t, store.Delete(ctx, KeyManagedSkills))

			got, err := store.Get(ctx, KeyManagedConnectors)
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"b":2}`), got)
		})
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "durable", []byte("yes")))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, err := store.Get(ctx, "durable")
	require.NoError(t, err)
	assert.Equal(t, []byte("yes"), got)
}

func TestSlot(t *testing.T) {
	t.Parallel()

	type counts struct {
		New    int      `json:"new"`
		Names  []string `json:"names"`
	}

	ctx := context.Background()
	store := NewMemoryStore()
	slot := NewSlot[counts](store, KeyPendingCounts)

	got, err := slot.Get(ctx, counts{})
	require.NoError(t, err)
	assert.Equal(t, counts{}, got, "absent slot yields fallback")

	want := counts{New: 2, Names: []string{"a", "b"}}
	require.NoError(t, slot.Set(ctx, want))

	got, err = slot.Get(ctx, counts{})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, slot.Delete(ctx))
	got, err = slot.Get(ctx, counts{New: 9})
	require.NoError(t, err)
	assert.Equal(t, counts{New: 9}, got)
}

func TestSlot_CorruptValueYieldsFallbackAndError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyLastSyncTime, []byte("not json")))

	slot := NewSlot[int64](store, KeyLastSyncTime)
	got, err := slot.Get(ctx, -1)
	require.Error(t, err)
	assert.Equal(t, int64(-1), got)
}
