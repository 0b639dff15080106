// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound indicates that a slot has no stored value.
var ErrNotFound = errors.New("state: slot not found")

// Store persists independent key→value slots. Each slot is written whole;
// there are no cross-slot transactions, and the last writer wins.
type Store interface {
	// Get returns the raw value of a slot, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a slot value, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string][]byte{}}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}
