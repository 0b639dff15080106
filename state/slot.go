// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Slot keys. Each is an independent durable slot; there is no cross-slot
// consistency beyond what the sync engine's write ordering provides.
const (
	KeyLastSyncTime         = "last_sync_time"
	KeySyncResults          = "sync_results"
	KeyConnectorSyncResults = "connector_sync_results"
	KeyCachedSkills         = "cached_skills"
	KeyCachedConnectors     = "cached_connectors"
	KeyCachedManifest       = "cached_manifest"
	KeyManagedSkills        = "managed_skills"
	KeyManagedConnectors    = "managed_connectors"
	KeyPendingCounts        = "pending_counts"
)

// Slot is a typed view over one store key, with JSON encoding.
type Slot[T any] struct {
	store Store
	key   string
}

// NewSlot binds a typed slot to a store key.
func NewSlot[T any](store Store, key string) *Slot[T] {
	return &Slot[T]{store: store, key: key}
}

// Get reads and decodes the slot. An absent slot yields fallback.
func (s *Slot[T]) Get(ctx context.Context, fallback T) (T, error) {
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback, fmt.Errorf("failed to decode slot %q: %w", s.key, err)
	}
	return value, nil
}

// Set encodes and writes the slot.
func (s *Slot[T]) Set(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", s.key, err)
	}
	return s.store.Set(ctx, s.key, data)
}

// Delete removes the slot.
func (s *Slot[T]) Delete(ctx context.Context) error {
	return s.store.Delete(ctx, s.key)
}
