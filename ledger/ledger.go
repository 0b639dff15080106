// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"context"
	"time"

	"github.com/stacklok/skillsync-core/state"
)

// SkillRecord tracks one skill this tool created or adopted on the remote
// service. Records are keyed by skill name and never expire on their own;
// removal is always an explicit user action.
type SkillRecord struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Fingerprint string `json:"contentFingerprint"`
	InstalledAt int64  `json:"installedAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// ConnectorRecord tracks one connector this tool created or adopted.
// Connectors carry no version or content; identity is the remote
// identifier plus the endpoint URL.
type ConnectorRecord struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ConnectorID string `json:"connectorId"`
	InstalledAt int64  `json:"installedAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// SkillLedger is the durable name→record map for managed skills.
type SkillLedger struct {
	slot *state.Slot[map[string]SkillRecord]
	now  func() time.Time
}

// NewSkillLedger creates a skill ledger over a state store.
func NewSkillLedger(store state.Store, opts ...Option) *SkillLedger {
	cfg := newConfig(opts)
	return &SkillLedger{
		slot: state.NewSlot[map[string]SkillRecord](store, state.KeyManagedSkills),
		now:  cfg.now,
	}
}

// All returns every record, keyed by name. The map is a copy; mutating it
// does not touch the ledger.
func (l *SkillLedger) All(ctx context.Context) (map[string]SkillRecord, error) {
	return l.slot.Get(ctx, map[string]SkillRecord{})
}

// Get returns the record for a skill name.
func (l *SkillLedger) Get(ctx context.Context, name string) (SkillRecord, bool, error) {
	records, err := l.All(ctx)
	if err != nil {
		return SkillRecord{}, false, err
	}
	rec, ok := records[name]
	return rec, ok, nil
}

// Upsert records a skill as managed. A new record gets the installation
// timestamp; an existing one keeps it and refreshes only the update
// timestamp alongside version and fingerprint.
func (l *SkillLedger) Upsert(ctx context.Context, name, version, fingerprint string) error {
	records, err := l.All(ctx)
	if err != nil {
		return err
	}

	now := l.now().UnixMilli()
	rec, exists := records[name]
	if !exists {
		rec = SkillRecord{Name: name, InstalledAt: now}
	}
	rec.Version = version
	rec.Fingerprint = fingerprint
	rec.UpdatedAt = now
	records[name] = rec

	return l.slot.Set(ctx, records)
}

// Remove drops a skill's record. Removing an absent record is not an error.
func (l *SkillLedger) Remove(ctx context.Context, name string) error {
	records, err := l.All(ctx)
	if err != nil {
		return err
	}
	if _, ok := records[name]; !ok {
		return nil
	}
	delete(records, name)
	return l.slot.Set(ctx, records)
}

// ConnectorLedger is the durable name→record map for managed connectors.
type ConnectorLedger struct {
	slot *state.Slot[map[string]ConnectorRecord]
	now  func() time.Time
}

// NewConnectorLedger creates a connector ledger over a state store.
func NewConnectorLedger(store state.Store, opts ...Option) *ConnectorLedger {
	cfg := newConfig(opts)
	return &ConnectorLedger{
		slot: state.NewSlot[map[string]ConnectorRecord](store, state.KeyManagedConnectors),
		now:  cfg.now,
	}
}

// All returns every record, keyed by name. The map is a copy.
func (l *ConnectorLedger) All(ctx context.Context) (map[string]ConnectorRecord, error) {
	return l.slot.Get(ctx, map[string]ConnectorRecord{})
}

// Get returns the record for a connector name.
func (l *ConnectorLedger) Get(ctx context.Context, name string) (ConnectorRecord, bool, error) {
	records, err := l.All(ctx)
	if err != nil {
		return ConnectorRecord{}, false, err
	}
	rec, ok := records[name]
	return rec, ok, nil
}

// Upsert records a connector as managed, preserving the installation
// timestamp of an existing record.
func (l *ConnectorLedger) Upsert(ctx context.Context, name, connectorURL, connectorID string) error {
	records, err := l.All(ctx)
	if err != nil {
		return err
	}

	now := l.now().UnixMilli()
	rec, exists := records[name]
	if !exists {
		rec = ConnectorRecord{Name: name, InstalledAt: now}
	}
	rec.URL = connectorURL
	rec.ConnectorID = connectorID
	rec.UpdatedAt = now
	records[name] = rec

	return l.slot.Set(ctx, records)
}

// Remove drops a connector's record. Removing an absent record is not an
// error.
func (l *ConnectorLedger) Remove(ctx context.Context, name string) error {
	records, err := l.All(ctx)
	if err != nil {
		return err
	}
	if _, ok := records[name]; !ok {
		return nil
	}
	delete(records, name)
	return l.slot.Set(ctx, records)
}

type config struct {
	now func() time.Time
}

// Option configures a ledger.
type Option func(*config)

// WithClock sets the time source for record timestamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
