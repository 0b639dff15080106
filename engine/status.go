// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"

	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/session"
)

// Status is a snapshot of sync state for presentation: classified
// entities, last-run results, and pending counts.
type Status struct {
	LoggedIn             bool                 `json:"loggedIn"`
	Manifest             *manifest.Manifest   `json:"manifest"`
	Skills               []SkillWithState     `json:"skills"`
	Connectors           []ConnectorWithState `json:"connectors"`
	LastSyncTime         int64                `json:"lastSyncTime"`
	SyncResults          []SkillResult        `json:"syncResults"`
	ConnectorSyncResults []ConnectorResult    `json:"connectorSyncResults"`
	Pending              PendingCounts        `json:"pendingCounts"`
}

// Status builds the current status snapshot. With an active session it
// refreshes the manifest and remote listings first, falling back to cached
// copies when a refresh fails; logged out it returns an empty snapshot.
func (e *Engine) Status(ctx context.Context) (*Status, error) {
	orgID, err := e.sessions.OrgID(ctx)
	if errors.Is(err, session.ErrNotAuthenticated) {
		return &Status{
			Skills:               []SkillWithState{},
			Connectors:           []ConnectorWithState{},
			SyncResults:          []SkillResult{},
			ConnectorSyncResults: []ConnectorResult{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	skills, err := e.cachedSkills.Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	conns, err := e.cachedConns.Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	man, err := e.cachedManifest.Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	// Prefer live data; stale caches are acceptable when a fetch fails.
	if fresh, err := e.client.ListSkills(ctx, orgID); err == nil {
		skills = fresh
		if err := e.cachedSkills.Set(ctx, fresh); err != nil {
			e.logger.Warn("failed to cache skill list", "error", err)
		}
	} else {
		e.logger.Warn("skill list refresh failed", "error", err)
	}
	if fresh, err := e.client.ListConnectors(ctx, orgID); err == nil {
		conns = fresh
		if err := e.cachedConns.Set(ctx, fresh); err != nil {
			e.logger.Warn("failed to cache connector list", "error", err)
		}
	} else {
		e.logger.Warn("connector list refresh failed", "error", err)
	}
	if fresh, err := e.manifests.Fetch(ctx); err == nil {
		man = fresh
		if err := e.cachedManifest.Set(ctx, fresh); err != nil {
			e.logger.Warn("failed to cache manifest", "error", err)
		}
	} else {
		e.logger.Warn("manifest refresh failed", "error", err)
	}

	skillRecords, err := e.skills.All(ctx)
	if err != nil {
		return nil, err
	}
	connRecords, err := e.connectors.All(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := e.UpdatePendingCounts(ctx)
	if err != nil {
		return nil, err
	}

	lastSync, err := e.lastSync.Get(ctx, 0)
	if err != nil {
		return nil, err
	}
	results, err := e.skillResults.Get(ctx, []SkillResult{})
	if err != nil {
		return nil, err
	}
	connResults, err := e.connResults.Get(ctx, []ConnectorResult{})
	if err != nil {
		return nil, err
	}

	return &Status{
		LoggedIn:             true,
		Manifest:             man,
		Skills:               SkillStates(skills, man, skillRecords),
		Connectors:           ConnectorStates(conns, man, connRecords),
		LastSyncTime:         lastSync,
		SyncResults:          results,
		ConnectorSyncResults: connResults,
		Pending:              pending,
	}, nil
}

// Refresh is the lightweight periodic pass: re-fetch the manifest and
// remote listings into the caches and recompute pending counts. It never
// touches the ledgers and may overlap a running sync; every slot write is
// last-writer-wins.
func (e *Engine) Refresh(ctx context.Context) error {
	orgID, err := e.sessions.OrgID(ctx)
	if errors.Is(err, session.ErrNotAuthenticated) {
		return nil
	}
	if err != nil {
		return err
	}

	man, err := e.manifests.Fetch(ctx)
	if err != nil {
		return err
	}
	if err := e.cachedManifest.Set(ctx, man); err != nil {
		return err
	}

	skills, err := e.client.ListSkills(ctx, orgID)
	if err != nil {
		return err
	}
	if err := e.cachedSkills.Set(ctx, skills); err != nil {
		return err
	}

	conns, err := e.client.ListConnectors(ctx, orgID)
	if err != nil {
		return err
	}
	if err := e.cachedConns.Set(ctx, conns); err != nil {
		return err
	}

	_, err = e.UpdatePendingCounts(ctx)
	return err
}
