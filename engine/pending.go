// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"strings"
)

// UpdatePendingCounts recomputes pending-change counts from the cached
// manifest, cached remote listings, and the skill ledger, then persists
// them. Without a session or a cached manifest the counts are all zero.
// Reads only caches: no remote calls.
func (e *Engine) UpdatePendingCounts(ctx context.Context) (PendingCounts, error) {
	zero := PendingCounts{
		NewSkillNames:     []string{},
		UpdatedSkillNames: []string{},
		NewConnectorNames: []string{},
	}

	if _, err := e.sessions.OrgID(ctx); err != nil {
		return zero, e.pending.Set(ctx, zero)
	}

	man, err := e.cachedManifest.Get(ctx, nil)
	if err != nil || man == nil {
		return zero, e.pending.Set(ctx, zero)
	}

	cachedSkills, err := e.cachedSkills.Get(ctx, nil)
	if err != nil {
		return zero, err
	}
	existingNames := map[string]bool{}
	for _, s := range cachedSkills {
		existingNames[strings.ToLower(s.Name)] = true
	}

	records, err := e.skills.All(ctx)
	if err != nil {
		return zero, err
	}

	cachedConns, err := e.cachedConns.Get(ctx, nil)
	if err != nil {
		return zero, err
	}
	existingURLs := map[string]bool{}
	for _, c := range cachedConns {
		existingURLs[c.URL] = true
	}

	counts := zero
	for _, conn := range man.Connectors {
		if !existingURLs[conn.URL] {
			counts.NewConnectorNames = append(counts.NewConnectorNames, conn.Name)
		}
	}

	for _, skill := range man.Skills {
		if !existingNames[strings.ToLower(skill.Name)] {
			counts.NewSkillNames = append(counts.NewSkillNames, skill.Name)
			continue
		}
		if record, tracked := lookupRecord(records, skill.Name); tracked && record.Version != skill.Version {
			counts.UpdatedSkillNames = append(counts.UpdatedSkillNames, skill.Name)
		}
	}

	counts.NewCount = len(counts.NewSkillNames)
	counts.UpdateCount = len(counts.UpdatedSkillNames)
	counts.NewConnectorCount = len(counts.NewConnectorNames)

	return counts, e.pending.Set(ctx, counts)
}

// Pending returns the last computed pending counts without recomputing.
func (e *Engine) Pending(ctx context.Context) (PendingCounts, error) {
	return e.pending.Get(ctx, PendingCounts{
		NewSkillNames:     []string{},
		UpdatedSkillNames: []string{},
		NewConnectorNames: []string{},
	})
}
