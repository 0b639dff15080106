// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
	"github.com/stacklok/skillsync-core/resolve"
)

// ManifestSource fetches the catalog manifest, the source of truth for
// every sync decision.
type ManifestSource interface {
	Fetch(ctx context.Context) (*manifest.Manifest, error)
}

// ContentResolver turns a catalog skill entry into upload-ready content.
type ContentResolver interface {
	Resolve(ctx context.Context, skill manifest.Skill) (*resolve.Content, error)
}

// RemoteClient performs entity operations against the remote service.
// Implementations must return httperr-coded errors on API failures so the
// engine can recognize authentication problems.
type RemoteClient interface {
	ListSkills(ctx context.Context, orgID string) ([]remote.Skill, error)
	CreateSkill(ctx context.Context, orgID string, content *resolve.Content) (*remote.Skill, error)
	UpdateSkill(ctx context.Context, orgID string, content *resolve.Content) (*remote.Skill, error)
	EnableSkill(ctx context.Context, orgID, skillID string) error
	DisableSkill(ctx context.Context, orgID, skillID string) error
	DeleteSkill(ctx context.Context, orgID, skillID string) error

	ListConnectors(ctx context.Context, orgID string) ([]remote.Connector, error)
	CreateConnector(ctx context.Context, orgID, name, connectorURL string) (*remote.Connector, error)
	DeleteConnector(ctx context.Context, orgID, connectorID string) error
}
