// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stacklok/skillsync-core/engine"
	"github.com/stacklok/skillsync-core/logging"
	"github.com/stacklok/skillsync-core/session"
)

// Request is a sync operation request. The concrete types below are the
// complete set; anything else is rejected by Dispatch.
type Request interface {
	isRequest()
}

// CheckAuth asks whether an active session exists.
type CheckAuth struct{}

// GetStatus asks for the full status snapshot.
type GetStatus struct{}

// Sync triggers a full sync run.
type Sync struct{}

// SyncSkill triggers a targeted sync of one catalog skill.
type SyncSkill struct {
	SkillName string `json:"skillName"`
}

// ToggleSkill enables or disables a remote skill.
type ToggleSkill struct {
	SkillID string `json:"skillId"`
	Enabled bool   `json:"enabled"`
}

// DeleteSkill removes a remote skill and its tracking record.
type DeleteSkill struct {
	SkillID   string `json:"skillId"`
	SkillName string `json:"skillName"`
}

// DeleteConnector removes a remote connector and its tracking record.
type DeleteConnector struct {
	ConnectorID   string `json:"connectorId"`
	ConnectorName string `json:"connectorName"`
}

// GetPending asks for the last computed pending counts.
type GetPending struct{}

func (CheckAuth) isRequest()       {}
func (GetStatus) isRequest()       {}
func (Sync) isRequest()            {}
func (SyncSkill) isRequest()       {}
func (ToggleSkill) isRequest()     {}
func (DeleteSkill) isRequest()     {}
func (DeleteConnector) isRequest() {}
func (GetPending) isRequest()      {}

// AuthResponse answers CheckAuth.
type AuthResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	OrgID    string `json:"orgId,omitempty"`
}

// Handler dispatches requests to the engine. All responses are plain data
// types, so the boundary serializes cleanly.
type Handler struct {
	engine *engine.Engine
	logger *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the handler's logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a request handler over an engine.
func NewHandler(e *engine.Engine, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine: e,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Dispatch routes one request and returns its response value.
func (h *Handler) Dispatch(ctx context.Context, req Request) (any, error) {
	switch r := req.(type) {
	case CheckAuth:
		return h.checkAuth(ctx)
	case GetStatus:
		return h.engine.Status(ctx)
	case Sync:
		return h.engine.RunFullSync(ctx), nil
	case SyncSkill:
		return h.engine.SyncSkill(ctx, r.SkillName), nil
	case ToggleSkill:
		return nil, h.engine.ToggleSkill(ctx, r.SkillID, r.Enabled)
	case DeleteSkill:
		return nil, h.engine.DeleteSkill(ctx, r.SkillID, r.SkillName)
	case DeleteConnector:
		return nil, h.engine.DeleteConnector(ctx, r.ConnectorID, r.ConnectorName)
	case GetPending:
		return h.engine.Pending(ctx)
	default:
		h.logger.Warn("unknown request type", "request", fmt.Sprintf("%T", req))
		return nil, fmt.Errorf("unknown request type %T", req)
	}
}

func (h *Handler) checkAuth(ctx context.Context) (*AuthResponse, error) {
	orgID, err := h.engine.OrgID(ctx)
	if errors.Is(err, session.ErrNotAuthenticated) {
		return &AuthResponse{LoggedIn: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &AuthResponse{LoggedIn: true, OrgID: orgID}, nil
}
