// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stacklok/skillsync-core/engine"
	"github.com/stacklok/skillsync-core/logging"
)

// DefaultPollInterval is how often the poller refreshes caches.
const DefaultPollInterval = 30 * time.Minute

// Poller periodically refreshes the cached manifest and remote listings
// and recomputes pending counts. Refreshes may overlap a user-triggered
// sync; both write independent state slots and the last writer wins, which
// is acceptable because only caches are involved, never the ledgers.
type Poller struct {
	engine   *engine.Engine
	interval time.Duration
	logger   *slog.Logger
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithPollInterval overrides the refresh interval.
func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = interval
	}
}

// WithPollLogger sets the poller's logger.
func WithPollLogger(logger *slog.Logger) PollerOption {
	return func(p *Poller) {
		p.logger = logger
	}
}

// NewPoller creates a cache refresh poller.
func NewPoller(e *engine.Engine, opts ...PollerOption) *Poller {
	p := &Poller{
		engine:   e,
		interval: DefaultPollInterval,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run refreshes on the configured interval until ctx is canceled. Refresh
// failures are logged and the next tick tries again.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("poller started", "interval", p.interval)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return
		case <-ticker.C:
			if err := p.engine.Refresh(ctx); err != nil {
				p.logger.Warn("periodic refresh failed", "error", err)
			}
		}
	}
}
