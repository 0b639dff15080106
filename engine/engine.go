// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stacklok/skillsync-core/httperr"
	"github.com/stacklok/skillsync-core/ledger"
	"github.com/stacklok/skillsync-core/logging"
	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/remote"
	"github.com/stacklok/skillsync-core/resolve"
	"github.com/stacklok/skillsync-core/session"
	"github.com/stacklok/skillsync-core/state"
)

// User-facing failure messages. These cross the service boundary as plain
// strings, so they must stand on their own without error chains.
const (
	msgNotLoggedIn = "not logged in: no active session with the remote service"
	msgAuthFailed  = "authentication failed: please log in to the remote service again"
)

// Config carries the engine's required collaborators.
type Config struct {
	Manifest ManifestSource
	Resolver ContentResolver
	Remote   RemoteClient
	Sessions session.Source
	Store    state.Store
}

// Engine reconciles the catalog manifest against remote state and the
// managed-entity ledgers. Runs are sequential per engine; the engine does
// not guard against concurrent full syncs (last writer wins on every
// state slot).
type Engine struct {
	manifests ManifestSource
	resolver  ContentResolver
	client    RemoteClient
	sessions  session.Source

	skills     *ledger.SkillLedger
	connectors *ledger.ConnectorLedger

	lastSync       *state.Slot[int64]
	skillResults   *state.Slot[[]SkillResult]
	connResults    *state.Slot[[]ConnectorResult]
	cachedSkills   *state.Slot[[]remote.Skill]
	cachedConns    *state.Slot[[]remote.Connector]
	cachedManifest *state.Slot[*manifest.Manifest]
	pending        *state.Slot[PendingCounts]

	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock sets the engine's time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates a reconciliation engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	switch {
	case cfg.Manifest == nil:
		return nil, errors.New("manifest source is required")
	case cfg.Resolver == nil:
		return nil, errors.New("content resolver is required")
	case cfg.Remote == nil:
		return nil, errors.New("remote client is required")
	case cfg.Sessions == nil:
		return nil, errors.New("session source is required")
	case cfg.Store == nil:
		return nil, errors.New("state store is required")
	}

	e := &Engine{
		manifests: cfg.Manifest,
		resolver:  cfg.Resolver,
		client:    cfg.Remote,
		sessions:  cfg.Sessions,

		lastSync:       state.NewSlot[int64](cfg.Store, state.KeyLastSyncTime),
		skillResults:   state.NewSlot[[]SkillResult](cfg.Store, state.KeySyncResults),
		connResults:    state.NewSlot[[]ConnectorResult](cfg.Store, state.KeyConnectorSyncResults),
		cachedSkills:   state.NewSlot[[]remote.Skill](cfg.Store, state.KeyCachedSkills),
		cachedConns:    state.NewSlot[[]remote.Connector](cfg.Store, state.KeyCachedConnectors),
		cachedManifest: state.NewSlot[*manifest.Manifest](cfg.Store, state.KeyCachedManifest),
		pending:        state.NewSlot[PendingCounts](cfg.Store, state.KeyPendingCounts),

		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.skills = ledger.NewSkillLedger(cfg.Store, ledger.WithClock(e.now))
	e.connectors = ledger.NewConnectorLedger(cfg.Store, ledger.WithClock(e.now))

	return e, nil
}

// Skills returns the managed-skill ledger.
func (e *Engine) Skills() *ledger.SkillLedger {
	return e.skills
}

// Connectors returns the managed-connector ledger.
func (e *Engine) Connectors() *ledger.ConnectorLedger {
	return e.connectors
}

// OrgID resolves the active organization identifier.
// session.ErrNotAuthenticated means the user is logged out.
func (e *Engine) OrgID(ctx context.Context) (string, error) {
	return e.sessions.OrgID(ctx)
}

// RunFullSync reconciles every catalog entry against the remote service.
// Connectors sync before skills so dependency checks see fresh state.
// Per-entry failures become per-entry results; manifest and authentication
// failures abort the run, preserving results accumulated so far.
func (e *Engine) RunFullSync(ctx context.Context) *Report {
	runID := uuid.NewString()
	log := e.logger.With("run_id", runID)
	log.Info("starting full sync")

	report := &Report{
		Results:          []SkillResult{},
		ConnectorResults: []ConnectorResult{},
	}

	orgID, err := e.sessions.OrgID(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			report.Error = msgNotLoggedIn
		} else {
			report.Error = err.Error()
		}
		log.Warn("sync aborted before any remote call", "error", err)
		return report
	}

	man, err := e.manifests.Fetch(ctx)
	if err != nil {
		report.Error = err.Error()
		log.Warn("manifest fetch failed", "error", err)
		return report
	}

	connResults, err := e.syncConnectors(ctx, log, orgID, man.Connectors)
	report.ConnectorResults = connResults
	if err != nil {
		report.Error = abortMessage(err)
		return report
	}

	remoteSkills, err := e.client.ListSkills(ctx, orgID)
	if err != nil {
		report.Error = abortMessage(err)
		log.Warn("skill list failed", "error", err)
		return report
	}
	skillsByName := indexSkills(remoteSkills)

	// Post-connector-sync list, so just-created connectors satisfy
	// dependency checks.
	remoteConns, err := e.client.ListConnectors(ctx, orgID)
	if err != nil {
		report.Error = abortMessage(err)
		log.Warn("connector list failed", "error", err)
		return report
	}
	connectorNames := map[string]bool{}
	for _, conn := range remoteConns {
		connectorNames[strings.ToLower(conn.Name)] = true
	}

	records, err := e.skills.All(ctx)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	for _, entry := range man.Skills {
		result, err := e.syncSkillEntry(ctx, log, orgID, entry, skillsByName[strings.ToLower(entry.Name)], records, connectorNames)
		if err != nil {
			report.Error = abortMessage(err)
			log.Warn("sync aborted", "skill", entry.Name, "error", err)
			return report
		}
		report.Results = append(report.Results, result)
	}

	e.persistRunState(ctx, log, orgID, man, report)

	if _, err := e.UpdatePendingCounts(ctx); err != nil {
		log.Warn("pending count update failed", "error", err)
	}

	report.Success = true
	log.Info("full sync finished",
		"skills", len(report.Results),
		"connectors", len(report.ConnectorResults))
	return report
}

// syncConnectors reconciles catalog connectors. URL matches adopt the
// existing connector; name matches with a different URL are conflicts and
// leave the ledger alone. The returned error is non-nil only for aborting
// failures (list failure or an authentication error).
func (e *Engine) syncConnectors(ctx context.Context, log *slog.Logger, orgID string, entries []manifest.Connector) ([]ConnectorResult, error) {
	results := []ConnectorResult{}
	if len(entries) == 0 {
		return results, nil
	}

	existing, err := e.client.ListConnectors(ctx, orgID)
	if err != nil {
		return results, err
	}

	byURL := map[string]remote.Connector{}
	byName := map[string]remote.Connector{}
	for _, conn := range existing {
		byURL[conn.URL] = conn
		byName[strings.ToLower(conn.Name)] = conn
	}

	for _, entry := range entries {
		if match, ok := byURL[entry.URL]; ok {
			if err := e.connectors.Upsert(ctx, entry.Name, entry.URL, match.EntityID()); err != nil {
				return results, err
			}
			results = append(results, ConnectorResult{
				ConnectorName: entry.Name,
				Action:        ActionSkipped,
				Message:       "already installed",
			})
			continue
		}

		if match, ok := byName[strings.ToLower(entry.Name)]; ok && match.URL != entry.URL {
			results = append(results, ConnectorResult{
				ConnectorName: entry.Name,
				Action:        ActionSkipped,
				Message:       "name conflict: connector exists with a different URL",
			})
			continue
		}

		created, err := e.client.CreateConnector(ctx, orgID, entry.Name, entry.URL)
		if err != nil {
			if httperr.IsAuthError(err) {
				return results, err
			}
			log.Warn("connector create failed", "connector", entry.Name, "error", err)
			results = append(results, ConnectorResult{
				ConnectorName: entry.Name,
				Action:        ActionError,
				Message:       err.Error(),
			})
			continue
		}

		if err := e.connectors.Upsert(ctx, entry.Name, entry.URL, created.EntityID()); err != nil {
			return results, err
		}
		results = append(results, ConnectorResult{
			ConnectorName: entry.Name,
			Action:        ActionCreated,
		})
	}

	return results, nil
}

// syncSkillEntry reconciles one catalog skill against its (possibly absent)
// remote counterpart. The returned error is non-nil only for authentication
// failures, which abort the whole run.
func (e *Engine) syncSkillEntry(
	ctx context.Context,
	log *slog.Logger,
	orgID string,
	entry manifest.Skill,
	existing *remote.Skill,
	records map[string]ledger.SkillRecord,
	connectorNames map[string]bool,
) (SkillResult, error) {
	if len(entry.Connectors) > 0 {
		if missing := missingNames(entry.Connectors, connectorNames); len(missing) > 0 {
			return SkillResult{
				SkillName: entry.Name,
				Action:    ActionError,
				Message:   fmt.Sprintf("missing connectors: %s", strings.Join(missing, ", ")),
			}, nil
		}
	}

	content, err := e.resolver.Resolve(ctx, entry)
	if err != nil {
		return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}, nil
	}

	if existing == nil {
		return e.createSkill(ctx, log, orgID, entry, content)
	}

	record, managed := lookupRecord(records, entry.Name)
	if !managed {
		// Present remotely but untracked: adopt without touching the
		// remote entity.
		if err := e.skills.Upsert(ctx, entry.Name, entry.Version, content.Fingerprint); err != nil {
			return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}, nil
		}
		return SkillResult{
			SkillName: entry.Name,
			Action:    ActionSkipped,
			Message:   "already exists, now tracked",
		}, nil
	}

	if record.Version == entry.Version && record.Fingerprint == content.Fingerprint {
		return SkillResult{
			SkillName: entry.Name,
			Action:    ActionSkipped,
			Message:   "already up to date",
		}, nil
	}

	// Version drift is the fast path; fingerprint drift catches content
	// changes published without a version bump.
	if _, err := e.client.UpdateSkill(ctx, orgID, content); err != nil {
		if httperr.IsAuthError(err) {
			return SkillResult{}, err
		}
		log.Warn("skill update failed", "skill", entry.Name, "error", err)
		return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}, nil
	}
	if err := e.skills.Upsert(ctx, entry.Name, entry.Version, content.Fingerprint); err != nil {
		return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}, nil
	}

	return SkillResult{
		SkillName: entry.Name,
		Action:    ActionUpdated,
		Message:   fmt.Sprintf("updated to v%s", entry.Version),
	}, nil
}

// createSkill creates a missing skill, tracks it, and applies the entry's
// enabledByDefault=false by disabling after creation. A disable failure is
// logged only; the result stays created.
func (e *Engine) createSkill(ctx context.Context, log *slog.Logger, orgID string, entry manifest.Skill, content *resolve.Content) (SkillResult, error) {
	created, err := e.client.CreateSkill(ctx, orgID, content)
	if err != nil {
		if httperr.IsAuthError(err) {
			return SkillResult{}, err
		}
		log.Warn("skill create failed", "skill", entry.Name, "error", err)
		return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}, nil
	}

	if err := e.skills.Upsert(ctx, entry.Name, entry.Version, content.Fingerprint); err != nil {
		return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}, nil
	}

	if entry.EnabledByDefault != nil && !*entry.EnabledByDefault {
		if err := e.client.DisableSkill(ctx, orgID, created.ID); err != nil {
			log.Warn("failed to disable skill after create", "skill", entry.Name, "error", err)
		}
	}

	return SkillResult{
		SkillName: entry.Name,
		Action:    ActionCreated,
		Message:   "v" + entry.Version,
	}, nil
}

// SyncSkill reconciles exactly one named catalog skill, skipping connector
// sync and dependency checks. Used for targeted re-sync.
func (e *Engine) SyncSkill(ctx context.Context, skillName string) SkillResult {
	log := e.logger.With("run_id", uuid.NewString(), "skill", skillName)
	log.Info("starting single-skill sync")

	orgID, err := e.sessions.OrgID(ctx)
	if err != nil {
		return SkillResult{SkillName: skillName, Action: ActionError, Message: msgNotLoggedIn}
	}

	man, err := e.manifests.Fetch(ctx)
	if err != nil {
		return SkillResult{SkillName: skillName, Action: ActionError, Message: err.Error()}
	}

	entry := man.FindSkill(skillName)
	if entry == nil {
		return SkillResult{SkillName: skillName, Action: ActionError, Message: "skill not found in catalog"}
	}

	remoteSkills, err := e.client.ListSkills(ctx, orgID)
	if err != nil {
		return SkillResult{SkillName: skillName, Action: ActionError, Message: abortMessage(err)}
	}
	existing := indexSkills(remoteSkills)[strings.ToLower(entry.Name)]

	content, err := e.resolver.Resolve(ctx, *entry)
	if err != nil {
		return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}
	}

	var result SkillResult
	if existing != nil {
		if _, err := e.client.UpdateSkill(ctx, orgID, content); err != nil {
			return SkillResult{SkillName: entry.Name, Action: ActionError, Message: abortMessage(err)}
		}
		if err := e.skills.Upsert(ctx, entry.Name, entry.Version, content.Fingerprint); err != nil {
			return SkillResult{SkillName: entry.Name, Action: ActionError, Message: err.Error()}
		}
		result = SkillResult{
			SkillName: entry.Name,
			Action:    ActionUpdated,
			Message:   fmt.Sprintf("updated to v%s", entry.Version),
		}
	} else {
		result, err = e.createSkill(ctx, log, orgID, *entry, content)
		if err != nil {
			return SkillResult{SkillName: entry.Name, Action: ActionError, Message: abortMessage(err)}
		}
		if result.Action == ActionError {
			return result
		}
	}

	if updated, err := e.client.ListSkills(ctx, orgID); err == nil {
		if err := e.cachedSkills.Set(ctx, updated); err != nil {
			log.Warn("failed to cache skill list", "error", err)
		}
	}
	if err := e.cachedManifest.Set(ctx, man); err != nil {
		log.Warn("failed to cache manifest", "error", err)
	}
	if _, err := e.UpdatePendingCounts(ctx); err != nil {
		log.Warn("pending count update failed", "error", err)
	}

	return result
}

// persistRunState refreshes the remote listings and writes the run's
// outcome to state. These are independent slot writes, not a transaction;
// individual failures are logged and skipped.
func (e *Engine) persistRunState(ctx context.Context, log *slog.Logger, orgID string, man *manifest.Manifest, report *Report) {
	if skills, err := e.client.ListSkills(ctx, orgID); err == nil {
		if err := e.cachedSkills.Set(ctx, skills); err != nil {
			log.Warn("failed to cache skill list", "error", err)
		}
	} else {
		log.Warn("post-sync skill list failed", "error", err)
	}
	if conns, err := e.client.ListConnectors(ctx, orgID); err == nil {
		if err := e.cachedConns.Set(ctx, conns); err != nil {
			log.Warn("failed to cache connector list", "error", err)
		}
	} else {
		log.Warn("post-sync connector list failed", "error", err)
	}

	if err := e.lastSync.Set(ctx, e.now().UnixMilli()); err != nil {
		log.Warn("failed to record sync time", "error", err)
	}
	if err := e.skillResults.Set(ctx, report.Results); err != nil {
		log.Warn("failed to record skill results", "error", err)
	}
	if err := e.connResults.Set(ctx, report.ConnectorResults); err != nil {
		log.Warn("failed to record connector results", "error", err)
	}
	if err := e.cachedManifest.Set(ctx, man); err != nil {
		log.Warn("failed to cache manifest", "error", err)
	}
}

// ToggleSkill enables or disables a remote skill and refreshes the cached
// skill list.
func (e *Engine) ToggleSkill(ctx context.Context, skillID string, enabled bool) error {
	orgID, err := e.sessions.OrgID(ctx)
	if err != nil {
		return err
	}

	if enabled {
		err = e.client.EnableSkill(ctx, orgID, skillID)
	} else {
		err = e.client.DisableSkill(ctx, orgID, skillID)
	}
	if err != nil {
		return err
	}

	e.refreshSkillCache(ctx, orgID)
	return nil
}

// DeleteSkill removes a remote skill and drops its ledger record. This is
// the only path that removes skill records; sync never deletes them.
func (e *Engine) DeleteSkill(ctx context.Context, skillID, skillName string) error {
	orgID, err := e.sessions.OrgID(ctx)
	if err != nil {
		return err
	}
	if err := e.client.DeleteSkill(ctx, orgID, skillID); err != nil {
		return err
	}
	if err := e.skills.Remove(ctx, skillName); err != nil {
		return err
	}
	e.refreshSkillCache(ctx, orgID)
	return nil
}

// DeleteConnector removes a remote connector and drops its ledger record.
func (e *Engine) DeleteConnector(ctx context.Context, connectorID, connectorName string) error {
	orgID, err := e.sessions.OrgID(ctx)
	if err != nil {
		return err
	}
	if err := e.client.DeleteConnector(ctx, orgID, connectorID); err != nil {
		return err
	}
	if err := e.connectors.Remove(ctx, connectorName); err != nil {
		return err
	}
	if conns, err := e.client.ListConnectors(ctx, orgID); err == nil {
		_ = e.cachedConns.Set(ctx, conns)
	}
	return nil
}

func (e *Engine) refreshSkillCache(ctx context.Context, orgID string) {
	skills, err := e.client.ListSkills(ctx, orgID)
	if err != nil {
		e.logger.Warn("skill cache refresh failed", "error", err)
		return
	}
	if err := e.cachedSkills.Set(ctx, skills); err != nil {
		e.logger.Warn("failed to cache skill list", "error", err)
	}
}

// abortMessage maps an aborting error to its user-facing message,
// distinguishing authentication failures from everything else.
func abortMessage(err error) string {
	if httperr.IsAuthError(err) {
		return msgAuthFailed
	}
	return err.Error()
}

// indexSkills builds a lowercase-name index over remote skills.
func indexSkills(skills []remote.Skill) map[string]*remote.Skill {
	byName := map[string]*remote.Skill{}
	for i := range skills {
		byName[strings.ToLower(skills[i].Name)] = &skills[i]
	}
	return byName
}

// lookupRecord finds a ledger record by name, case-insensitively. Stored
// names keep their original case.
func lookupRecord(records map[string]ledger.SkillRecord, name string) (ledger.SkillRecord, bool) {
	if rec, ok := records[name]; ok {
		return rec, true
	}
	lower := strings.ToLower(name)
	for key, rec := range records {
		if strings.ToLower(key) == lower {
			return rec, true
		}
	}
	return ledger.SkillRecord{}, false
}
