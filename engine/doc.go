// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package engine implements the reconciliation core: given the catalog
manifest, the remote entity listings, and the managed-entity ledgers, it
decides per entry whether to create, update, skip, or report an error, and
executes those decisions against the remote service.

Connectors sync before skills because skills may depend on connector names.
Per-entry failures never abort a run; manifest failures and authentication
failures do, preserving the results accumulated up to that point. The state
classifier and pending-change calculator are independent read-only views
over the same snapshots and never mutate anything.

All collaborators enter through interfaces (ManifestSource, ContentResolver,
RemoteClient, session.Source, state.Store), so the engine can be exercised
entirely against mocks.
*/
package engine
