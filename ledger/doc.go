// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ledger tracks which remote entities this tool installed. The
// ledger is the source of the managed/orphaned distinction: entities it
// lists were created or adopted by a sync run, everything else on the
// remote service is left alone. Records persist in whole-map state slots
// and are only ever mutated by the sync engine or explicit user deletes.
package ledger
