// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package manifest defines the remote catalog document and its fetcher.

The manifest is a JSON document enumerating the skills and connectors a
team wants installed; it is the source of truth for every sync decision.
Fetched bytes are validated against an embedded JSON schema before decoding,
so malformed catalogs fail with a tagged manifest Error and no remote call
is ever made on their behalf.
*/
package manifest
