// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package session resolves the organization identifier that scopes remote
// API calls. Sources cover fixed identifiers, the environment, and the
// remote service's own session cookie; absence of an identifier is the
// signal that the user is logged out.
package session
