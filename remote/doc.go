// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package remote implements the HTTP client for the remote service's
// per-organization skill and connector endpoints. Requests authenticate
// through the session credentials carried by the injected http.Client;
// failures surface as httperr-coded errors so authentication problems
// stay distinguishable from everything else.
package remote
