// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package service exposes the sync engine as a request/response boundary
// plus a background cache poller. Requests and responses are plain data
// so the boundary can be carried over any transport.
package service
