// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package state provides durable key→value slot storage for sync state:
// ledgers, cached remote listings, last-run results, and pending counts.
// Slots are independent of each other and written whole, last writer wins.
// The SQLite backend is the durable default; the memory backend serves
// tests and one-shot runs.
package state
