// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package env provides an interface for environment variable access so that
// session resolution and CLI configuration can be tested without mutating
// the process environment.
package env
