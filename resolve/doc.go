// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package resolve fetches catalog skill sources and normalizes them into
// upload-ready content. A source is either a plain skill document or a
// pre-packaged .skill bundle; both yield a Content with a fingerprint
// derived from the instruction text.
package resolve
