// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package bundle builds and reads .skill bundles: zip archives the remote
service accepts in place of a single skill document.

Bundles produced here are reproducible (sorted entries, fixed epoch
timestamps) and match the remote service's archive expectations: no
directory entries and a Unix creator-version tag. Pre-packaged bundles
fetched from a catalog source are never rebuilt; ExtractDocument reads the
embedded SKILL.md without touching the original bytes.
*/
package bundle
