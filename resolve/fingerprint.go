// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import "github.com/opencontainers/go-digest"

// fingerprintLen is the number of hex characters retained from the digest.
const fingerprintLen = 16

// Fingerprint computes a short sha256 hex digest of skill instructions.
// It is a change-detection token, not a security boundary: equal
// fingerprints mean identical instruction text.
func Fingerprint(instructions string) string {
	return digest.FromString(instructions).Encoded()[:fingerprintLen]
}
