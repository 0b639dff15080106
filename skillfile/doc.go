// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package skillfile parses skill documents: an optional metadata block between
"---" delimiter lines followed by an instruction body.

	---
	name: release-notes
	description: "Drafts release notes from merged PRs"
	---

	# Instructions
	...

Documents without a metadata block are treated as all body; the catalog
entry supplies name and description in that case. A metadata block that is
opened but never closed is a hard parse error.
*/
package skillfile
