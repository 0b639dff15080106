// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation for URLs and HTTP header values.

ValidateEndpointURL guards every URL the system dials: the manifest
location, per-skill source URLs, and connector endpoints declared in the
manifest. ValidateHeaderValue rejects session cookie values that would
corrupt an outgoing request.
*/
package http
