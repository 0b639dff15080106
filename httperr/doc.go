// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes for remote API
error handling.

The remote service client wraps every non-2xx response in a CodedError, and
the sync engine uses the status code to decide propagation: authentication
failures (401/403) abort an entire sync run, while all other failures become
per-entry results.

# Basic Usage

	err := httperr.New("skill not found", http.StatusNotFound)
	err := httperr.WithCode(cause, http.StatusBadRequest)
	err := httperr.Errorf(resp.StatusCode, "upload failed: %s", resp.Status)

# Classification

	httperr.Code(err)        // status code, 500 if none attached
	httperr.IsAuthError(err) // true iff the chain carries a 401 or 403

CodedError supports the standard wrapping pattern; errors.Is and errors.As
see through it to the underlying cause.
*/
package httperr
