// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types carrying HTTP status codes, with
// authentication-failure classification for remote service errors.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// CodedError wraps an error with the HTTP status code that produced it.
// This allows errors to carry their status through the call stack, so the
// sync engine can distinguish authentication failures from everything else
// without string matching.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// IsAuthError reports whether this error represents an authentication
// failure. True exactly when the status is 401 or 403.
func (e *CodedError) IsAuthError() bool {
	return e.code == http.StatusUnauthorized || e.code == http.StatusForbidden
}

// WithCode wraps an error with an HTTP status code.
// The returned error implements Unwrap() for use with errors.Is() and errors.As().
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the HTTP status code from an error.
// It unwraps the error chain looking for a CodedError.
// If no CodedError is found, it returns http.StatusInternalServerError (500).
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return http.StatusInternalServerError
}

// IsAuthError reports whether an error chain contains a CodedError with an
// authentication status (401 or 403). Errors with no status code are never
// auth errors.
func IsAuthError(err error) bool {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.IsAuthError()
	}
	return false
}

// New creates a new error with the given message and HTTP status code.
// This is a convenience function equivalent to WithCode(errors.New(message), code).
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// Errorf creates a new formatted error with the given HTTP status code.
func Errorf(code int, format string, args ...any) error {
	return &CodedError{err: fmt.Errorf(format, args...), code: code}
}
