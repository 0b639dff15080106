// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/manifest.schema.json
var embeddedSchemaFS embed.FS

// Error represents a manifest fetch, parse, or validation failure. Manifest
// errors abort a sync run before any remote mutation is attempted.
type Error struct {
	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// newError creates a manifest Error from a format string.
func newError(format string, args ...any) *Error {
	return &Error{err: fmt.Errorf(format, args...)}
}

// IsError reports whether an error chain contains a manifest Error.
func IsError(err error) bool {
	var me *Error
	return errors.As(err, &me)
}

// Validate validates the Manifest against the embedded catalog schema.
func (m *Manifest) Validate() error {
	data, err := json.Marshal(m)
	if err != nil {
		return newError("failed to serialize manifest: %w", err)
	}
	return ValidateBytes(data)
}

// ValidateBytes validates raw manifest JSON bytes against the embedded
// catalog schema. It returns a manifest Error listing every violation.
func ValidateBytes(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile("data/manifest.schema.json")
	if err != nil {
		return newError("failed to read embedded manifest schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return newError("manifest schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return newError("manifest schema validation failed: %s", strings.Join(msgs, "; "))
}
