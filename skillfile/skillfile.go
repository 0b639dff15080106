// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillfile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the line that opens and closes a metadata block.
const Delimiter = "---"

// DefaultFilename is the canonical name of a skill document inside a bundle.
const DefaultFilename = "SKILL.md"

// maxMetadataSize limits the metadata block to prevent YAML parsing attacks.
const maxMetadataSize = 64 * 1024

// Document is a parsed skill document: metadata plus instruction body.
type Document struct {
	// Name and Description come from the metadata block. Empty when the
	// document carries no metadata; callers fall back to catalog values.
	Name        string
	Description string

	// Body is the instruction text after the closing delimiter, or the
	// entire document when there is no metadata block.
	Body string

	// Meta holds every metadata key, including name and description.
	Meta map[string]string
}

// IsDocument reports whether text looks like a skill document with a
// metadata block, i.e. its trimmed form starts with the delimiter.
func IsDocument(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), Delimiter)
}

// Parse parses a skill document.
//
// A document that starts with a delimiter line carries a metadata block up
// to the next delimiter; everything after that is the body. A block that is
// opened but never closed is a parse error. A document without an opening
// delimiter is all body.
func Parse(text string) (*Document, error) {
	trimmed := strings.TrimSpace(text)

	if !strings.HasPrefix(trimmed, Delimiter) {
		return &Document{Body: trimmed, Meta: map[string]string{}}, nil
	}

	rest := trimmed[len(Delimiter):]
	endIdx := strings.Index(rest, Delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("skill document: metadata block missing closing delimiter (%s)", Delimiter)
	}

	block := rest[:endIdx]
	if len(block) > maxMetadataSize {
		return nil, fmt.Errorf("skill document: metadata block exceeds maximum size of %d bytes", maxMetadataSize)
	}

	body := strings.TrimSpace(rest[endIdx+len(Delimiter):])

	meta := parseMetadata(block)

	return &Document{
		Name:        meta["name"],
		Description: meta["description"],
		Body:        body,
		Meta:        meta,
	}, nil
}

// Compose renders a skill document with a name/description metadata block
// followed by the instruction body. It is the inverse of Parse for documents
// with simple metadata.
func Compose(name, description, body string) string {
	return fmt.Sprintf("%s\nname: %s\ndescription: %s\n%s\n\n%s", Delimiter, name, description, Delimiter, body)
}

// parseMetadata parses a metadata block into a key→value map. The block is
// YAML in the common case; documents that are not valid YAML (unquoted
// values containing colons, for instance) fall back to line-wise key:value
// parsing with quote stripping.
func parseMetadata(block string) map[string]string {
	meta := map[string]string{}

	var parsed map[string]any
	if err := yaml.Unmarshal([]byte(block), &parsed); err == nil {
		for key, value := range parsed {
			if s, ok := scalarString(value); ok {
				meta[key] = s
			}
		}
		return meta
	}

	for line := range strings.Lines(block) {
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) == "" {
			continue
		}
		meta[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	return meta
}

// scalarString renders a YAML scalar as a string. Nested structures are not
// valid metadata values and are dropped.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool, int, int64, float64:
		return fmt.Sprint(t), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// unquote strips one level of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
