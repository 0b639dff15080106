// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "simple value", value: "org-12345", wantErr: false},
		{name: "cookie-ish value", value: "8b2e8b1c-0b8f-4d1e-9f6a-000000000000", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "CRLF injection", value: "value\r\nSet-Cookie: evil", wantErr: true},
		{name: "control character", value: "bad\x00value", wantErr: true},
		{name: "too long", value: strings.Repeat("a", 8193), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderValue(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEndpointURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https URL", url: "https://example.com/manifest.json", wantErr: false},
		{name: "http URL", url: "http://internal.example/skills/a.md", wantErr: false},
		{name: "with query", url: "https://example.com/a.skill?sig=abc", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "no scheme", url: "example.com/manifest.json", wantErr: true},
		{name: "file scheme", url: "file:///etc/passwd", wantErr: true},
		{name: "no host", url: "https:///manifest.json", wantErr: true},
		{name: "fragment", url: "https://example.com/a.md#section", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateEndpointURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
