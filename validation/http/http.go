// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for URLs and header values used
// when talking to the remote service.
package http

import (
	"fmt"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It checks for CRLF injection and control characters. Session cookie values
// and organization identifiers pass through this before being used in requests.
func ValidateHeaderValue(value string) error {
	if value == "" {
		return fmt.Errorf("header value cannot be empty")
	}

	// Length limit to prevent DoS (common HTTP server limit)
	if len(value) > 8192 {
		return fmt.Errorf("header value exceeds maximum length of 8192 bytes")
	}

	// Use httpguts validation (same as Go's HTTP/2 implementation)
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// ValidateEndpointURL validates that a URL is usable as a service endpoint:
// manifest locations, skill sources, and connector URLs.
//
// A valid endpoint URL must:
//   - Parse as a URL
//   - Include an http or https scheme
//   - Include a host
//   - Not contain a fragment
func ValidateEndpointURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must use http or https scheme: %s", rawURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must include a host: %s", rawURL)
	}

	if parsed.Fragment != "" {
		return fmt.Errorf("URL must not contain a fragment: %s", rawURL)
	}

	return nil
}
