// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	validation "github.com/stacklok/skillsync-core/validation/http"
)

// maxManifestSize is the maximum size of a fetched manifest document (4MB).
const maxManifestSize = 4 * 1024 * 1024

// Client fetches and validates the catalog manifest.
type Client struct {
	manifestURL string
	httpClient  *http.Client
	now         func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for manifest fetches.
// The default is [http.DefaultClient].
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock sets the time source used for cache-defeating query parameters.
// Intended for tests.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a manifest client for the given manifest URL.
func NewClient(manifestURL string, opts ...ClientOption) (*Client, error) {
	if err := validation.ValidateEndpointURL(manifestURL); err != nil {
		return nil, fmt.Errorf("manifest URL: %w", err)
	}

	c := &Client{
		manifestURL: manifestURL,
		httpClient:  http.DefaultClient,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch retrieves, parses, and validates the manifest. The manifest and the
// sources it references change between polls, so every fetch bypasses
// caches: a cache-defeating query parameter plus Cache-Control: no-store.
// All failures are manifest Errors.
func (c *Client) Fetch(ctx context.Context) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, CacheBust(c.manifestURL, c.now()), nil)
	if err != nil {
		return nil, newError("building manifest request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError("failed to fetch manifest: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError("failed to fetch manifest: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize+1))
	if err != nil {
		return nil, newError("reading manifest body: %w", err)
	}
	if len(data) > maxManifestSize {
		return nil, newError("manifest exceeds maximum size of %d bytes", maxManifestSize)
	}

	if err := ValidateBytes(data); err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, newError("invalid JSON in manifest: %w", err)
	}

	return &m, nil
}

// CacheBust appends a cache-defeating query parameter to a URL, preserving
// any existing query string.
func CacheBust(rawURL string, now time.Time) string {
	separator := "?"
	if u, err := url.Parse(rawURL); err == nil && u.RawQuery != "" {
		separator = "&"
	}
	return rawURL + separator + "_cb=" + strconv.FormatInt(now.UnixMilli(), 10)
}
