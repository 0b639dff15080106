// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stacklok/skillsync-core/bundle"
	"github.com/stacklok/skillsync-core/manifest"
	"github.com/stacklok/skillsync-core/skillfile"
)

// bundleSuffix marks a catalog source as a pre-packaged bundle.
const bundleSuffix = ".skill"

// maxSourceSize is the maximum size of a fetched skill source (100MB).
const maxSourceSize = 100 * 1024 * 1024

// Content is the resolved form of a catalog skill entry: what gets sent to
// the remote service. It is derived fresh on every sync run and never
// persisted; only its fingerprint is.
type Content struct {
	Name         string
	Description  string
	Instructions string

	// Bundle holds the pre-packaged .skill archive bytes when the source
	// addressed one. The bytes are passed through to upload untouched;
	// rebuilding the archive would break the remote service's checksums.
	Bundle []byte

	// Fingerprint is a short digest of Instructions, used for change
	// detection only.
	Fingerprint string
}

// Error represents a per-entry content fetch or parse failure. Resolution
// errors become per-entry sync results; they never abort a run.
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

// newError creates a resolution Error from a format string.
func newError(format string, args ...any) *Error {
	return &Error{err: fmt.Errorf(format, args...)}
}

// IsError reports whether an error chain contains a resolution Error.
func IsError(err error) bool {
	var re *Error
	return errors.As(err, &re)
}

// Resolver fetches and parses catalog skill sources.
type Resolver struct {
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets the HTTP client used for source fetches.
// The default is [http.DefaultClient].
func WithHTTPClient(hc *http.Client) Option {
	return func(r *Resolver) {
		r.httpClient = hc
	}
}

// WithClock sets the time source used for cache-defeating query parameters.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		httpClient: http.DefaultClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches a skill's source and produces its normalized content.
// Sources whose resolved path ends in .skill are treated as pre-packaged
// bundles; everything else is fetched as a plain skill document. Failures
// are resolution Errors.
func (r *Resolver) Resolve(ctx context.Context, skill manifest.Skill) (*Content, error) {
	if IsBundleSource(skill.Source) {
		return r.resolveBundle(ctx, skill)
	}
	return r.resolveDocument(ctx, skill)
}

// IsBundleSource reports whether a source URL addresses a pre-packaged
// bundle. Detection uses the suffix of the parsed URL path so that query
// parameters (signatures, tokens) do not defeat it; unparseable sources
// fall back to a raw suffix check.
func IsBundleSource(source string) bool {
	if u, err := url.Parse(source); err == nil && u.Path != "" {
		return strings.HasSuffix(strings.ToLower(u.Path), bundleSuffix)
	}
	return strings.HasSuffix(strings.ToLower(source), bundleSuffix)
}

func (r *Resolver) resolveDocument(ctx context.Context, skill manifest.Skill) (*Content, error) {
	body, err := r.fetch(ctx, skill.Source, "text/plain, text/markdown")
	if err != nil {
		return nil, newError("failed to fetch skill source for %q: %w", skill.Name, err)
	}

	doc, err := skillfile.Parse(string(body))
	if err != nil {
		return nil, newError("failed to parse skill source for %q: %w", skill.Name, err)
	}

	return contentFromDocument(skill, doc, nil), nil
}

func (r *Resolver) resolveBundle(ctx context.Context, skill manifest.Skill) (*Content, error) {
	data, err := r.fetch(ctx, skill.Source, "")
	if err != nil {
		return nil, newError("failed to fetch skill bundle for %q: %w", skill.Name, err)
	}

	text, found, err := bundle.ExtractDocument(data)
	if err != nil {
		return nil, newError("failed to read skill bundle for %q: %w", skill.Name, err)
	}
	if !found {
		return nil, newError("skill bundle for %q contains no %s document", skill.Name, skillfile.DefaultFilename)
	}

	doc, err := skillfile.Parse(text)
	if err != nil {
		return nil, newError("failed to parse document in skill bundle for %q: %w", skill.Name, err)
	}

	return contentFromDocument(skill, doc, data), nil
}

// contentFromDocument builds Content, falling back to the catalog entry's
// name and description when the document metadata leaves them empty.
func contentFromDocument(skill manifest.Skill, doc *skillfile.Document, bundleData []byte) *Content {
	c := &Content{
		Name:         doc.Name,
		Description:  doc.Description,
		Instructions: doc.Body,
		Bundle:       bundleData,
	}
	if c.Name == "" {
		c.Name = skill.Name
	}
	if c.Description == "" {
		c.Description = skill.Description
	}
	c.Fingerprint = Fingerprint(c.Instructions)
	return c
}

// fetch GETs a source URL fresh, bypassing caches.
func (r *Resolver) fetch(ctx context.Context, source, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifest.CacheBust(source, r.now()), nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSourceSize {
		return nil, fmt.Errorf("source exceeds maximum size of %d bytes", maxSourceSize)
	}
	return data, nil
}
