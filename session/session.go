// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stacklok/skillsync-core/env"
	validation "github.com/stacklok/skillsync-core/validation/http"
)

// OrgCookieName is the remote service's cookie holding the identifier of
// the organization the user last worked in.
const OrgCookieName = "lastActiveOrg"

// OrgIDEnv is the environment variable consulted by EnvSource.
const OrgIDEnv = "SKILLSYNC_ORG_ID"

// ErrNotAuthenticated indicates that no organization identifier could be
// determined, which means the user has no active session with the remote
// service.
var ErrNotAuthenticated = errors.New("not authenticated: no organization ID available")

// Source yields the organization identifier scoping all remote API calls.
// A Source returning ErrNotAuthenticated signals a logged-out user rather
// than a fault.
type Source interface {
	OrgID(ctx context.Context) (string, error)
}

// Static is a Source with a fixed organization identifier.
type Static string

// OrgID implements Source.
func (s Static) OrgID(_ context.Context) (string, error) {
	if s == "" {
		return "", ErrNotAuthenticated
	}
	return string(s), nil
}

// EnvSource reads the organization identifier from the environment.
type EnvSource struct {
	reader env.Reader
}

// NewEnvSource creates an environment-backed Source. A nil reader uses the
// process environment.
func NewEnvSource(reader env.Reader) *EnvSource {
	if reader == nil {
		reader = &env.OSReader{}
	}
	return &EnvSource{reader: reader}
}

// OrgID implements Source.
func (s *EnvSource) OrgID(_ context.Context) (string, error) {
	id := s.reader.Getenv(OrgIDEnv)
	if id == "" {
		return "", ErrNotAuthenticated
	}
	if err := validation.ValidateHeaderValue(id); err != nil {
		return "", fmt.Errorf("invalid organization ID from environment: %w", err)
	}
	return id, nil
}

// CookieSource reads the organization identifier from the remote service's
// session cookie jar. This mirrors how the service itself tracks the active
// organization, so an http.Client sharing the same jar is automatically
// scoped to the right account.
type CookieSource struct {
	jar     http.CookieJar
	siteURL *url.URL
}

// NewCookieSource creates a cookie-backed Source reading OrgCookieName for
// siteURL from jar.
func NewCookieSource(jar http.CookieJar, siteURL string) (*CookieSource, error) {
	if jar == nil {
		return nil, errors.New("cookie jar is required")
	}
	if err := validation.ValidateEndpointURL(siteURL); err != nil {
		return nil, fmt.Errorf("invalid site URL: %w", err)
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site URL: %w", err)
	}
	return &CookieSource{jar: jar, siteURL: u}, nil
}

// OrgID implements Source.
func (s *CookieSource) OrgID(_ context.Context) (string, error) {
	for _, cookie := range s.jar.Cookies(s.siteURL) {
		if cookie.Name != OrgCookieName {
			continue
		}
		if cookie.Value == "" {
			return "", ErrNotAuthenticated
		}
		if err := validation.ValidateHeaderValue(cookie.Value); err != nil {
			return "", fmt.Errorf("invalid organization ID cookie: %w", err)
		}
		return cookie.Value, nil
	}
	return "", ErrNotAuthenticated
}

// Chain tries each Source in order, returning the first organization
// identifier found. ErrNotAuthenticated moves on to the next source; any
// other error stops the chain.
type Chain []Source

// OrgID implements Source.
func (c Chain) OrgID(ctx context.Context) (string, error) {
	for _, src := range c {
		id, err := src.OrgID(ctx)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrNotAuthenticated) {
			return "", err
		}
	}
	return "", ErrNotAuthenticated
}
