// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/stacklok/skillsync-core/bundle"
	"github.com/stacklok/skillsync-core/httperr"
	"github.com/stacklok/skillsync-core/resolve"
	"github.com/stacklok/skillsync-core/skillfile"
	validation "github.com/stacklok/skillsync-core/validation/http"
)

// DefaultBaseURL is the remote service's API root.
const DefaultBaseURL = "https://claude.ai/api"

// maxResponseSize caps API response bodies (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Client talks to the remote service's per-organization skill and connector
// endpoints. All methods return httperr-coded errors on non-2xx responses,
// so callers can classify authentication failures with httperr.IsAuthError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Intended for tests and
// self-hosted deployments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for API requests. The client
// must carry the service's session credentials (cookie jar or transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a remote service client.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := validation.ValidateEndpointURL(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	return c, nil
}

// ListSkills returns every skill in the organization.
func (c *Client) ListSkills(ctx context.Context, orgID string) ([]Skill, error) {
	var out struct {
		Skills []Skill `json:"skills"`
	}
	if err := c.doJSON(ctx, http.MethodGet, c.skillsURL(orgID, "list-skills"), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return out.Skills, nil
}

// CreateSimpleSkill creates a skill from structured fields. Used only when
// no pre-packaged bundle is available.
func (c *Client) CreateSimpleSkill(ctx context.Context, orgID, name, description, instructions string) (*Skill, error) {
	body := map[string]string{
		"name":         name,
		"description":  description,
		"instructions": instructions,
	}
	var skill Skill
	if err := c.doJSON(ctx, http.MethodPost, c.skillsURL(orgID, "create-simple-skill"), body, &skill); err != nil {
		return nil, fmt.Errorf("failed to create skill %q: %w", name, err)
	}
	return &skill, nil
}

// UploadSkill uploads a pre-packaged skill archive as a multipart body.
// With overwrite set, an existing skill with the same name is replaced;
// without it, the upload creates a new skill.
func (c *Client) UploadSkill(ctx context.Context, orgID, name string, archive []byte, overwrite bool) (*Skill, error) {
	endpoint := c.skillsURL(orgID, "upload-skill")
	if overwrite {
		endpoint += "?overwrite=true"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name+".skill")
	if err != nil {
		return nil, fmt.Errorf("failed to build upload for %q: %w", name, err)
	}
	if _, err := fw.Write(archive); err != nil {
		return nil, fmt.Errorf("failed to build upload for %q: %w", name, err)
	}
	if overwrite {
		if err := mw.WriteField("overwrite", "true"); err != nil {
			return nil, fmt.Errorf("failed to build upload for %q: %w", name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload for %q: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to upload skill %q: %w", name, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	data, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload skill %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to upload skill %q: empty response", name)
	}

	var skill Skill
	if err := json.Unmarshal(data, &skill); err != nil {
		return nil, fmt.Errorf("failed to decode upload response for %q: %w", name, err)
	}
	return &skill, nil
}

// CreateSkill creates a skill from resolved content, picking the upload
// endpoint when a pre-packaged bundle is present and the simple JSON
// endpoint otherwise.
func (c *Client) CreateSkill(ctx context.Context, orgID string, content *resolve.Content) (*Skill, error) {
	if content.Bundle != nil {
		return c.UploadSkill(ctx, orgID, content.Name, content.Bundle, false)
	}
	return c.CreateSimpleSkill(ctx, orgID, content.Name, content.Description, content.Instructions)
}

// UpdateSkill replaces an existing skill with resolved content via the
// upload endpoint's overwrite mode. Content without a pre-packaged bundle
// is wrapped in a fresh single-document archive first, since the service
// has no structured update endpoint.
func (c *Client) UpdateSkill(ctx context.Context, orgID string, content *resolve.Content) (*Skill, error) {
	archive := content.Bundle
	if archive == nil {
		doc := skillfile.Compose(content.Name, content.Description, content.Instructions)
		var err error
		archive, err = bundle.CreateSkillArchive(content.Name, doc)
		if err != nil {
			return nil, fmt.Errorf("failed to package skill %q: %w", content.Name, err)
		}
	}
	return c.UploadSkill(ctx, orgID, content.Name, archive, true)
}

// EnableSkill enables a skill by its remote identifier.
func (c *Client) EnableSkill(ctx context.Context, orgID, skillID string) error {
	if err := c.doJSON(ctx, http.MethodPost, c.skillsURL(orgID, "enable-skill"), map[string]string{"skill_id": skillID}, nil); err != nil {
		return fmt.Errorf("failed to enable skill: %w", err)
	}
	return nil
}

// DisableSkill disables a skill by its remote identifier.
func (c *Client) DisableSkill(ctx context.Context, orgID, skillID string) error {
	if err := c.doJSON(ctx, http.MethodPost, c.skillsURL(orgID, "disable-skill"), map[string]string{"skill_id": skillID}, nil); err != nil {
		return fmt.Errorf("failed to disable skill: %w", err)
	}
	return nil
}

// DeleteSkill deletes a skill by its remote identifier.
func (c *Client) DeleteSkill(ctx context.Context, orgID, skillID string) error {
	if err := c.doJSON(ctx, http.MethodPost, c.skillsURL(orgID, "delete-skill"), map[string]string{"skill_id": skillID}, nil); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

// ListConnectors returns every connector in the organization.
func (c *Client) ListConnectors(ctx context.Context, orgID string) ([]Connector, error) {
	var out []Connector
	if err := c.doJSON(ctx, http.MethodGet, c.connectorsURL(orgID, ""), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list connectors: %w", err)
	}
	return out, nil
}

// CreateConnector creates a connector from a name and endpoint URL.
func (c *Client) CreateConnector(ctx context.Context, orgID, name, connectorURL string) (*Connector, error) {
	if err := validation.ValidateEndpointURL(connectorURL); err != nil {
		return nil, fmt.Errorf("invalid connector URL for %q: %w", name, err)
	}
	body := map[string]string{"name": name, "url": connectorURL}
	var conn Connector
	if err := c.doJSON(ctx, http.MethodPost, c.connectorsURL(orgID, ""), body, &conn); err != nil {
		return nil, fmt.Errorf("failed to create connector %q: %w", name, err)
	}
	return &conn, nil
}

// DeleteConnector deletes a connector by its remote identifier.
func (c *Client) DeleteConnector(ctx context.Context, orgID, connectorID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, c.connectorsURL(orgID, connectorID), nil, nil); err != nil {
		return fmt.Errorf("failed to delete connector: %w", err)
	}
	return nil
}

func (c *Client) skillsURL(orgID, op string) string {
	return fmt.Sprintf("%s/organizations/%s/skills/%s", c.baseURL, url.PathEscape(orgID), op)
}

func (c *Client) connectorsURL(orgID, connectorID string) string {
	u := fmt.Sprintf("%s/organizations/%s/mcp/connectors", c.baseURL, url.PathEscape(orgID))
	if connectorID != "" {
		u += "/" + url.PathEscape(connectorID)
	}
	return u
}

// doJSON sends a JSON request and decodes a JSON response into out. A nil
// body sends no payload; a nil out tolerates empty responses, which the
// service returns for enable/disable/delete operations.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	data, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// do executes a request and returns the response body. Non-2xx statuses
// become httperr-coded errors carrying the status for auth classification.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httperr.Errorf(resp.StatusCode, "request failed: %s", resp.Status)
	}
	return data, nil
}
