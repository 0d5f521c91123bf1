// Package omclient is a thin REST client for the OpenMetadata catalog API.
//
// The client performs no retries and no caching: every method is a single
// HTTP round trip whose result (or typed failure) the caller interprets.
// The *http.Client is supplied by the caller and owns timeouts and pooling.
package omclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"omd-facade/internal/domain"
)

// Client talks to an OpenMetadata server under <base>/api/v1.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a Client rooted at baseURL (the server root, not /api/v1).
// When token is non-empty it is sent as a bearer Authorization header.
func New(baseURL, token string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		token:   token,
		httpc:   httpc,
	}
}

// GetServiceByName fetches a database service record by name.
func (c *Client) GetServiceByName(ctx context.Context, name, include, fields string) (map[string]any, error) {
	q := listQuery(include, fields)
	return c.getObject(ctx, "/services/databaseServices/name/"+url.PathEscape(name), q)
}

// ListDatabases lists the databases belonging to a service.
func (c *Client) ListDatabases(ctx context.Context, service, include, fields string) ([]map[string]any, error) {
	q := listQuery(include, fields)
	q.Set("service", service)
	return c.getList(ctx, "/databases", q)
}

// ListDatabaseSchemas lists the schemas of a database, addressed by its
// fully-qualified name.
func (c *Client) ListDatabaseSchemas(ctx context.Context, databaseFQN, include, fields string) ([]map[string]any, error) {
	q := listQuery(include, fields)
	q.Set("database", databaseFQN)
	return c.getList(ctx, "/databaseSchemas", q)
}

// ListTables lists tables filtered by one of the upstream filter keys
// (databaseSchema, database, or service).
func (c *Client) ListTables(ctx context.Context, filterKey, filterValue, include, fields string) ([]map[string]any, error) {
	q := listQuery(include, fields)
	q.Set(filterKey, filterValue)
	return c.getList(ctx, "/tables", q)
}

// GetTableByID fetches a single table record with the requested expansion.
func (c *Client) GetTableByID(ctx context.Context, id, include, fields string) (map[string]any, error) {
	q := listQuery(include, fields)
	return c.getObject(ctx, "/tables/"+url.PathEscape(id), q)
}

// CreateDatabaseService creates a database service and returns the created
// record. A 409 from upstream surfaces as *domain.UpstreamError.
func (c *Client) CreateDatabaseService(ctx context.Context, req map[string]any) (map[string]any, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal service request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/services/databaseServices", nil, bytes.NewReader(body))
}

// SystemVersion probes the upstream version endpoint.
func (c *Client) SystemVersion(ctx context.Context) (map[string]any, error) {
	return c.getObject(ctx, "/system/version", nil)
}

func (c *Client) getObject(ctx context.Context, path string, q url.Values) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, path, q, nil)
}

// getList fetches a listing endpoint and unwraps the {"data": [...]} envelope.
func (c *Client) getList(ctx context.Context, path string, q url.Values) ([]map[string]any, error) {
	obj, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	raw, _ := obj["data"].([]any)
	items := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader) (map[string]any, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, domain.ErrUpstream(0, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrUpstream(0, "read %s %s: %v", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.ErrUpstream(resp.StatusCode, "%s %s: HTTP %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var obj map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, domain.ErrUpstream(resp.StatusCode, "parse %s %s: %v", method, path, err)
		}
	}
	return obj, nil
}

func listQuery(include, fields string) url.Values {
	q := url.Values{}
	if include != "" {
		q.Set("include", include)
	}
	if fields != "" {
		q.Set("fields", fields)
	}
	return q
}
