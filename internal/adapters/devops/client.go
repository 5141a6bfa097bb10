// Package devops implements the organization/schema API client. Transport
// limits and timeouts live here, not in callers.
package devops

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

const (
	apiVersion = "7.1"

	// Organization schema documents run to a few megabytes.
	maxResponseBytes = 16 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.OrganizationClient = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type accountsResponse struct {
	Count int `json:"count"`
	Value []struct {
		AccountName string `json:"accountName"`
	} `json:"value"`
}

func (c *Client) ListOrganizations(ctx context.Context, session ports.Session) ([]domain.Organization, error) {
	endpoint := fmt.Sprintf("%s/_apis/accounts?api-version=%s", c.baseURL, apiVersion)

	body, err := c.get(ctx, session, endpoint)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	var decoded accountsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode organization list: %w", err)
	}

	organizations := make([]domain.Organization, 0, len(decoded.Value))
	for _, account := range decoded.Value {
		if account.AccountName == "" {
			continue
		}
		organizations = append(organizations, domain.Organization{
			Name: domain.OrganizationName(account.AccountName),
		})
	}

	return organizations, nil
}

func (c *Client) FetchSchema(ctx context.Context, session ports.Session, org domain.OrganizationName) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%s/_apis/distributedtask/yamlschema?api-version=%s",
		c.baseURL, url.PathEscape(string(org)), apiVersion)

	body, err := c.get(ctx, session, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch schema for %q: %w", org, err)
	}

	// The document is stored opaquely; only well-formedness is checked.
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("schema response is not valid JSON: %w", err)
	}

	return raw, nil
}

func (c *Client) get(ctx context.Context, session ports.Session, endpoint string) ([]byte, error) {
	token, err := session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}
