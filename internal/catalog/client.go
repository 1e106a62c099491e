package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ProductFetcher defines the interface for loading the product catalog.
// This interface is implemented by *Client and can be used for testing.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Ensure Client implements ProductFetcher at compile time.
var _ ProductFetcher = (*Client)(nil)

// Client talks to the remote catalog API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultEndpoint is the public catalog the storefront reads from.
	DefaultEndpoint  = "https://fakestoreapi.com/products/"
	defaultUserAgent = "shopfront/0.1"
)

// NewClient builds a Client for the given catalog endpoint. The client sets
// no request timeout; callers bound requests through their context.
func NewClient(endpoint string) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint:  u,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the resolved catalog URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchProducts issues a single GET against the catalog endpoint and decodes
// the JSON array of products. Stock is left at zero; see AssignStock.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.get(ctx, c.endpoint, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, target *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("catalog %s returned status %d", target.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("catalog url %q has no host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
