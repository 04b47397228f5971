// Package apollo provides a client for the Apollo.io organization
// search API.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.apollo.io/v1"

// Client performs organization searches against the Apollo.io API.
type Client interface {
	SearchOrganizations(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// SearchRequest is the request body for POST /organizations/search.
type SearchRequest struct {
	Query   Query `json:"q"`
	PerPage int   `json:"per_page,omitempty"`
}

// Query holds the organization search filters.
type Query struct {
	Employees EmployeeRange `json:"employees"`
	Industry  string        `json:"industry,omitempty"`
	Country   string        `json:"country,omitempty"`
	City      string        `json:"city,omitempty"`
}

// EmployeeRange is an inclusive headcount filter.
type EmployeeRange struct {
	GTE int `json:"$gte,omitempty"`
	LTE int `json:"$lte,omitempty"`
}

// SearchResponse is the response from POST /organizations/search.
type SearchResponse struct {
	Organizations []Organization `json:"organizations"`
}

// Organization is a single search hit.
type Organization struct {
	Name              string `json:"name"`
	WebsiteURL        string `json:"website_url"`
	Domain            string `json:"domain"`
	NumberOfEmployees *int   `json:"number_of_employees"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithQPS caps the request rate against the API quota. Zero disables
// the limiter.
func WithQPS(qps float64) Option {
	return func(c *httpClient) {
		if qps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(qps), 1)
		}
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates an Apollo.io API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) SearchOrganizations(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "apollo: rate limiter wait")
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/organizations/search", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "apollo: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("apollo: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result SearchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "apollo: unmarshal response")
	}

	return &result, nil
}
