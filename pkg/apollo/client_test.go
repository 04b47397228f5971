package apollo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOrganizations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/organizations/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 50, req.Query.Employees.GTE)
		assert.Equal(t, 200, req.Query.Employees.LTE)
		assert.Equal(t, "software", req.Query.Industry)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"organizations": [
				{"name": "Acme", "website_url": "https://acme.com", "domain": "acme.com", "number_of_employees": 120},
				{"name": "Globex", "domain": "globex.com"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.SearchOrganizations(context.Background(), SearchRequest{
		Query: Query{
			Employees: EmployeeRange{GTE: 50, LTE: 200},
			Industry:  "software",
			Country:   "United States",
			City:      "New York",
		},
		PerPage: 10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Organizations, 2)

	assert.Equal(t, "Acme", resp.Organizations[0].Name)
	require.NotNil(t, resp.Organizations[0].NumberOfEmployees)
	assert.Equal(t, 120, *resp.Organizations[0].NumberOfEmployees)
	assert.Nil(t, resp.Organizations[1].NumberOfEmployees)
}

func TestSearchOrganizationsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := client.SearchOrganizations(context.Background(), SearchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}

func TestSearchOrganizationsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.SearchOrganizations(context.Background(), SearchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}

func TestQPSLimiterHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organizations": []}`))
	}))
	defer srv.Close()

	// One token per minute: the second call must wait, but the canceled
	// context aborts it immediately.
	client := NewClient("test-key", WithBaseURL(srv.URL), WithQPS(1.0/60.0))

	_, err := client.SearchOrganizations(context.Background(), SearchRequest{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.SearchOrganizations(ctx, SearchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}
