// Package search finds candidate organizations to enrich.
package search

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
)

// Searcher finds leads via the Apollo.io organization search, degrading
// to a fixed static list when the provider is unavailable or empty.
type Searcher struct {
	client apollo.Client
}

// New creates a Searcher over the given Apollo client.
func New(client apollo.Client) *Searcher {
	return &Searcher{client: client}
}

// Search returns candidate leads for the criteria. Provider failure or
// an empty result set falls back to the static lead list; this never
// returns an error.
func (s *Searcher) Search(ctx context.Context, criteria model.Criteria) []model.Lead {
	resp, err := s.client.SearchOrganizations(ctx, apollo.SearchRequest{
		Query: apollo.Query{
			Employees: apollo.EmployeeRange{GTE: criteria.MinEmployees, LTE: criteria.MaxEmployees},
			Industry:  criteria.Industry,
			Country:   criteria.Country,
			City:      criteria.City,
		},
		PerPage: criteria.PerPage,
	})
	if err != nil {
		zap.L().Warn("search: provider unavailable, using fallback leads", zap.Error(err))
		return FallbackLeads()
	}
	if len(resp.Organizations) == 0 {
		zap.L().Info("search: no organizations found, using fallback leads")
		return FallbackLeads()
	}

	orgs := resp.Organizations
	if criteria.PerPage > 0 && len(orgs) > criteria.PerPage {
		orgs = orgs[:criteria.PerPage]
	}

	leads := make([]model.Lead, 0, len(orgs))
	for _, org := range orgs {
		leads = append(leads, toLead(org))
	}

	zap.L().Info("search: leads found", zap.Int("count", len(leads)))
	return leads
}

// toLead maps an Apollo organization to a Lead, filling gaps with the
// standard defaults.
func toLead(org apollo.Organization) model.Lead {
	name := org.Name
	if name == "" {
		name = "Unknown Company"
	}

	website := org.WebsiteURL
	if website == "" {
		domain := org.Domain
		if domain == "" {
			domain = "example.com"
		}
		website = fmt.Sprintf("https://%s", domain)
	}

	employees := "N/A"
	if org.NumberOfEmployees != nil {
		employees = strconv.Itoa(*org.NumberOfEmployees)
	}

	return model.Lead{Name: name, Website: website, Employees: employees}
}

// FallbackLeads returns the fixed static lead list used when the search
// provider yields nothing.
func FallbackLeads() []model.Lead {
	return []model.Lead{
		{Name: "Zomato", Website: "https://www.zomato.com", Employees: "150"},
		{Name: "Zepto", Website: "https://www.zepto.com", Employees: "120"},
		{Name: "Swiggy", Website: "https://www.swiggy.com", Employees: "180"},
		{Name: "Blinkit", Website: "https://www.blinkit.com", Employees: "90"},
		{Name: "Domino's India", Website: "https://www.dominos.co.in", Employees: "130"},
	}
}
