package model

// Lead represents a prospective organization before enrichment.
// Employees is kept as a string because the search provider returns
// "N/A" for organizations without a headcount.
type Lead struct {
	Name      string `json:"name" yaml:"name"`
	Website   string `json:"website" yaml:"website"`
	Employees string `json:"employees" yaml:"employees"`
}

// Contacts holds the email addresses and phone numbers discovered on a
// lead's website. Each list is capped at two entries, in first-occurrence
// order.
type Contacts struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// EnrichedLead is a Lead augmented with scraped insights, contact
// details, an outreach message, and a priority score.
type EnrichedLead struct {
	Lead

	Insights    []string `json:"insights"`
	Contacts    Contacts `json:"contacts"`
	ValidEmails []string `json:"valid_emails"`
	Message     string   `json:"message"`
	Score       int      `json:"score"`
}

// Criteria describes an organization search request.
type Criteria struct {
	MinEmployees int    `json:"min_employees"`
	MaxEmployees int    `json:"max_employees"`
	Industry     string `json:"industry"`
	Country      string `json:"country"`
	City         string `json:"city"`
	PerPage      int    `json:"per_page"`
}

// DefaultCriteria returns the standard search criteria: mid-size US
// software companies in New York.
func DefaultCriteria() Criteria {
	return Criteria{
		MinEmployees: 50,
		MaxEmployees: 200,
		Industry:     "software",
		Country:      "United States",
		City:         "New York",
		PerPage:      10,
	}
}
