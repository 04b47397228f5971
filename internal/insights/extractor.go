// Package insights derives short qualitative statements about an
// organization from its website content.
package insights

import (
	"strings"

	"github.com/sells-group/leadgen-cli/internal/scrape"
)

// maxInsights caps how many insights a lead carries.
const maxInsights = 3

// Structural label hints for the page regions worth reading.
var (
	aboutHints   = []string{"about", "company", "overview"}
	serviceHints = []string{"services", "products"}
)

// teamSizeTokens are the headcount figures that, alongside "team", signal
// a sizable engineering org.
var teamSizeTokens = []string{"100", "200", "50"}

// Canned insight statements.
const (
	insightSoftwareFocus  = "Company focuses on software development."
	insightLargeTeam      = "They have a team of 100+ developers."
	insightInfrastructure = "Recent content on IT infrastructure needs."
)

// Fallback returns the fixed insight set used when extraction yields
// nothing or the page could not be fetched.
func Fallback() []string {
	return []string{
		"Focuses on innovative software solutions.",
		"Employs a dynamic team of developers.",
		"Discusses hardware needs in recent updates.",
	}
}

// Extract derives up to three insights from a parsed page. A nil document
// (fetch failure) or an empty heuristic result yields the fixed fallback
// set, so callers always receive at least one insight.
func Extract(doc *scrape.Document) []string {
	if doc == nil {
		return Fallback()
	}

	var out []string

	if text, ok := doc.Region(aboutHints...); ok {
		lower := strings.ToLower(text)
		if strings.Contains(lower, "software") || strings.Contains(lower, "development") {
			out = append(out, insightSoftwareFocus)
		}
		if strings.Contains(lower, "team") && containsAny(lower, teamSizeTokens) {
			out = append(out, insightLargeTeam)
		}
	}

	if text, ok := doc.Region(serviceHints...); ok {
		lower := strings.ToLower(text)
		// Plain substring test: "it" intentionally matches inside larger
		// words, mirroring the loose keyword heuristic this replicates.
		if strings.Contains(lower, "it") || strings.Contains(lower, "infrastructure") {
			out = append(out, insightInfrastructure)
		}
	}

	if len(out) == 0 {
		return Fallback()
	}
	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
