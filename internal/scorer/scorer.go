// Package scorer computes lead priority scores.
package scorer

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Score bounds and term weights.
const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	// Employee headcount tiers.
	tierLargeMin  = 150
	tierLargeAdd  = 30
	tierMediumMin = 100
	tierMediumAdd = 20
	tierSmallMin  = 50
	tierSmallAdd  = 10

	// Insight keyword bonuses. All matching bonuses apply additively.
	hardwareAdd       = 15
	developmentAdd    = 10
	infrastructureAdd = 10

	// Randomized tie-break term is uniform in [0, maxRandomBonus].
	maxRandomBonus = 10

	// Later batch positions get a small edge.
	positionWeight = 2
)

// BonusSource yields the randomized scoring term. *rand.Rand satisfies
// it; tests inject a fixed source.
type BonusSource interface {
	Intn(n int) int
}

// Scorer computes priority scores for enriched leads.
type Scorer struct {
	rnd BonusSource
}

// New creates a Scorer. A nil source falls back to a time-seeded
// process-wide generator.
func New(rnd BonusSource) *Scorer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scorer{rnd: rnd}
}

// Score computes a priority score in [0,100] for a lead at the given
// batch position. Deterministic except for the single randomized term.
func (s *Scorer) Score(lead model.EnrichedLead, index int) int {
	score := baseScore

	// Employee tier: a malformed count contributes nothing.
	if employees, err := strconv.Atoi(lead.Employees); err == nil {
		switch {
		case employees >= tierLargeMin:
			score += tierLargeAdd
		case employees >= tierMediumMin:
			score += tierMediumAdd
		case employees >= tierSmallMin:
			score += tierSmallAdd
		}
	}

	insights := strings.ToLower(strings.Join(lead.Insights, " "))
	if strings.Contains(insights, "hardware") {
		score += hardwareAdd
	}
	if strings.Contains(insights, "development") || strings.Contains(insights, "developers") {
		score += developmentAdd
	}
	if strings.Contains(insights, "infrastructure") {
		score += infrastructureAdd
	}

	score += s.rnd.Intn(maxRandomBonus + 1)
	score += index * positionWeight

	return clamp(score)
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
