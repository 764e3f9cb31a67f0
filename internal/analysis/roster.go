package analysis

import (
	"fmt"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// Default z-score thresholds for classifying a roster's categories.
const (
	DefaultPuntThreshold   = -0.5
	DefaultStrongThreshold = 0.5
)

// CategoryStrength is the roster's standing in one category: the raw team
// total, its z-score against the league baseline (nil without a baseline),
// and a label.
type CategoryStrength struct {
	Value    float64  `json:"value"`
	ZScore   *float64 `json:"z_score,omitempty"`
	Strength string   `json:"strength"` // "Strong", "Punt", "Average"
}

// Improvement is a suggested roster fix.
type Improvement struct {
	Priority       string `json:"priority"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
}

// RosterReport is the full strength/weakness breakdown for one roster.
type RosterReport struct {
	TeamName         string                      `json:"team_name"`
	TotalPlayers     int                         `json:"total_players"`
	ActivePlayers    int                         `json:"active_players"`
	InjuredPlayers   int                         `json:"injured_players"`
	CategoryTotals   models.CategoryStats        `json:"category_totals"`
	CategoryAnalysis map[string]CategoryStrength `json:"category_analysis"`
	StrongCategories []string                    `json:"strong_categories"`
	PuntCategories   []string                    `json:"punt_categories"`
	Improvements     []Improvement               `json:"improvements"`
}

// RosterAnalyzer scores a roster's aggregated totals against a league
// baseline. The baseline may be nil, in which case z-score-derived fields are
// omitted.
type RosterAnalyzer struct {
	roster   *models.Roster
	baseline *Baseline
	punt     float64
	strong   float64
}

func NewRosterAnalyzer(roster *models.Roster, baseline *Baseline) *RosterAnalyzer {
	return NewRosterAnalyzerWithThresholds(roster, baseline, DefaultPuntThreshold, DefaultStrongThreshold)
}

// NewRosterAnalyzerWithThresholds overrides the default punt/strong z-score
// cutoffs, typically from configuration.
func NewRosterAnalyzerWithThresholds(roster *models.Roster, baseline *Baseline, punt, strong float64) *RosterAnalyzer {
	if punt == 0 {
		punt = DefaultPuntThreshold
	}
	if strong == 0 {
		strong = DefaultStrongThreshold
	}
	return &RosterAnalyzer{roster: roster, baseline: baseline, punt: punt, strong: strong}
}

// CategoryStrengths returns the roster's standing in every category, built
// from active totals only.
func (a *RosterAnalyzer) CategoryStrengths() (map[string]CategoryStrength, error) {
	totals := a.roster.CategoryTotals(false)

	strengths := make(map[string]CategoryStrength, len(models.Categories))
	for _, cat := range models.Categories {
		value, _ := totals.CategoryValue(cat)

		strength := CategoryStrength{Value: value, Strength: "Average"}
		if a.baseline != nil {
			z, err := a.baseline.Normalize(value, cat)
			if err != nil {
				return nil, err
			}
			strength.ZScore = &z
			if z > a.strong {
				strength.Strength = "Strong"
			} else if z < a.punt {
				strength.Strength = "Punt"
			}
		}
		strengths[cat] = strength
	}

	return strengths, nil
}

// PuntCategories returns the categories whose team z-score falls below the
// punt threshold, in category display order. Without a baseline there is
// nothing to measure against and the result is empty.
func (a *RosterAnalyzer) PuntCategories() ([]string, error) {
	return a.categoriesBeyond(a.punt, true)
}

// StrongCategories returns the categories whose team z-score exceeds the
// strong threshold.
func (a *RosterAnalyzer) StrongCategories() ([]string, error) {
	return a.categoriesBeyond(a.strong, false)
}

func (a *RosterAnalyzer) categoriesBeyond(threshold float64, below bool) ([]string, error) {
	strengths, err := a.CategoryStrengths()
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0)
	for _, cat := range models.Categories {
		z := strengths[cat].ZScore
		if z == nil {
			continue
		}
		if (below && *z < threshold) || (!below && *z > threshold) {
			matched = append(matched, cat)
		}
	}
	return matched, nil
}

// Report builds the full roster analysis.
func (a *RosterAnalyzer) Report() (*RosterReport, error) {
	strengths, err := a.CategoryStrengths()
	if err != nil {
		return nil, err
	}
	strong, err := a.StrongCategories()
	if err != nil {
		return nil, err
	}
	punt, err := a.PuntCategories()
	if err != nil {
		return nil, err
	}

	return &RosterReport{
		TeamName:         a.roster.TeamName,
		TotalPlayers:     len(a.roster.Players),
		ActivePlayers:    len(a.roster.ActivePlayers()),
		InjuredPlayers:   len(a.roster.InjuredPlayers()),
		CategoryTotals:   a.roster.CategoryTotals(false),
		CategoryAnalysis: strengths,
		StrongCategories: strong,
		PuntCategories:   punt,
		Improvements:     a.SuggestImprovements(strengths, strong, punt),
	}, nil
}

// SuggestImprovements derives roster fixes from the strength breakdown.
func (a *RosterAnalyzer) SuggestImprovements(strengths map[string]CategoryStrength, strong, punt []string) []Improvement {
	suggestions := make([]Improvement, 0)

	if a.baseline == nil {
		return suggestions
	}

	if len(strong) < 5 {
		suggestions = append(suggestions, Improvement{
			Priority:       "High",
			Issue:          fmt.Sprintf("Only %d strong categories; winning consistently takes at least 5", len(strong)),
			Recommendation: "Trade to shore up weak categories, or commit to punting some and consolidate the rest",
		})
	}

	if len(punt) > 4 {
		suggestions = append(suggestions, Improvement{
			Priority:       "High",
			Issue:          fmt.Sprintf("%d weak categories is too many to contest", len(punt)),
			Recommendation: "Pick 2-3 categories to punt outright and spend the freed-up value elsewhere",
		})
	}

	if z := strengths[models.CategoryFGPct].ZScore; z != nil && *z < -1.0 {
		suggestions = append(suggestions, Improvement{
			Priority:       "Medium",
			Issue:          "Team FG% is far below league average",
			Recommendation: "Move low-efficiency guards for high-percentage bigs (.55+ FG%)",
		})
	}

	if z := strengths[models.CategoryRebounds].ZScore; z != nil && *z < -1.0 {
		suggestions = append(suggestions, Improvement{
			Priority:       "Medium",
			Issue:          "Rebounding is far below league average",
			Recommendation: "Target a high-volume rebounder (10+ RPG center or power forward)",
		})
	}

	return suggestions
}
