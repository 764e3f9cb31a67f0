package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// ActionItem is one entry on the weekly to-do list.
type ActionItem struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Task     string `json:"task"`
	Action   string `json:"action"`
}

// TradeRecommendations is the trade section of a weekly report.
type TradeRecommendations struct {
	TargetCategories []string      `json:"target_categories"`
	TopTargets       []TradeTarget `json:"top_targets"`
}

// WeeklyReport is the full weekly analysis for one team: roster standing,
// optional matchup prediction, trade targets, and action items.
type WeeklyReport struct {
	GeneratedAt          time.Time             `json:"generated_at"`
	Week                 int                   `json:"week"`
	RosterAnalysis       *RosterReport         `json:"roster_analysis"`
	MatchupPrediction    *MatchupResult        `json:"matchup_prediction,omitempty"`
	TradeRecommendations *TradeRecommendations `json:"trade_recommendations,omitempty"`
	ActionItems          []ActionItem          `json:"action_items"`
}

// GenerateWeeklyReport assembles the weekly report. The opponent roster and
// league player pool are both optional: without an opponent the matchup
// section is omitted, without a pool the z-score-derived sections are.
func GenerateWeeklyReport(myRoster *models.Roster, opponent *models.Roster, leaguePlayers []*models.PlayerStats, week int) (*WeeklyReport, error) {
	var baseline *Baseline
	if len(leaguePlayers) > 0 {
		var err error
		baseline, err = BuildBaseline(leaguePlayers)
		if err != nil {
			return nil, err
		}
	}

	rosterReport, err := NewRosterAnalyzer(myRoster, baseline).Report()
	if err != nil {
		return nil, err
	}

	report := &WeeklyReport{
		GeneratedAt:    time.Now().UTC(),
		Week:           week,
		RosterAnalysis: rosterReport,
	}

	if opponent != nil {
		matchup := PredictMatchup(myRoster.CategoryTotals(false), opponent.CategoryTotals(false))
		report.MatchupPrediction = &matchup
	}

	if baseline != nil && len(rosterReport.PuntCategories) > 0 {
		recommender, err := NewTargetRecommender(myRoster, leaguePlayers)
		if err != nil {
			return nil, err
		}
		targets, cats, err := recommender.RecommendTargets(rosterReport.PuntCategories, 5)
		if err != nil {
			return nil, err
		}
		report.TradeRecommendations = &TradeRecommendations{
			TargetCategories: cats,
			TopTargets:       targets,
		}
	}

	report.ActionItems = generateActionItems(report)

	return report, nil
}

func generateActionItems(report *WeeklyReport) []ActionItem {
	items := make([]ActionItem, 0)

	for _, imp := range report.RosterAnalysis.Improvements {
		if imp.Priority == "High" {
			items = append(items, ActionItem{
				Priority: "High",
				Category: "Roster",
				Task:     imp.Issue,
				Action:   imp.Recommendation,
			})
		}
	}

	if m := report.MatchupPrediction; m != nil && m.Prediction.WinProbability < 0.5 {
		items = append(items, ActionItem{
			Priority: "High",
			Category: "Matchup",
			Task:     "This week's matchup is unfavorable",
			Action:   "Tighten the starting lineup and focus on the winnable categories",
		})
	}

	if tr := report.TradeRecommendations; tr != nil && len(tr.TopTargets) > 0 {
		top := tr.TopTargets[0]
		items = append(items, ActionItem{
			Priority: "Medium",
			Category: "Trades",
			Task:     fmt.Sprintf("Consider trading for %s", top.PlayerName),
			Action:   fmt.Sprintf("Would shore up %s", strings.Join(tr.TargetCategories, ", ")),
		})
	}

	if injured := report.RosterAnalysis.InjuredPlayers; injured > 0 {
		items = append(items, ActionItem{
			Priority: "Medium",
			Category: "Injuries",
			Task:     fmt.Sprintf("%d players currently unavailable", injured),
			Action:   "Track return timelines and consider IL slot moves",
		})
	}

	return items
}
