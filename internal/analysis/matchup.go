package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// Per-category matchup winners.
const (
	WinnerMe       = "me"
	WinnerOpponent = "opponent"
	WinnerTie      = "tie"
)

// Confidence tiers for a per-category prediction.
const (
	ConfidenceHigh    = "High"
	ConfidenceMedium  = "Medium"
	ConfidenceLow     = "Low"
	ConfidenceUnknown = "Unknown"
)

// Predicted overall matchup outcomes.
const (
	OutcomeWin  = "Win"
	OutcomeLoss = "Loss"
	OutcomeTie  = "Tie"
)

// CategoryPrediction is the predicted result of one category in a matchup.
type CategoryPrediction struct {
	Category      string  `json:"category"`
	MyValue       float64 `json:"my_value"`
	OpponentValue float64 `json:"opponent_value"`
	Winner        string  `json:"winner"`
	Margin        float64 `json:"margin"`
	Confidence    string  `json:"confidence"`
}

// MatchupSummary is the rolled-up win/loss/tie prediction across the nine
// categories.
type MatchupSummary struct {
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Ties           int     `json:"ties"`
	WinProbability float64 `json:"win_probability"`
	Outcome        string  `json:"outcome"`
}

// Strategy is an advisory recommendation derived from the category breakdown.
type Strategy struct {
	Type     string `json:"type"` // "Focus", "Maintain", "Punt", "Overall"
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// MatchupResult is the full prediction for one head-to-head matchup.
type MatchupResult struct {
	Prediction        MatchupSummary       `json:"prediction"`
	CategoryBreakdown []CategoryPrediction `json:"category_breakdown"`
	Strategies        []Strategy           `json:"strategies"`
	MyStats           models.CategoryStats `json:"my_stats"`
	OpponentStats     models.CategoryStats `json:"opponent_stats"`
}

// PredictMatchup compares two aggregated team totals category by category and
// rolls the results up into a predicted outcome. It is a pure function; no
// state survives between invocations.
func PredictMatchup(myStats, oppStats models.CategoryStats) MatchupResult {
	breakdown := make([]CategoryPrediction, 0, len(models.Categories))
	var wins, losses, ties int

	for _, cat := range models.Categories {
		pred := compareCategory(cat, myStats, oppStats)
		breakdown = append(breakdown, pred)

		switch pred.Winner {
		case WinnerMe:
			wins++
		case WinnerOpponent:
			losses++
		default:
			ties++
		}
	}

	total := wins + losses + ties
	var winProbability float64
	if total > 0 {
		winProbability = (float64(wins) + 0.5*float64(ties)) / float64(total)
	}

	outcome := OutcomeTie
	if wins > losses {
		outcome = OutcomeWin
	} else if losses > wins {
		outcome = OutcomeLoss
	}

	return MatchupResult{
		Prediction: MatchupSummary{
			Wins:           wins,
			Losses:         losses,
			Ties:           ties,
			WinProbability: winProbability,
			Outcome:        outcome,
		},
		CategoryBreakdown: breakdown,
		Strategies:        generateStrategies(breakdown, wins),
		MyStats:           myStats,
		OpponentStats:     oppStats,
	}
}

func compareCategory(category string, myStats, oppStats models.CategoryStats) CategoryPrediction {
	myVal, _ := myStats.CategoryValue(category)
	oppVal, _ := oppStats.CategoryValue(category)

	winner := WinnerTie
	switch {
	case myVal == oppVal:
		winner = WinnerTie
	case LowerIsBetter(category) == (myVal < oppVal):
		winner = WinnerMe
	default:
		winner = WinnerOpponent
	}

	margin := math.Abs(myVal - oppVal)

	return CategoryPrediction{
		Category:      category,
		MyValue:       myVal,
		OpponentValue: oppVal,
		Winner:        winner,
		Margin:        margin,
		Confidence:    confidenceTier(margin, myVal, oppVal),
	}
}

// confidenceTier buckets the relative margin between two values. A zero value
// on either side makes the relative margin meaningless, so the tier is
// Unknown.
func confidenceTier(margin, myVal, oppVal float64) string {
	if myVal == 0 || oppVal == 0 {
		return ConfidenceUnknown
	}

	marginPct := margin / math.Max(myVal, oppVal) * 100

	switch {
	case marginPct > 20:
		return ConfidenceHigh
	case marginPct > 10:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// generateStrategies turns the category breakdown into advisory guidance:
// contest the low-confidence losses, hold the high-confidence wins, concede
// the high-confidence losses. The win thresholds (5 favorable, 4 close) are
// fixed policy, not derived.
func generateStrategies(breakdown []CategoryPrediction, wins int) []Strategy {
	strategies := make([]Strategy, 0, 4)

	var contestable, safeWins, sureLosses []string
	for _, pred := range breakdown {
		switch {
		case pred.Winner != WinnerMe && pred.Confidence == ConfidenceLow:
			contestable = append(contestable, pred.Category)
		case pred.Winner == WinnerMe && pred.Confidence == ConfidenceHigh:
			safeWins = append(safeWins, pred.Category)
		case pred.Winner == WinnerOpponent && pred.Confidence == ConfidenceHigh:
			sureLosses = append(sureLosses, pred.Category)
		}
	}

	if len(contestable) > 0 {
		strategies = append(strategies, Strategy{
			Type:     "Focus",
			Priority: "High",
			Message:  "Close categories worth contesting: " + strings.Join(contestable, ", "),
			Action:   "These are still winnable; watch starting lineups and streaming options",
		})
	}

	if len(safeWins) > 0 {
		strategies = append(strategies, Strategy{
			Type:     "Maintain",
			Priority: "Medium",
			Message:  "Safe categories: " + strings.Join(safeWins, ", "),
			Action:   "Hold course and keep the key contributors in the lineup",
		})
	}

	if len(sureLosses) > 0 {
		strategies = append(strategies, Strategy{
			Type:     "Punt",
			Priority: "Low",
			Message:  "Likely losses: " + strings.Join(sureLosses, ", "),
			Action:   "Not worth contesting; spend roster moves on winnable categories",
		})
	}

	overall := Strategy{
		Type:     "Overall",
		Priority: "High",
		Message:  fmt.Sprintf("Projected to win %d/9 categories", wins),
	}
	switch {
	case wins >= 5:
		overall.Action = "Favorable matchup; keep the roster stable"
	case wins >= 4:
		overall.Action = "Close matchup; lineup adjustments could swing it"
	default:
		overall.Action = "Unfavorable matchup; consider trades or a strategy change"
	}
	strategies = append(strategies, overall)

	return strategies
}
