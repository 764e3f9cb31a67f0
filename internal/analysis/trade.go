package analysis

import (
	"fmt"
	"strings"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// Per-category trade impacts.
const (
	ImpactPositive = "Positive"
	ImpactNegative = "Negative"
	ImpactNeutral  = "Neutral"
)

// Overall trade assessments.
const (
	TradeFavorable   = "Favorable"
	TradeUnfavorable = "Unfavorable"
	TradeNeutral     = "Neutral"
)

// A net z-score swing beyond this magnitude overrides the category-count
// verdict.
const netChangeOverride = 0.5

// CategoryChange is the before/after delta for one category.
type CategoryChange struct {
	Before    float64 `json:"before"`
	After     float64 `json:"after"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Impact    string  `json:"impact"`
}

// PlayerValue is a player's baseline-derived total z-score value.
type PlayerValue struct {
	PlayerName string  `json:"player"`
	Value      float64 `json:"value"`
}

// ValueChange compares the total z-score value of the players given away
// against those received. Only present when a league baseline is available.
type ValueChange struct {
	PlayersGiven       []PlayerValue `json:"players_given"`
	PlayersReceived    []PlayerValue `json:"players_received"`
	TotalValueGiven    float64       `json:"total_value_given"`
	TotalValueReceived float64       `json:"total_value_received"`
	NetChange          float64       `json:"net_change"`
	Verdict            string        `json:"verdict"` // "Win", "Loss", "Fair"
}

// TradeRecommendation is the overall assessment of a proposed trade.
type TradeRecommendation struct {
	Overall            string   `json:"overall"`
	Reason             string   `json:"reason"`
	ImprovedCategories []string `json:"improved_categories"`
	WeakenedCategories []string `json:"weakened_categories"`
	Decision           string   `json:"decision"` // "Accept", "Reject", "Consider"
}

// TradeResult is the full evaluation of a proposed trade.
type TradeResult struct {
	Give            []string                  `json:"give"`
	Receive         []string                  `json:"receive"`
	CategoryChanges map[string]CategoryChange `json:"category_changes"`
	ValueChange     *ValueChange              `json:"value_change,omitempty"`
	Recommendation  TradeRecommendation       `json:"recommendation"`
	BeforeStats     models.CategoryStats      `json:"before_stats"`
	AfterStats      models.CategoryStats      `json:"after_stats"`
}

// TradeAnalyzer evaluates trades against one roster. The baseline may be nil;
// value-change analysis is then skipped.
type TradeAnalyzer struct {
	roster   *models.Roster
	baseline *Baseline
}

func NewTradeAnalyzer(roster *models.Roster, baseline *Baseline) *TradeAnalyzer {
	return &TradeAnalyzer{roster: roster, baseline: baseline}
}

// EvaluateTrade simulates removing the give players and adding the receive
// players, comparing active category totals before and after. Every give
// player must be on the roster; otherwise a ValidationError names the missing
// player. The source roster is never mutated.
func (t *TradeAnalyzer) EvaluateTrade(give, receive []models.Player) (*TradeResult, error) {
	giveIDs := make(map[string]bool, len(give))
	for _, p := range give {
		if !t.roster.HasPlayer(p.PlayerID) {
			return nil, validationErrorf("trade gives player %q (%s) who is not on roster %q",
				p.Name, p.PlayerID, t.roster.TeamName)
		}
		giveIDs[p.PlayerID] = true
	}

	before := t.roster.CategoryTotals(false)

	hypothetical := models.Roster{TeamName: t.roster.TeamName}
	for _, p := range t.roster.Players {
		if !giveIDs[p.PlayerID] {
			hypothetical.Players = append(hypothetical.Players, p)
		}
	}
	hypothetical.Players = append(hypothetical.Players, receive...)

	after := hypothetical.CategoryTotals(false)

	changes := calculateCategoryChanges(before, after)

	valueChange, err := t.calculateValueChange(give, receive)
	if err != nil {
		return nil, err
	}

	return &TradeResult{
		Give:            playerNames(give),
		Receive:         playerNames(receive),
		CategoryChanges: changes,
		ValueChange:     valueChange,
		Recommendation:  recommendTrade(changes, valueChange),
		BeforeStats:     before,
		AfterStats:      after,
	}, nil
}

func playerNames(players []models.Player) []string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return names
}

func calculateCategoryChanges(before, after models.CategoryStats) map[string]CategoryChange {
	changes := make(map[string]CategoryChange, len(models.Categories))

	for _, cat := range models.Categories {
		beforeVal, _ := before.CategoryValue(cat)
		afterVal, _ := after.CategoryValue(cat)
		change := afterVal - beforeVal

		var changePct float64
		if beforeVal != 0 {
			changePct = change / beforeVal * 100
		}

		impact := ImpactNeutral
		if change != 0 {
			improved := change > 0
			if LowerIsBetter(cat) {
				improved = change < 0
			}
			if improved {
				impact = ImpactPositive
			} else {
				impact = ImpactNegative
			}
		}

		changes[cat] = CategoryChange{
			Before:    beforeVal,
			After:     afterVal,
			Change:    change,
			ChangePct: changePct,
			Impact:    impact,
		}
	}

	return changes
}

// calculateValueChange totals the baseline value of both sides of the trade.
// Players without stats or games played contribute nothing.
func (t *TradeAnalyzer) calculateValueChange(give, receive []models.Player) (*ValueChange, error) {
	if t.baseline == nil {
		return nil, nil
	}

	sideValue := func(players []models.Player) ([]PlayerValue, float64, error) {
		values := make([]PlayerValue, 0, len(players))
		var total float64
		for _, p := range players {
			if p.Stats == nil || p.Stats.GamesPlayed == 0 {
				continue
			}
			v, err := TotalValue(p.Stats, t.baseline, nil)
			if err != nil {
				return nil, 0, err
			}
			values = append(values, PlayerValue{PlayerName: p.Name, Value: v})
			total += v
		}
		return values, total, nil
	}

	given, totalGiven, err := sideValue(give)
	if err != nil {
		return nil, err
	}
	received, totalReceived, err := sideValue(receive)
	if err != nil {
		return nil, err
	}

	net := totalReceived - totalGiven

	verdict := "Fair"
	if net > 0 {
		verdict = "Win"
	} else if net < 0 {
		verdict = "Loss"
	}

	return &ValueChange{
		PlayersGiven:       given,
		PlayersReceived:    received,
		TotalValueGiven:    totalGiven,
		TotalValueReceived: totalReceived,
		NetChange:          net,
		Verdict:            verdict,
	}, nil
}

func recommendTrade(changes map[string]CategoryChange, valueChange *ValueChange) TradeRecommendation {
	var improved, weakened []string
	for _, cat := range models.Categories {
		switch changes[cat].Impact {
		case ImpactPositive:
			improved = append(improved, cat)
		case ImpactNegative:
			weakened = append(weakened, cat)
		}
	}

	var overall, reason string
	switch {
	case len(improved) > len(weakened):
		overall = TradeFavorable
		reason = fmt.Sprintf("Improves %d categories against %d weakened", len(improved), len(weakened))
	case len(improved) < len(weakened):
		overall = TradeUnfavorable
		reason = fmt.Sprintf("Weakens %d categories against %d improved", len(weakened), len(improved))
	default:
		overall = TradeNeutral
		reason = fmt.Sprintf("Improves and weakens the same number of categories (%d vs %d)", len(improved), len(weakened))
	}

	if valueChange != nil {
		if valueChange.NetChange > netChangeOverride {
			overall = TradeFavorable
			reason += fmt.Sprintf("; total value rises by %.2f", valueChange.NetChange)
		} else if valueChange.NetChange < -netChangeOverride {
			overall = TradeUnfavorable
			reason += fmt.Sprintf("; total value drops by %.2f", -valueChange.NetChange)
		}
	}

	decision := "Consider"
	if overall == TradeFavorable {
		decision = "Accept"
	} else if overall == TradeUnfavorable {
		decision = "Reject"
	}

	return TradeRecommendation{
		Overall:            overall,
		Reason:             strings.TrimSpace(reason),
		ImprovedCategories: improved,
		WeakenedCategories: weakened,
		Decision:           decision,
	}
}
