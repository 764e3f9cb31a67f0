package analysis

import (
	"sort"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// TradeTarget is one recommended acquisition, scored on the categories the
// roster needs.
type TradeTarget struct {
	PlayerID       string             `json:"player_id"`
	PlayerName     string             `json:"player_name"`
	Team           string             `json:"team"`
	TargetScore    float64            `json:"target_score"`
	TotalValue     float64            `json:"total_value"`
	CategoryScores map[string]float64 `json:"category_scores"`
	InjuryStatus   string             `json:"injury_status,omitempty"`
}

// TargetSuggestion pairs a recommended acquisition with the categories it
// shores up.
type TargetSuggestion struct {
	PlayerName      string   `json:"name"`
	BoostedWeakCats []string `json:"boosts"`
}

// TradePackage suggests sending away one expendable player for one of a few
// targets that fix the roster's weak categories.
type TradePackage struct {
	Give          string             `json:"give"`
	GiveStrengths []string           `json:"give_strengths"`
	Suggestions   []TargetSuggestion `json:"get_suggestions"`
}

// TargetRecommender ranks the available-player pool by how well each player
// fixes a roster's weak categories. The baseline is built from the pool.
type TargetRecommender struct {
	roster   *models.Roster
	pool     []*models.PlayerStats
	baseline *Baseline
	punt     float64
	strong   float64
}

// NewTargetRecommender builds a recommender over the available-player pool.
// It fails with a ValidationError when the pool cannot produce a baseline.
func NewTargetRecommender(roster *models.Roster, pool []*models.PlayerStats) (*TargetRecommender, error) {
	return NewTargetRecommenderWithThresholds(roster, pool, DefaultPuntThreshold, DefaultStrongThreshold)
}

// NewTargetRecommenderWithThresholds overrides the default punt/strong
// z-score cutoffs, typically from configuration.
func NewTargetRecommenderWithThresholds(roster *models.Roster, pool []*models.PlayerStats, punt, strong float64) (*TargetRecommender, error) {
	baseline, err := BuildBaseline(pool)
	if err != nil {
		return nil, err
	}
	if punt == 0 {
		punt = DefaultPuntThreshold
	}
	if strong == 0 {
		strong = DefaultStrongThreshold
	}
	return &TargetRecommender{roster: roster, pool: pool, baseline: baseline, punt: punt, strong: strong}, nil
}

// Baseline exposes the pool-derived baseline for reuse by callers.
func (r *TargetRecommender) Baseline() *Baseline {
	return r.baseline
}

// RecommendTargets scores every pool player on the target categories and
// returns the top maxResults, descending by target score with ties kept in
// input order. When targetCategories is empty the roster's punt categories
// (z below the punt threshold) are detected automatically; the resolved
// categories come back alongside the targets. Players already on the roster
// are excluded by id.
func (r *TargetRecommender) RecommendTargets(targetCategories []string, maxResults int) ([]TradeTarget, []string, error) {
	if len(targetCategories) == 0 {
		analyzer := NewRosterAnalyzerWithThresholds(r.roster, r.baseline, r.punt, r.strong)
		punt, err := analyzer.PuntCategories()
		if err != nil {
			return nil, nil, err
		}
		targetCategories = punt
	}

	if len(targetCategories) == 0 {
		// Balanced roster, nothing to shore up.
		return []TradeTarget{}, nil, nil
	}

	for _, cat := range targetCategories {
		if !models.IsCategory(cat) {
			return nil, nil, &ConfigError{Category: cat}
		}
	}

	targets := make([]TradeTarget, 0, len(r.pool))
	for _, stats := range r.pool {
		if stats == nil || stats.GamesPlayed == 0 {
			continue
		}
		if r.roster.HasPlayer(stats.PlayerID) {
			continue
		}

		scores, err := PlayerZScores(stats, r.baseline)
		if err != nil {
			return nil, nil, err
		}
		total, err := TotalValue(stats, r.baseline, nil)
		if err != nil {
			return nil, nil, err
		}

		var targetScore float64
		categoryScores := make(map[string]float64, len(targetCategories))
		for _, cat := range targetCategories {
			targetScore += scores[cat]
			categoryScores[cat] = scores[cat]
		}

		targets = append(targets, TradeTarget{
			PlayerID:       stats.PlayerID,
			PlayerName:     stats.PlayerName,
			Team:           stats.Team,
			TargetScore:    targetScore,
			TotalValue:     total,
			CategoryScores: categoryScores,
			InjuryStatus:   stats.InjuryStatus,
		})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].TargetScore > targets[j].TargetScore
	})

	if maxResults > 0 && len(targets) > maxResults {
		targets = targets[:maxResults]
	}

	return targets, targetCategories, nil
}

// ExpendablePlayers identifies roster players whose strengths do not overlap
// the roster's strong categories, plus injured players without usable stats.
func (r *TargetRecommender) ExpendablePlayers() ([]string, error) {
	analyzer := NewRosterAnalyzerWithThresholds(r.roster, r.baseline, r.punt, r.strong)
	strong, err := analyzer.StrongCategories()
	if err != nil {
		return nil, err
	}

	strongSet := make(map[string]bool, len(strong))
	for _, cat := range strong {
		strongSet[cat] = true
	}

	expendable := make([]string, 0)
	for _, p := range r.roster.Players {
		if p.Stats == nil || p.Stats.GamesPlayed == 0 {
			if p.InjuryStatus == models.StatusInjured {
				expendable = append(expendable, p.Name)
			}
			continue
		}

		scores, err := PlayerZScores(p.Stats, r.baseline)
		if err != nil {
			return nil, err
		}

		contributesToStrength := false
		for cat, z := range scores {
			if z > r.strong && strongSet[cat] {
				contributesToStrength = true
				break
			}
		}
		if !contributesToStrength {
			expendable = append(expendable, p.Name)
		}
	}

	return expendable, nil
}

// SuggestTradePackages pairs expendable players with targets that fix the
// roster's punt categories. With no candidates given, expendable players are
// detected automatically.
func (r *TargetRecommender) SuggestTradePackages(candidates []string) ([]TradePackage, error) {
	if len(candidates) == 0 {
		var err error
		candidates, err = r.ExpendablePlayers()
		if err != nil {
			return nil, err
		}
	}

	targets, punt, err := r.RecommendTargets(nil, 5)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return []TradePackage{}, nil
	}

	packages := make([]TradePackage, 0, len(candidates))
	for _, name := range candidates {
		var player *models.Player
		for i := range r.roster.Players {
			if r.roster.Players[i].Name == name {
				player = &r.roster.Players[i]
				break
			}
		}
		if player == nil || player.Stats == nil {
			continue
		}

		scores, err := PlayerZScores(player.Stats, r.baseline)
		if err != nil {
			return nil, err
		}
		var strengths []string
		for _, cat := range models.Categories {
			if scores[cat] > r.strong {
				strengths = append(strengths, cat)
			}
		}

		suggestions := make([]TargetSuggestion, 0, 3)
		for _, t := range targets {
			if len(suggestions) == 3 {
				break
			}
			var boosts []string
			for _, cat := range punt {
				if t.CategoryScores[cat] > 1.0 {
					boosts = append(boosts, cat)
				}
			}
			suggestions = append(suggestions, TargetSuggestion{
				PlayerName:      t.PlayerName,
				BoostedWeakCats: boosts,
			})
		}

		packages = append(packages, TradePackage{
			Give:          name,
			GiveStrengths: strengths,
			Suggestions:   suggestions,
		})
	}

	return packages, nil
}
