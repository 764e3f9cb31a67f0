package analysis

import (
	"sort"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// RankingEntry is one row of a player ranking.
type RankingEntry struct {
	Rank           int                `json:"rank"`
	PlayerID       string             `json:"player_id"`
	PlayerName     string             `json:"player_name"`
	Team           string             `json:"team"`
	TotalValue     float64            `json:"total_value"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// RankPlayers ranks players by total z-score value, descending. Records
// without games played are skipped. When baseline is nil one is built from
// the records themselves. Ranks are 1-based and contiguous; equal totals keep
// their input order and get distinct consecutive ranks rather than a shared
// rank.
func RankPlayers(records []*models.PlayerStats, baseline *Baseline) ([]RankingEntry, error) {
	if baseline == nil {
		var err error
		baseline, err = BuildBaseline(records)
		if err != nil {
			return nil, err
		}
	}

	entries := make([]RankingEntry, 0, len(records))
	for _, stats := range records {
		if stats == nil || stats.GamesPlayed == 0 {
			continue
		}

		scores, err := PlayerZScores(stats, baseline)
		if err != nil {
			return nil, err
		}
		total, err := TotalValue(stats, baseline, nil)
		if err != nil {
			return nil, err
		}

		entries = append(entries, RankingEntry{
			PlayerID:       stats.PlayerID,
			PlayerName:     stats.PlayerName,
			Team:           stats.Team,
			TotalValue:     total,
			CategoryScores: scores,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalValue > entries[j].TotalValue
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
