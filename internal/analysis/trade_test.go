package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

func tradeRoster() *models.Roster {
	return &models.Roster{
		TeamName: "My Team",
		Players: []models.Player{
			{
				PlayerID: "a", Name: "Guard One",
				Stats: &models.PlayerStats{
					PlayerID: "a", PlayerName: "Guard One", GamesPlayed: 10,
					FGM: 50, FGA: 100, FTM: 40, FTA: 50, ThreePM: 10,
					Points: 150, Rebounds: 60, Assists: 40, Steals: 10, Turnovers: 20,
				},
			},
			{
				PlayerID: "b", Name: "Wing Two",
				Stats: &models.PlayerStats{
					PlayerID: "b", PlayerName: "Wing Two", GamesPlayed: 10,
					FGM: 60, FGA: 110, FTM: 30, FTA: 40, ThreePM: 20,
					Points: 170, Rebounds: 80, Assists: 20, Steals: 15, Turnovers: 10,
				},
			},
			{
				PlayerID: "c", Name: "Injured Star", InjuryStatus: models.StatusInjured,
				Stats: &models.PlayerStats{
					PlayerID: "c", PlayerName: "Injured Star", GamesPlayed: 20,
					FGM: 200, FGA: 350, FTM: 150, FTA: 180, ThreePM: 60,
					Points: 600, Rebounds: 250, Assists: 150, Steals: 40, Blocks: 30, Turnovers: 40,
					InjuryStatus: models.StatusInjured,
				},
			},
		},
	}
}

func TestEvaluateTradeGiveNotOnRoster(t *testing.T) {
	analyzer := NewTradeAnalyzer(tradeRoster(), nil)

	stranger := models.Player{PlayerID: "zzz", Name: "Stranger"}
	_, err := analyzer.EvaluateTrade([]models.Player{stranger}, nil)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "Stranger")
	assert.Contains(t, err.Error(), "My Team")
}

func TestEvaluateTradeCategoryImpacts(t *testing.T) {
	roster := tradeRoster()
	analyzer := NewTradeAnalyzer(roster, nil)

	give := []models.Player{roster.Players[0]} // Guard One
	receive := []models.Player{{
		PlayerID: "d", Name: "Big Man",
		Stats: &models.PlayerStats{
			PlayerID: "d", PlayerName: "Big Man", GamesPlayed: 10,
			FGM: 70, FGA: 110, FTM: 20, FTA: 40, ThreePM: 0,
			Points: 160, Rebounds: 120, Assists: 10, Steals: 5, Blocks: 15, Turnovers: 12,
		},
	}}

	result, err := analyzer.EvaluateTrade(give, receive)
	require.NoError(t, err)

	// Fewer team turnovers after the trade is an improvement.
	toChange := result.CategoryChanges[models.CategoryTurnovers]
	assert.Equal(t, 30.0, toChange.Before)
	assert.Equal(t, 22.0, toChange.After)
	assert.Equal(t, ImpactPositive, toChange.Impact)

	rebChange := result.CategoryChanges[models.CategoryRebounds]
	assert.Equal(t, ImpactPositive, rebChange.Impact)
	assert.InDelta(t, (200.0-140.0)/140.0*100, rebChange.ChangePct, 1e-9)

	astChange := result.CategoryChanges[models.CategoryAssists]
	assert.Equal(t, ImpactNegative, astChange.Impact)

	// No baseline, no value-change section.
	assert.Nil(t, result.ValueChange)
}

func TestEvaluateTradeZeroBeforeChangePct(t *testing.T) {
	roster := tradeRoster() // no active player records blocks
	analyzer := NewTradeAnalyzer(roster, nil)

	receive := []models.Player{{
		PlayerID: "d", Name: "Shot Blocker",
		Stats: &models.PlayerStats{PlayerID: "d", GamesPlayed: 10, Blocks: 25},
	}}

	result, err := analyzer.EvaluateTrade([]models.Player{roster.Players[0]}, receive)
	require.NoError(t, err)

	blkChange := result.CategoryChanges[models.CategoryBlocks]
	assert.Equal(t, 0.0, blkChange.Before)
	assert.Equal(t, 25.0, blkChange.After)
	assert.Equal(t, 0.0, blkChange.ChangePct, "undefined relative change reports as zero")
	assert.Equal(t, ImpactPositive, blkChange.Impact)
}

func TestEvaluateTradeDoesNotMutateRoster(t *testing.T) {
	roster := tradeRoster()
	analyzer := NewTradeAnalyzer(roster, nil)

	receive := []models.Player{{
		PlayerID: "d", Name: "Big Man",
		Stats: &models.PlayerStats{PlayerID: "d", GamesPlayed: 10, Points: 100},
	}}

	_, err := analyzer.EvaluateTrade([]models.Player{roster.Players[0]}, receive)
	require.NoError(t, err)

	assert.Len(t, roster.Players, 3)
	assert.True(t, roster.HasPlayer("a"))
	assert.False(t, roster.HasPlayer("d"))
}

func TestEvaluateTradeNetValueOverride(t *testing.T) {
	roster := tradeRoster()
	baseline, err := BuildBaseline(leaguePopulation())
	require.NoError(t, err)
	analyzer := NewTradeAnalyzer(roster, baseline)

	// Giving away the injured star barely moves the active category totals,
	// but his baseline value dwarfs the scrub coming back. The net value drop
	// overrides the category-count verdict.
	give := []models.Player{roster.Players[2]} // Injured Star
	receive := []models.Player{{
		PlayerID: "d", Name: "End Of Bench",
		Stats: &models.PlayerStats{
			PlayerID: "d", PlayerName: "End Of Bench", GamesPlayed: 10,
			FGM: 10, FGA: 18, FTM: 8, FTA: 10, ThreePM: 2,
			Points: 30, Rebounds: 12, Assists: 8, Steals: 2, Blocks: 1, Turnovers: 0,
		},
	}}

	result, err := analyzer.EvaluateTrade(give, receive)
	require.NoError(t, err)

	require.NotNil(t, result.ValueChange)
	assert.Equal(t, "Loss", result.ValueChange.Verdict)
	assert.Less(t, result.ValueChange.NetChange, -netChangeOverride)

	// More categories improve than weaken, yet the value swing decides.
	rec := result.Recommendation
	assert.Greater(t, len(rec.ImprovedCategories), len(rec.WeakenedCategories))
	assert.Equal(t, TradeUnfavorable, rec.Overall)
	assert.Equal(t, "Reject", rec.Decision)
	assert.Contains(t, rec.Reason, "total value drops")
}

func TestEvaluateTradeValueSkipsUnusableStats(t *testing.T) {
	roster := tradeRoster()
	baseline, err := BuildBaseline(leaguePopulation())
	require.NoError(t, err)
	analyzer := NewTradeAnalyzer(roster, baseline)

	receive := []models.Player{
		{PlayerID: "d", Name: "No Stats"},
		{PlayerID: "e", Name: "Never Played", Stats: &models.PlayerStats{PlayerID: "e"}},
	}

	result, err := analyzer.EvaluateTrade([]models.Player{roster.Players[0]}, receive)
	require.NoError(t, err)

	require.NotNil(t, result.ValueChange)
	assert.Empty(t, result.ValueChange.PlayersReceived)
	assert.Equal(t, 0.0, result.ValueChange.TotalValueReceived)
	assert.Len(t, result.ValueChange.PlayersGiven, 1)
}
