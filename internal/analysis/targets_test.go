package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

func TestNewTargetRecommenderEmptyPool(t *testing.T) {
	_, err := NewTargetRecommender(analysisRoster(), nil)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestRecommendTargetsUnknownCategory(t *testing.T) {
	recommender, err := NewTargetRecommender(analysisRoster(), teamScalePool())
	require.NoError(t, err)

	_, _, err = recommender.RecommendTargets([]string{"WINS"}, 0)
	require.Error(t, err)

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "WINS", configErr.Category)
}

func TestRecommendTargetsOrderingAndTruncation(t *testing.T) {
	recommender, err := NewTargetRecommender(analysisRoster(), teamScalePool())
	require.NoError(t, err)

	targets, cats, err := recommender.RecommendTargets([]string{models.CategoryRebounds}, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{models.CategoryRebounds}, cats)
	require.Len(t, targets, 2)
	assert.Equal(t, "High", targets[0].PlayerName)
	assert.Equal(t, "Mid", targets[1].PlayerName)
	assert.Greater(t, targets[0].TargetScore, targets[1].TargetScore)

	// Per-category scores are restricted to the requested categories.
	assert.Len(t, targets[0].CategoryScores, 1)
	assert.Contains(t, targets[0].CategoryScores, models.CategoryRebounds)
}

func TestRecommendTargetsExcludesRosterPlayers(t *testing.T) {
	pool := teamScalePool()
	roster := analysisRoster()
	// Put the roster player's own record in the pool; it must not come back
	// as a target.
	pool = append(pool, roster.Players[0].Stats)

	recommender, err := NewTargetRecommender(roster, pool)
	require.NoError(t, err)

	targets, _, err := recommender.RecommendTargets([]string{models.CategoryPoints}, 0)
	require.NoError(t, err)

	require.Len(t, targets, 3)
	for _, target := range targets {
		assert.NotEqual(t, "r1", target.PlayerID)
	}
}

func TestRecommendTargetsAutoDetectsWeakCategories(t *testing.T) {
	recommender, err := NewTargetRecommender(analysisRoster(), teamScalePool())
	require.NoError(t, err)

	targets, cats, err := recommender.RecommendTargets(nil, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{models.CategoryFGPct, models.CategoryRebounds}, cats)
	assert.NotEmpty(t, targets)
}

func TestRecommendTargetsBalancedRoster(t *testing.T) {
	// A roster sitting exactly on the pool mean has nothing to shore up.
	balanced := &models.Roster{
		TeamName: "Balanced",
		Players: []models.Player{
			{
				PlayerID: "r1", Name: "Exactly Average",
				Stats: &models.PlayerStats{
					PlayerID: "r1", PlayerName: "Exactly Average", GamesPlayed: 10,
					FGM: 50, FGA: 100, FTM: 75, FTA: 100, ThreePM: 40,
					Points: 200, Rebounds: 150, Assists: 70, Steals: 30, Blocks: 20, Turnovers: 40,
				},
			},
		},
	}

	recommender, err := NewTargetRecommender(balanced, teamScalePool())
	require.NoError(t, err)

	targets, cats, err := recommender.RecommendTargets(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, targets)
	assert.Nil(t, cats)
}

func TestRecommendTargetsSkipsZeroGames(t *testing.T) {
	pool := append(teamScalePool(), &models.PlayerStats{
		PlayerID: "ghost", PlayerName: "Ghost", Rebounds: 9999,
	})

	recommender, err := NewTargetRecommender(analysisRoster(), pool)
	require.NoError(t, err)

	targets, _, err := recommender.RecommendTargets([]string{models.CategoryRebounds}, 0)
	require.NoError(t, err)

	for _, target := range targets {
		assert.NotEqual(t, "Ghost", target.PlayerName)
	}
}

func TestSuggestTradePackages(t *testing.T) {
	recommender, err := NewTargetRecommender(analysisRoster(), teamScalePool())
	require.NoError(t, err)

	packages, err := recommender.SuggestTradePackages([]string{"Whole Team"})
	require.NoError(t, err)

	require.Len(t, packages, 1)
	pkg := packages[0]
	assert.Equal(t, "Whole Team", pkg.Give)
	assert.NotEmpty(t, pkg.Suggestions)
	assert.LessOrEqual(t, len(pkg.Suggestions), 3)
}
