package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// teamScalePool returns league records whose per-category spread makes the
// expected z-scores easy to compute by hand: PTS mean 200 std 100, REB mean
// 150 std 50, FG% mean .500 std .050, and so on.
func teamScalePool() []*models.PlayerStats {
	return []*models.PlayerStats{
		{PlayerID: "p1", PlayerName: "Low", GamesPlayed: 10, FGM: 45, FGA: 100, FTM: 70, FTA: 100, ThreePM: 30, Points: 100, Rebounds: 100, Assists: 50, Steals: 20, Blocks: 10, Turnovers: 30},
		{PlayerID: "p2", PlayerName: "Mid", GamesPlayed: 10, FGM: 50, FGA: 100, FTM: 75, FTA: 100, ThreePM: 40, Points: 200, Rebounds: 150, Assists: 70, Steals: 30, Blocks: 20, Turnovers: 40},
		{PlayerID: "p3", PlayerName: "High", GamesPlayed: 10, FGM: 55, FGA: 100, FTM: 80, FTA: 100, ThreePM: 50, Points: 300, Rebounds: 200, Assists: 90, Steals: 40, Blocks: 30, Turnovers: 50},
	}
}

// analysisRoster is a one-player roster whose team totals are strong in PTS,
// BLK and TO, weak in FG% and REB, and average elsewhere against
// teamScalePool's moments.
func analysisRoster() *models.Roster {
	return &models.Roster{
		TeamName: "Test Squad",
		Players: []models.Player{
			{
				PlayerID: "r1", Name: "Whole Team",
				Stats: &models.PlayerStats{
					PlayerID: "r1", PlayerName: "Whole Team", GamesPlayed: 10,
					FGM: 44, FGA: 100, FTM: 76, FTA: 100, ThreePM: 45,
					Points: 260, Rebounds: 90, Assists: 75, Steals: 33, Blocks: 26, Turnovers: 30,
				},
			},
		},
	}
}

func TestCategoryStrengthsWithoutBaseline(t *testing.T) {
	analyzer := NewRosterAnalyzer(analysisRoster(), nil)

	strengths, err := analyzer.CategoryStrengths()
	require.NoError(t, err)
	require.Len(t, strengths, 9)

	for cat, s := range strengths {
		assert.Nil(t, s.ZScore, "category %s should have no z-score without a baseline", cat)
		assert.Equal(t, "Average", s.Strength)
	}

	punt, err := analyzer.PuntCategories()
	require.NoError(t, err)
	assert.Empty(t, punt)
}

func TestCategoryStrengthsClassification(t *testing.T) {
	baseline, err := BuildBaseline(teamScalePool())
	require.NoError(t, err)
	analyzer := NewRosterAnalyzer(analysisRoster(), baseline)

	strengths, err := analyzer.CategoryStrengths()
	require.NoError(t, err)

	pts := strengths[models.CategoryPoints]
	require.NotNil(t, pts.ZScore)
	assert.InDelta(t, 0.6, *pts.ZScore, 1e-9)
	assert.Equal(t, "Strong", pts.Strength)

	reb := strengths[models.CategoryRebounds]
	require.NotNil(t, reb.ZScore)
	assert.InDelta(t, -1.2, *reb.ZScore, 1e-9)
	assert.Equal(t, "Punt", reb.Strength)

	fg := strengths[models.CategoryFGPct]
	require.NotNil(t, fg.ZScore)
	assert.InDelta(t, -1.2, *fg.ZScore, 1e-9)
	assert.Equal(t, "Punt", fg.Strength)

	// Below-average turnovers come out as a positive z-score.
	to := strengths[models.CategoryTurnovers]
	require.NotNil(t, to.ZScore)
	assert.InDelta(t, 1.0, *to.ZScore, 1e-9)
	assert.Equal(t, "Strong", to.Strength)
}

func TestPuntAndStrongCategories(t *testing.T) {
	baseline, err := BuildBaseline(teamScalePool())
	require.NoError(t, err)
	analyzer := NewRosterAnalyzer(analysisRoster(), baseline)

	punt, err := analyzer.PuntCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{models.CategoryFGPct, models.CategoryRebounds}, punt)

	strong, err := analyzer.StrongCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{models.CategoryPoints, models.CategoryBlocks, models.CategoryTurnovers}, strong)
}

func TestCustomThresholdsChangeClassification(t *testing.T) {
	baseline, err := BuildBaseline(teamScalePool())
	require.NoError(t, err)

	// Widen both cutoffs past the roster's z-scores. FG% and REB sit at
	// -1.2, PTS and BLK at +0.6, TO at +1.0.
	analyzer := NewRosterAnalyzerWithThresholds(analysisRoster(), baseline, -1.5, 0.9)

	punt, err := analyzer.PuntCategories()
	require.NoError(t, err)
	assert.Empty(t, punt)

	strong, err := analyzer.StrongCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{models.CategoryTurnovers}, strong)
}

func TestRosterReport(t *testing.T) {
	baseline, err := BuildBaseline(teamScalePool())
	require.NoError(t, err)
	analyzer := NewRosterAnalyzer(analysisRoster(), baseline)

	report, err := analyzer.Report()
	require.NoError(t, err)

	assert.Equal(t, "Test Squad", report.TeamName)
	assert.Equal(t, 1, report.TotalPlayers)
	assert.Equal(t, 1, report.ActivePlayers)
	assert.Equal(t, 0, report.InjuredPlayers)
	assert.Len(t, report.CategoryAnalysis, 9)

	// Three strong categories is below the five needed, FG% and REB are both
	// a full standard deviation under the mean.
	require.Len(t, report.Improvements, 3)
	assert.Equal(t, "High", report.Improvements[0].Priority)
}

func TestSuggestImprovementsWithoutBaseline(t *testing.T) {
	analyzer := NewRosterAnalyzer(analysisRoster(), nil)

	strengths, err := analyzer.CategoryStrengths()
	require.NoError(t, err)

	assert.Empty(t, analyzer.SuggestImprovements(strengths, nil, nil))
}
