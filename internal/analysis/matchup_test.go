package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

func matchupPair() (models.CategoryStats, models.CategoryStats) {
	my := models.CategoryStats{
		FGPct: 0.50, FTPct: 0.80,
		ThreePM: 50, Points: 500, Rebounds: 200,
		Assists: 100, Steals: 30, Blocks: 20, Turnovers: 60,
	}
	opp := models.CategoryStats{
		FGPct: 0.45, FTPct: 0.75,
		ThreePM: 40, Points: 450, Rebounds: 180,
		Assists: 120, Steals: 40, Blocks: 30, Turnovers: 60,
	}
	return my, opp
}

func TestPredictMatchupWinProbability(t *testing.T) {
	my, opp := matchupPair()

	result := PredictMatchup(my, opp)

	assert.Equal(t, 5, result.Prediction.Wins)
	assert.Equal(t, 3, result.Prediction.Losses)
	assert.Equal(t, 1, result.Prediction.Ties)
	assert.InDelta(t, (5.0+0.5)/9.0, result.Prediction.WinProbability, 1e-9)
	assert.Equal(t, OutcomeWin, result.Prediction.Outcome)
	assert.Len(t, result.CategoryBreakdown, 9)
}

func TestPredictMatchupTurnoverDirection(t *testing.T) {
	my, opp := matchupPair()
	my.Turnovers = 50 // fewer turnovers wins the category

	result := PredictMatchup(my, opp)

	var toPred *CategoryPrediction
	for i := range result.CategoryBreakdown {
		if result.CategoryBreakdown[i].Category == models.CategoryTurnovers {
			toPred = &result.CategoryBreakdown[i]
		}
	}
	require.NotNil(t, toPred)
	assert.Equal(t, WinnerMe, toPred.Winner)
	assert.Equal(t, 10.0, toPred.Margin)
}

func TestPredictMatchupSymmetry(t *testing.T) {
	my, opp := matchupPair()

	forward := PredictMatchup(my, opp)
	reverse := PredictMatchup(opp, my)

	assert.Equal(t, forward.Prediction.Wins, reverse.Prediction.Losses)
	assert.Equal(t, forward.Prediction.Losses, reverse.Prediction.Wins)
	assert.Equal(t, forward.Prediction.Ties, reverse.Prediction.Ties)
	assert.Equal(t, 9, forward.Prediction.Wins+reverse.Prediction.Wins+forward.Prediction.Ties)
}

func TestConfidenceTiers(t *testing.T) {
	tests := []struct {
		name   string
		my     float64
		opp    float64
		expect string
	}{
		{"zero value on one side", 100, 0, ConfidenceUnknown},
		{"both zero", 0, 0, ConfidenceUnknown},
		{"exactly 10 percent is low", 100, 90, ConfidenceLow},
		{"just over 10 percent", 100, 89, ConfidenceMedium},
		{"16.67 percent is medium", 120, 100, ConfidenceMedium},
		{"exactly 20 percent is medium", 125, 100, ConfidenceMedium},
		{"over 20 percent is high", 130, 100, ConfidenceHigh},
		{"tiny margin", 100, 99, ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin := tt.my - tt.opp
			if margin < 0 {
				margin = -margin
			}
			assert.Equal(t, tt.expect, confidenceTier(margin, tt.my, tt.opp))
		})
	}
}

func TestPredictMatchupStrategies(t *testing.T) {
	my, opp := matchupPair()

	result := PredictMatchup(my, opp)
	require.NotEmpty(t, result.Strategies)

	// The overall assessment is always present and last.
	overall := result.Strategies[len(result.Strategies)-1]
	assert.Equal(t, "Overall", overall.Type)
	assert.Contains(t, overall.Message, "5/9")
	assert.Contains(t, overall.Action, "Favorable")
}

func TestPredictMatchupUnfavorableOverall(t *testing.T) {
	my, opp := matchupPair()

	result := PredictMatchup(opp, my) // flip the favorable side

	overall := result.Strategies[len(result.Strategies)-1]
	assert.Equal(t, "Overall", overall.Type)
	assert.Contains(t, overall.Action, "Unfavorable")
	assert.Equal(t, OutcomeLoss, result.Prediction.Outcome)
}
