package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRoster() *Roster {
	return &Roster{
		TeamName: "Test Team",
		Players: []Player{
			{PlayerID: "1", Name: "Healthy Guard", Stats: &PlayerStats{GamesPlayed: 10, Points: 200, Turnovers: 30}},
			{PlayerID: "2", Name: "Questionable Wing", InjuryStatus: StatusGameTime, Stats: &PlayerStats{GamesPlayed: 9, Points: 150, Turnovers: 20}},
			{PlayerID: "3", Name: "Day To Day Big", InjuryStatus: StatusDayToDay, Stats: &PlayerStats{GamesPlayed: 8, Points: 120, Rebounds: 80}},
			{PlayerID: "4", Name: "Injured Star", InjuryStatus: StatusInjured, Stats: &PlayerStats{GamesPlayed: 5, Points: 180, Turnovers: 25}},
			{PlayerID: "5", Name: "Out Forward", InjuryStatus: StatusOut, Stats: &PlayerStats{GamesPlayed: 3, Points: 60}},
			{PlayerID: "6", Name: "IR Center", InjuryStatus: StatusInjuredRes, Stats: &PlayerStats{GamesPlayed: 0}},
			{PlayerID: "7", Name: "No Stats Rookie"},
		},
	}
}

func TestActivePlayersPartition(t *testing.T) {
	roster := testRoster()

	active := roster.ActivePlayers()
	injured := roster.InjuredPlayers()

	// GTD/DTD/empty are active; INJ/OUT/IR are not
	assert.Len(t, active, 4)
	assert.Len(t, injured, 3)
	assert.Equal(t, len(roster.Players), len(active)+len(injured))

	for _, p := range active {
		assert.True(t, p.IsAvailable())
	}
}

func TestPlayerAvailabilityStatuses(t *testing.T) {
	available := []string{StatusHealthy, StatusGameTime, StatusDayToDay}
	for _, status := range available {
		p := Player{InjuryStatus: status}
		assert.True(t, p.IsAvailable(), "status %q should be available", status)
	}

	unavailable := []string{StatusInjured, StatusOutShort, StatusOut, StatusInjuredRes}
	for _, status := range unavailable {
		p := Player{InjuryStatus: status}
		assert.False(t, p.IsAvailable(), "status %q should be unavailable", status)
	}
}

func TestCategoryTotalsIncludeInjuredNeverDecreases(t *testing.T) {
	roster := testRoster()

	active := roster.CategoryTotals(false)
	full := roster.CategoryTotals(true)

	assert.GreaterOrEqual(t, full.Points, active.Points)
	assert.GreaterOrEqual(t, full.Rebounds, active.Rebounds)
	assert.GreaterOrEqual(t, full.Turnovers, active.Turnovers)
	assert.GreaterOrEqual(t, full.FGA, active.FGA)

	// The injured star's points only appear in the full totals
	assert.Equal(t, 470, active.Points)
	assert.Equal(t, 710, full.Points)
}

func TestCategoryTotalsEmptySelection(t *testing.T) {
	roster := &Roster{
		TeamName: "All Hurt",
		Players: []Player{
			{PlayerID: "1", InjuryStatus: StatusInjured, Stats: &PlayerStats{Points: 100}},
		},
	}

	totals := roster.CategoryTotals(false)
	assert.Equal(t, CategoryStats{}, totals)
}

func TestHasPlayer(t *testing.T) {
	roster := testRoster()
	assert.True(t, roster.HasPlayer("4"))
	assert.False(t, roster.HasPlayer("999"))
}
