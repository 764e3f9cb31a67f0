package models

import (
	"encoding/json"
	"math"
)

// The nine head-to-head scoring categories.
const (
	CategoryFGPct     = "FG%"
	CategoryFTPct     = "FT%"
	CategoryThreePM   = "3PM"
	CategoryPoints    = "PTS"
	CategoryRebounds  = "REB"
	CategoryAssists   = "AST"
	CategorySteals    = "ST"
	CategoryBlocks    = "BLK"
	CategoryTurnovers = "TO"
)

// Categories lists the nine scoring categories in display order.
var Categories = []string{
	CategoryFGPct,
	CategoryFTPct,
	CategoryThreePM,
	CategoryPoints,
	CategoryRebounds,
	CategoryAssists,
	CategorySteals,
	CategoryBlocks,
	CategoryTurnovers,
}

// IsCategory reports whether name is one of the nine scoring categories.
func IsCategory(name string) bool {
	for _, cat := range Categories {
		if cat == name {
			return true
		}
	}
	return false
}

// Ratio is a float64 that serializes the infinite assist/turnover sentinel
// (TO=0 with AST>0) as JSON null instead of an invalid token.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// IsInfinite reports whether the ratio holds the TO=0 sentinel.
func (r Ratio) IsInfinite() bool {
	return math.IsInf(float64(r), 1)
}

// PlayerStats holds one player's counting stats for a single scoring period.
// Values are set once at ingestion and never mutated; aggregation always
// produces new CategoryStats values.
type PlayerStats struct {
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	Team       string   `json:"team"`
	Positions  []string `json:"positions"`

	GamesPlayed int `json:"games_played"`

	FGM int `json:"fgm"`
	FGA int `json:"fga"`
	FTM int `json:"ftm"`
	FTA int `json:"fta"`

	ThreePM       int `json:"three_pm"`
	Points        int `json:"pts"`
	Rebounds      int `json:"reb"`
	Assists       int `json:"ast"`
	Steals        int `json:"st"`
	Blocks        int `json:"blk"`
	Turnovers     int `json:"to"`
	DoubleDoubles int `json:"dd"`

	InjuryStatus string `json:"injury_status,omitempty"`
}

// FGPct returns field-goal percentage, 0 when no attempts.
func (s *PlayerStats) FGPct() float64 {
	if s.FGA == 0 {
		return 0
	}
	return float64(s.FGM) / float64(s.FGA)
}

// FTPct returns free-throw percentage, 0 when no attempts.
func (s *PlayerStats) FTPct() float64 {
	if s.FTA == 0 {
		return 0
	}
	return float64(s.FTM) / float64(s.FTA)
}

// ATRatio returns the assist/turnover ratio. With zero turnovers it is 0 for a
// player without assists and the +Inf sentinel otherwise; callers must check
// IsInfinite before comparing or formatting the value numerically.
func (s *PlayerStats) ATRatio() Ratio {
	if s.Turnovers == 0 {
		if s.Assists > 0 {
			return Ratio(math.Inf(1))
		}
		return 0
	}
	return Ratio(float64(s.Assists) / float64(s.Turnovers))
}

// CategoryValue returns the player's raw value for one of the nine categories.
// The second return is false for an unknown category name.
func (s *PlayerStats) CategoryValue(category string) (float64, bool) {
	switch category {
	case CategoryFGPct:
		return s.FGPct(), true
	case CategoryFTPct:
		return s.FTPct(), true
	case CategoryThreePM:
		return float64(s.ThreePM), true
	case CategoryPoints:
		return float64(s.Points), true
	case CategoryRebounds:
		return float64(s.Rebounds), true
	case CategoryAssists:
		return float64(s.Assists), true
	case CategorySteals:
		return float64(s.Steals), true
	case CategoryBlocks:
		return float64(s.Blocks), true
	case CategoryTurnovers:
		return float64(s.Turnovers), true
	}
	return 0, false
}

// CategoryStats holds aggregated team-level category totals. Percentages are
// always derived from summed makes and attempts, never from averaging the
// per-player percentages.
type CategoryStats struct {
	FGM int `json:"fgm"`
	FGA int `json:"fga"`
	FTM int `json:"ftm"`
	FTA int `json:"fta"`

	FGPct         float64 `json:"fg_pct"`
	FTPct         float64 `json:"ft_pct"`
	ThreePM       int     `json:"three_pm"`
	Points        int     `json:"pts"`
	Rebounds      int     `json:"reb"`
	Assists       int     `json:"ast"`
	Steals        int     `json:"st"`
	Blocks        int     `json:"blk"`
	Turnovers     int     `json:"to"`
	DoubleDoubles int     `json:"dd"`
}

// ATRatio returns the team-level assist/turnover ratio with the same sentinel
// convention as PlayerStats.ATRatio.
func (c CategoryStats) ATRatio() Ratio {
	if c.Turnovers == 0 {
		if c.Assists > 0 {
			return Ratio(math.Inf(1))
		}
		return 0
	}
	return Ratio(float64(c.Assists) / float64(c.Turnovers))
}

// CategoryValue returns the team's raw value for one of the nine categories.
func (c CategoryStats) CategoryValue(category string) (float64, bool) {
	switch category {
	case CategoryFGPct:
		return c.FGPct, true
	case CategoryFTPct:
		return c.FTPct, true
	case CategoryThreePM:
		return float64(c.ThreePM), true
	case CategoryPoints:
		return float64(c.Points), true
	case CategoryRebounds:
		return float64(c.Rebounds), true
	case CategoryAssists:
		return float64(c.Assists), true
	case CategorySteals:
		return float64(c.Steals), true
	case CategoryBlocks:
		return float64(c.Blocks), true
	case CategoryTurnovers:
		return float64(c.Turnovers), true
	}
	return 0, false
}

// CalculateCategoryTotals sums counting stats over the given players and
// recomputes FG%/FT% from the summed makes and attempts. An empty input
// yields all-zero totals.
func CalculateCategoryTotals(stats []*PlayerStats) CategoryStats {
	var totals CategoryStats
	for _, s := range stats {
		if s == nil {
			continue
		}
		totals.FGM += s.FGM
		totals.FGA += s.FGA
		totals.FTM += s.FTM
		totals.FTA += s.FTA
		totals.ThreePM += s.ThreePM
		totals.Points += s.Points
		totals.Rebounds += s.Rebounds
		totals.Assists += s.Assists
		totals.Steals += s.Steals
		totals.Blocks += s.Blocks
		totals.Turnovers += s.Turnovers
		totals.DoubleDoubles += s.DoubleDoubles
	}

	if totals.FGA > 0 {
		totals.FGPct = float64(totals.FGM) / float64(totals.FGA)
	}
	if totals.FTA > 0 {
		totals.FTPct = float64(totals.FTM) / float64(totals.FTA)
	}

	return totals
}
