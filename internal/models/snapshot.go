package models

import (
	"time"

	"gorm.io/datatypes"
)

// LeagueSnapshot is a persisted flat snapshot of league-wide player stats for
// one scoring period. Snapshots are overwritten wholesale per (season, period)
// rather than updated incrementally.
type LeagueSnapshot struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Season      string         `gorm:"not null;uniqueIndex:idx_season_period" json:"season"`
	Period      string         `gorm:"not null;uniqueIndex:idx_season_period" json:"period"`
	Source      string         `json:"source"`
	PlayerCount int            `json:"player_count"`
	Payload     datatypes.JSON `gorm:"not null" json:"payload"` // []PlayerStats
	FetchedAt   time.Time      `json:"fetched_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (LeagueSnapshot) TableName() string {
	return "league_snapshots"
}

// ReportRecord is a persisted generated report (weekly report, trade
// evaluation, rankings export) keyed by a UUID.
type ReportRecord struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	TeamName    string         `gorm:"index" json:"team_name"`
	Week        int            `json:"week"`
	Kind        string         `gorm:"not null" json:"kind"` // "weekly", "trade", "rankings"
	Payload     datatypes.JSON `gorm:"not null" json:"payload"`
	GeneratedAt time.Time      `json:"generated_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (ReportRecord) TableName() string {
	return "report_records"
}
