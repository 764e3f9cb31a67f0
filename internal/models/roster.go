package models

// Injury status tags as reported by the fantasy provider. GTD/DTD players
// still count toward active totals; the unavailable set does not.
const (
	StatusHealthy    = ""
	StatusGameTime   = "GTD"
	StatusDayToDay   = "DTD"
	StatusInjured    = "INJ"
	StatusOutShort   = "O"
	StatusOut        = "OUT"
	StatusInjuredRes = "IR"
)

// unavailableStatuses are excluded from active category totals.
var unavailableStatuses = map[string]bool{
	StatusInjured:    true,
	StatusOutShort:   true,
	StatusOut:        true,
	StatusInjuredRes: true,
}

// Player is a rostered player with an optional stat line. Stats is nil for
// players the provider returned no scoring-period data for.
type Player struct {
	PlayerID     string       `json:"player_id"`
	Name         string       `json:"name"`
	Team         string       `json:"team"`
	Positions    []string     `json:"positions"`
	InjuryStatus string       `json:"injury_status,omitempty"`
	Stats        *PlayerStats `json:"stats,omitempty"`
}

// IsAvailable reports whether the player can contribute to active totals.
func (p *Player) IsAvailable() bool {
	return !unavailableStatuses[p.InjuryStatus]
}

// IsHealthy reports whether the player carries no meaningful injury tag.
func (p *Player) IsHealthy() bool {
	switch p.InjuryStatus {
	case StatusHealthy, StatusGameTime, StatusDayToDay:
		return true
	}
	return false
}

// Roster is a fantasy team's player list.
type Roster struct {
	TeamName string   `json:"team_name"`
	Players  []Player `json:"players"`
}

// ActivePlayers returns the players available to contribute this period.
func (r *Roster) ActivePlayers() []Player {
	active := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.IsAvailable() {
			active = append(active, p)
		}
	}
	return active
}

// InjuredPlayers returns the players excluded from active totals.
func (r *Roster) InjuredPlayers() []Player {
	injured := make([]Player, 0)
	for _, p := range r.Players {
		if !p.IsAvailable() {
			injured = append(injured, p)
		}
	}
	return injured
}

// HasPlayer reports whether a player with the given id is on the roster.
func (r *Roster) HasPlayer(playerID string) bool {
	for _, p := range r.Players {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

// CategoryTotals aggregates the roster's category totals. Injured players are
// excluded unless includeInjured is set. Players without stats contribute
// nothing; an empty selection yields all-zero totals.
func (r *Roster) CategoryTotals(includeInjured bool) CategoryStats {
	players := r.Players
	if !includeInjured {
		players = r.ActivePlayers()
	}

	stats := make([]*PlayerStats, 0, len(players))
	for _, p := range players {
		if p.Stats != nil {
			stats = append(stats, p.Stats)
		}
	}

	return CalculateCategoryTotals(stats)
}
