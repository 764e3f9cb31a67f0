package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// FantasyClient fetches league players and team rosters from the fantasy
// provider API and maps them into the engine's record shapes. All field
// mapping from the external format happens here; nothing downstream sees the
// provider's JSON.
type FantasyClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	leagueID    string
	logger      *logrus.Logger
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
}

// NewFantasyClient creates a rate-limited, circuit-broken fantasy API client.
// breakerThreshold is the minimum request count before the circuit can trip.
func NewFantasyClient(baseURL, apiKey, leagueID string, requestsPerSecond float64, timeout time.Duration, breakerThreshold int, logger *logrus.Logger) *FantasyClient {
	if breakerThreshold < 1 {
		breakerThreshold = 3
	}
	settings := gobreaker.Settings{
		Name:    "fantasy-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(breakerThreshold) && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Warn("Circuit breaker state changed")
		},
	}

	return &FantasyClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		apiKey:      apiKey,
		leagueID:    leagueID,
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		breaker:     gobreaker.NewCircuitBreaker(settings),
	}
}

// Fantasy API response structures
type fantasyPlayersResponse struct {
	Players []fantasyPlayer `json:"players"`
	Paging  struct {
		Page       int  `json:"page"`
		TotalPages int  `json:"total_pages"`
		HasMore    bool `json:"has_more"`
	} `json:"paging"`
}

type fantasyPlayer struct {
	PlayerKey    string   `json:"player_key"`
	FullName     string   `json:"full_name"`
	TeamAbbr     string   `json:"editorial_team_abbr"`
	Positions    []string `json:"eligible_positions"`
	InjuryStatus string   `json:"status"`
	Stats        struct {
		GamesPlayed   int `json:"gp"`
		FGM           int `json:"fgm"`
		FGA           int `json:"fga"`
		FTM           int `json:"ftm"`
		FTA           int `json:"fta"`
		ThreePM       int `json:"3pm"`
		Points        int `json:"pts"`
		Rebounds      int `json:"reb"`
		Assists       int `json:"ast"`
		Steals        int `json:"st"`
		Blocks        int `json:"blk"`
		Turnovers     int `json:"to"`
		DoubleDoubles int `json:"dd"`
	} `json:"stats"`
}

type fantasyRosterResponse struct {
	TeamName string          `json:"team_name"`
	Players  []fantasyPlayer `json:"players"`
}

// GetLeaguePlayers fetches every player in the league, following pagination.
func (c *FantasyClient) GetLeaguePlayers(ctx context.Context) ([]*models.PlayerStats, error) {
	var all []*models.PlayerStats

	for page := 1; ; page++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		url := fmt.Sprintf("%s/leagues/%s/players?page=%d", c.baseURL, c.leagueID, page)
		var resp fantasyPlayersResponse
		if err := c.getJSON(ctx, url, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch league players page %d: %w", page, err)
		}

		for _, p := range resp.Players {
			all = append(all, mapPlayerStats(p))
		}

		if !resp.Paging.HasMore {
			break
		}
	}

	c.logger.WithField("players", len(all)).Info("Fetched league players")
	return all, nil
}

// GetTeamRoster fetches one team's roster with per-player stat lines.
func (c *FantasyClient) GetTeamRoster(ctx context.Context, teamKey string) (*models.Roster, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/leagues/%s/teams/%s/roster", c.baseURL, c.leagueID, teamKey)
	var resp fantasyRosterResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch roster for team %s: %w", teamKey, err)
	}

	roster := &models.Roster{TeamName: resp.TeamName}
	for _, p := range resp.Players {
		stats := mapPlayerStats(p)
		roster.Players = append(roster.Players, models.Player{
			PlayerID:     p.PlayerKey,
			Name:         p.FullName,
			Team:         p.TeamAbbr,
			Positions:    p.Positions,
			InjuryStatus: p.InjuryStatus,
			Stats:        stats,
		})
	}

	return roster, nil
}

func (c *FantasyClient) getJSON(ctx context.Context, url string, dest interface{}) error {
	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(body.([]byte), dest)
}

// mapPlayerStats converts a provider player into the engine's stat record.
// Optional provider fields default to zero values here; the engine never
// checks for missing attributes.
func mapPlayerStats(p fantasyPlayer) *models.PlayerStats {
	return &models.PlayerStats{
		PlayerID:      p.PlayerKey,
		PlayerName:    p.FullName,
		Team:          p.TeamAbbr,
		Positions:     p.Positions,
		GamesPlayed:   p.Stats.GamesPlayed,
		FGM:           p.Stats.FGM,
		FGA:           p.Stats.FGA,
		FTM:           p.Stats.FTM,
		FTA:           p.Stats.FTA,
		ThreePM:       p.Stats.ThreePM,
		Points:        p.Stats.Points,
		Rebounds:      p.Stats.Rebounds,
		Assists:       p.Stats.Assists,
		Steals:        p.Stats.Steals,
		Blocks:        p.Stats.Blocks,
		Turnovers:     p.Stats.Turnovers,
		DoubleDoubles: p.Stats.DoubleDoubles,
		InjuryStatus:  p.InjuryStatus,
	}
}
