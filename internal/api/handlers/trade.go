package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/internal/models"
	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/config"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

type TradeHandler struct {
	snapshots *services.SnapshotService
	reports   *services.ReportService
	config    *config.Config
}

func NewTradeHandler(snapshots *services.SnapshotService, reports *services.ReportService, cfg *config.Config) *TradeHandler {
	return &TradeHandler{
		snapshots: snapshots,
		reports:   reports,
		config:    cfg,
	}
}

// EvaluateTrade simulates a trade against a team's roster. Give players are
// named by id from the roster; receive players by id from the league pool.
func (h *TradeHandler) EvaluateTrade(c *gin.Context) {
	var req struct {
		TeamKey    string   `json:"team_key" binding:"required"`
		GiveIDs    []string `json:"give" binding:"required,min=1"`
		ReceiveIDs []string `json:"receive" binding:"required,min=1"`
		Period     string   `json:"period"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.Period == "" {
		req.Period = "season"
	}

	ctx := c.Request.Context()

	roster, err := h.snapshots.TeamRoster(ctx, req.TeamKey)
	if err != nil {
		utils.SendUnavailable(c, "Failed to fetch roster: "+err.Error())
		return
	}

	players, err := h.snapshots.LeaguePlayers(ctx, req.Period)
	if err != nil {
		utils.SendUnavailable(c, "Failed to load league snapshot: "+err.Error())
		return
	}

	baseline, err := analysis.BuildBaseline(players)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	give := make([]models.Player, 0, len(req.GiveIDs))
	for _, id := range req.GiveIDs {
		p, found := findRosterPlayer(roster, id)
		if !found {
			// Still on the roster lookup path so EvaluateTrade can produce
			// the canonical validation error with full context.
			p = models.Player{PlayerID: id, Name: id}
		}
		give = append(give, p)
	}

	receive := make([]models.Player, 0, len(req.ReceiveIDs))
	for _, id := range req.ReceiveIDs {
		stats, found := findPoolPlayer(players, id)
		if !found {
			utils.SendValidationError(c, "Unknown receive player", "player "+id+" not found in league snapshot")
			return
		}
		receive = append(receive, models.Player{
			PlayerID:     stats.PlayerID,
			Name:         stats.PlayerName,
			Team:         stats.Team,
			Positions:    stats.Positions,
			InjuryStatus: stats.InjuryStatus,
			Stats:        stats,
		})
	}

	result, err := analysis.NewTradeAnalyzer(roster, baseline).EvaluateTrade(give, receive)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	// Persistence is best effort; the evaluation still goes back.
	if err := h.reports.SaveTradeEvaluation(roster.TeamName, result); err != nil {
		logrus.WithError(err).Warn("Failed to persist trade evaluation")
	}

	utils.SendSuccess(c, result)
}

// RecommendTargets recommends acquisitions that fix a team's weak categories.
func (h *TradeHandler) RecommendTargets(c *gin.Context) {
	var req struct {
		TeamKey    string   `json:"team_key" binding:"required"`
		Categories []string `json:"categories"`
		MaxResults int      `json:"max_results"`
		Period     string   `json:"period"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.Period == "" {
		req.Period = "season"
	}
	if req.MaxResults <= 0 || req.MaxResults > h.config.MaxTradeTargets {
		req.MaxResults = h.config.MaxTradeTargets
	}

	ctx := c.Request.Context()

	roster, err := h.snapshots.TeamRoster(ctx, req.TeamKey)
	if err != nil {
		utils.SendUnavailable(c, "Failed to fetch roster: "+err.Error())
		return
	}

	players, err := h.snapshots.LeaguePlayers(ctx, req.Period)
	if err != nil {
		utils.SendUnavailable(c, "Failed to load league snapshot: "+err.Error())
		return
	}

	recommender, err := analysis.NewTargetRecommenderWithThresholds(roster, players, h.config.PuntThreshold, h.config.StrongThreshold)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	targets, categories, err := recommender.RecommendTargets(req.Categories, req.MaxResults)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"target_categories": categories,
		"targets":           targets,
	})
}

func findRosterPlayer(roster *models.Roster, playerID string) (models.Player, bool) {
	for _, p := range roster.Players {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return models.Player{}, false
}

func findPoolPlayer(players []*models.PlayerStats, playerID string) (*models.PlayerStats, bool) {
	for _, s := range players {
		if s.PlayerID == playerID {
			return s, true
		}
	}
	return nil, false
}
