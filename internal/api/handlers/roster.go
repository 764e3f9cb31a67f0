package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/config"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

type RosterHandler struct {
	snapshots *services.SnapshotService
	config    *config.Config
}

func NewRosterHandler(snapshots *services.SnapshotService, cfg *config.Config) *RosterHandler {
	return &RosterHandler{snapshots: snapshots, config: cfg}
}

// GetRoster returns a team's roster with active/injured partition and totals.
func (h *RosterHandler) GetRoster(c *gin.Context) {
	teamKey := c.Param("key")
	includeInjured := c.Query("include_injured") == "true"

	roster, err := h.snapshots.TeamRoster(c.Request.Context(), teamKey)
	if err != nil {
		utils.SendUnavailable(c, "Failed to fetch roster: "+err.Error())
		return
	}

	utils.SendSuccess(c, gin.H{
		"team_name":       roster.TeamName,
		"players":         roster.Players,
		"active_players":  len(roster.ActivePlayers()),
		"injured_players": len(roster.InjuredPlayers()),
		"category_totals": roster.CategoryTotals(includeInjured),
	})
}

// GetRosterReport returns the full strength/weakness analysis for a team,
// scored against the league baseline.
func (h *RosterHandler) GetRosterReport(c *gin.Context) {
	teamKey := c.Param("key")
	period := c.DefaultQuery("period", "season")

	ctx := c.Request.Context()

	roster, err := h.snapshots.TeamRoster(ctx, teamKey)
	if err != nil {
		utils.SendUnavailable(c, "Failed to fetch roster: "+err.Error())
		return
	}

	players, err := h.snapshots.LeaguePlayers(ctx, period)
	if err != nil {
		utils.SendUnavailable(c, "Failed to load league snapshot: "+err.Error())
		return
	}

	baseline, err := analysis.BuildBaseline(players)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	analyzer := analysis.NewRosterAnalyzerWithThresholds(roster, baseline, h.config.PuntThreshold, h.config.StrongThreshold)
	report, err := analyzer.Report()
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	utils.SendSuccess(c, report)
}
