package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

type MatchupHandler struct {
	snapshots *services.SnapshotService
}

func NewMatchupHandler(snapshots *services.SnapshotService) *MatchupHandler {
	return &MatchupHandler{snapshots: snapshots}
}

// PredictMatchup predicts the head-to-head outcome between two teams.
func (h *MatchupHandler) PredictMatchup(c *gin.Context) {
	var req struct {
		MyTeamKey       string `json:"my_team_key" binding:"required"`
		OpponentTeamKey string `json:"opponent_team_key" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()

	myRoster, err := h.snapshots.TeamRoster(ctx, req.MyTeamKey)
	if err != nil {
		utils.SendUnavailable(c, "Failed to fetch my roster: "+err.Error())
		return
	}
	oppRoster, err := h.snapshots.TeamRoster(ctx, req.OpponentTeamKey)
	if err != nil {
		utils.SendUnavailable(c, "Failed to fetch opponent roster: "+err.Error())
		return
	}

	result := analysis.PredictMatchup(myRoster.CategoryTotals(false), oppRoster.CategoryTotals(false))

	utils.SendSuccess(c, result)
}
