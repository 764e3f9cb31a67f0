package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

type SnapshotHandler struct {
	snapshots *services.SnapshotService
}

func NewSnapshotHandler(snapshots *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// RefreshSnapshot forces a fresh fetch of the league player population.
func (h *SnapshotHandler) RefreshSnapshot(c *gin.Context) {
	period := c.DefaultQuery("period", "season")

	players, err := h.snapshots.Refresh(c.Request.Context(), period)
	if err != nil {
		utils.SendUnavailable(c, "Snapshot refresh failed: "+err.Error())
		return
	}

	utils.SendSuccess(c, gin.H{
		"period":       period,
		"player_count": len(players),
	})
}
