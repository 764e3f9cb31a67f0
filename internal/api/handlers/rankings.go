package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/config"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

type RankingsHandler struct {
	snapshots *services.SnapshotService
	cache     *services.CacheService
	export    *services.ExportService
	config    *config.Config
}

func NewRankingsHandler(snapshots *services.SnapshotService, cache *services.CacheService, cfg *config.Config) *RankingsHandler {
	return &RankingsHandler{
		snapshots: snapshots,
		cache:     cache,
		export:    services.NewExportService(),
		config:    cfg,
	}
}

// GetRankings returns players ranked by total z-score value for a period.
func (h *RankingsHandler) GetRankings(c *gin.Context) {
	period := c.DefaultQuery("period", "season")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		utils.SendValidationError(c, "Invalid limit", "limit must be a non-negative integer")
		return
	}

	ctx := c.Request.Context()

	cacheKey := services.RankingsCacheKey(h.config.Season, period)
	var entries []analysis.RankingEntry
	if err := h.cache.Get(ctx, cacheKey, &entries); err != nil {
		entries, err = h.computeRankings(ctx, period)
		if err != nil {
			sendAnalysisError(c, err)
			return
		}
		// Cache failures are not fatal; rankings were computed either way.
		_ = h.cache.Set(ctx, cacheKey, entries, time.Hour)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	utils.SendSuccess(c, gin.H{
		"period":   period,
		"rankings": entries,
	})
}

// ExportRankings renders the rankings as a CSV sheet.
func (h *RankingsHandler) ExportRankings(c *gin.Context) {
	period := c.DefaultQuery("period", "season")

	entries, err := h.computeRankings(c.Request.Context(), period)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	sheet := h.export.RankingsSheet(entries)
	data, err := h.export.RenderCSV(sheet)
	if err != nil {
		utils.SendInternalError(c, "Failed to render CSV export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="rankings.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *RankingsHandler) computeRankings(ctx context.Context, period string) ([]analysis.RankingEntry, error) {
	players, err := h.snapshots.LeaguePlayers(ctx, period)
	if err != nil {
		return nil, err
	}
	return analysis.RankPlayers(players, nil)
}
