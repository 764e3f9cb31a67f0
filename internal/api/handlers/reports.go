package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GenerateWeeklyReport builds and persists the weekly report for a team.
func (h *ReportHandler) GenerateWeeklyReport(c *gin.Context) {
	var req struct {
		TeamKey     string `json:"team_key" binding:"required"`
		OpponentKey string `json:"opponent_key"`
		Week        int    `json:"week"`
		Period      string `json:"period"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.Period == "" {
		req.Period = "season"
	}
	if req.Week == 0 {
		_, req.Week = time.Now().UTC().ISOWeek()
	}

	report, err := h.reports.GenerateWeeklyReport(c.Request.Context(), req.TeamKey, req.OpponentKey, req.Period, req.Week)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}

	utils.SendSuccess(c, report)
}

// ListReports returns recently stored reports.
func (h *ReportHandler) ListReports(c *gin.Context) {
	team := c.Query("team")
	kind := c.Query("kind")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}

	records, err := h.reports.RecentReports(team, kind, limit)
	if err != nil {
		utils.SendInternalError(c, "Failed to load reports")
		return
	}

	utils.SendSuccess(c, gin.H{"reports": records})
}
