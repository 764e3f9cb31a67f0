package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/api/handlers"
	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, cfg *config.Config, cache *services.CacheService, snapshots *services.SnapshotService, reports *services.ReportService) {
	rankingsHandler := handlers.NewRankingsHandler(snapshots, cache, cfg)
	rosterHandler := handlers.NewRosterHandler(snapshots, cfg)
	matchupHandler := handlers.NewMatchupHandler(snapshots)
	tradeHandler := handlers.NewTradeHandler(snapshots, reports, cfg)
	reportHandler := handlers.NewReportHandler(reports)
	snapshotHandler := handlers.NewSnapshotHandler(snapshots)

	// Rankings
	group.GET("/rankings", rankingsHandler.GetRankings)
	group.GET("/rankings/export", rankingsHandler.ExportRankings)

	// Teams
	group.GET("/teams/:key/roster", rosterHandler.GetRoster)
	group.GET("/teams/:key/report", rosterHandler.GetRosterReport)

	// Matchups
	group.POST("/matchups/predict", matchupHandler.PredictMatchup)

	// Trades
	group.POST("/trades/evaluate", tradeHandler.EvaluateTrade)
	group.POST("/trades/targets", tradeHandler.RecommendTargets)

	// Reports
	group.POST("/reports/weekly", reportHandler.GenerateWeeklyReport)
	group.GET("/reports", reportHandler.ListReports)

	// Snapshots
	group.POST("/snapshots/refresh", snapshotHandler.RefreshSnapshot)
}
