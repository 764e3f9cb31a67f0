package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/internal/models"
	"github.com/jstittsworth/ninecat-analyzer/pkg/database"
)

// Report kinds stored in report_records.
const (
	ReportKindWeekly   = "weekly"
	ReportKindTrade    = "trade"
	ReportKindRankings = "rankings"
)

// ReportService generates and persists analysis reports.
type ReportService struct {
	db        *database.DB
	cache     *CacheService
	snapshots *SnapshotService
	logger    *logrus.Logger
}

func NewReportService(db *database.DB, cache *CacheService, snapshots *SnapshotService, logger *logrus.Logger) *ReportService {
	return &ReportService{
		db:        db,
		cache:     cache,
		snapshots: snapshots,
		logger:    logger,
	}
}

// GenerateWeeklyReport builds the weekly report for one team, optionally
// against this week's opponent, and persists it.
func (s *ReportService) GenerateWeeklyReport(ctx context.Context, teamKey, opponentKey, period string, week int) (*analysis.WeeklyReport, error) {
	roster, err := s.snapshots.TeamRoster(ctx, teamKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load team roster: %w", err)
	}

	var opponent *models.Roster
	if opponentKey != "" {
		opponent, err = s.snapshots.TeamRoster(ctx, opponentKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load opponent roster: %w", err)
		}
	}

	leaguePlayers, err := s.snapshots.LeaguePlayers(ctx, period)
	if err != nil {
		s.logger.WithError(err).Warn("League snapshot unavailable, report will omit z-score sections")
		leaguePlayers = nil
	}

	report, err := analysis.GenerateWeeklyReport(roster, opponent, leaguePlayers, week)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ReportKindWeekly, roster.TeamName, week, report); err != nil {
		s.logger.WithError(err).Warn("Failed to persist weekly report")
	}

	if err := s.cache.Set(ctx, WeeklyReportCacheKey(teamKey, week), report, time.Hour); err != nil {
		s.logger.WithError(err).Warn("Failed to cache weekly report")
	}

	return report, nil
}

// SaveTradeEvaluation persists a computed trade evaluation for audit.
func (s *ReportService) SaveTradeEvaluation(teamName string, result *analysis.TradeResult) error {
	return s.persist(ReportKindTrade, teamName, 0, result)
}

func (s *ReportService) persist(kind, teamName string, week int, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s report: %w", kind, err)
	}

	record := models.ReportRecord{
		ID:          uuid.NewString(),
		TeamName:    teamName,
		Week:        week,
		Kind:        kind,
		Payload:     data,
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to store %s report: %w", kind, err)
	}

	s.logger.WithFields(logrus.Fields{
		"report_id": record.ID,
		"kind":      kind,
		"team":      teamName,
	}).Info("Report stored")

	return nil
}

// RecentReports returns the latest stored reports of one kind for a team.
func (s *ReportService) RecentReports(teamName, kind string, limit int) ([]models.ReportRecord, error) {
	var records []models.ReportRecord
	q := s.db.Order("generated_at DESC").Limit(limit)
	if teamName != "" {
		q = q.Where("team_name = ?", teamName)
	}
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}
	return records, nil
}
