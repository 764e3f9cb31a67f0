package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SchedulerService runs the recurring background jobs: periodic league
// snapshot refreshes and the weekly report.
type SchedulerService struct {
	snapshots *SnapshotService
	reports   *ReportService
	logger    *logrus.Logger
	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool

	snapshotInterval time.Duration
	weeklyReportCron string
	teamKey          string
	period           string
}

func NewSchedulerService(
	snapshots *SnapshotService,
	reports *ReportService,
	logger *logrus.Logger,
	snapshotInterval time.Duration,
	weeklyReportCron string,
	teamKey string,
	period string,
) *SchedulerService {
	return &SchedulerService{
		snapshots:        snapshots,
		reports:          reports,
		logger:           logger,
		cron:             cron.New(),
		snapshotInterval: snapshotInterval,
		weeklyReportCron: weeklyReportCron,
		teamKey:          teamKey,
		period:           period,
	}
}

// Start schedules the background jobs and kicks off an initial snapshot
// refresh.
func (s *SchedulerService) Start(runInitialRefresh bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.snapshotInterval.String())
	if _, err := s.cron.AddFunc(schedule, s.refreshSnapshot); err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh: %w", err)
	}

	if s.teamKey != "" {
		if _, err := s.cron.AddFunc(s.weeklyReportCron, s.generateWeeklyReport); err != nil {
			return fmt.Errorf("failed to schedule weekly report: %w", err)
		}
	}

	s.cron.Start()
	s.isRunning = true

	if runInitialRefresh {
		go s.refreshSnapshot()
	}

	s.logger.Info("Scheduler service started")
	return nil
}

// Stop halts the scheduled jobs.
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Stop()
	s.isRunning = false
	s.logger.Info("Scheduler service stopped")
}

func (s *SchedulerService) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.snapshots.Refresh(ctx, s.period); err != nil {
		s.logger.WithError(err).Error("Scheduled snapshot refresh failed")
	}
}

func (s *SchedulerService) generateWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	week := isoWeek(time.Now().UTC())
	if _, err := s.reports.GenerateWeeklyReport(ctx, s.teamKey, "", s.period, week); err != nil {
		s.logger.WithError(err).Error("Scheduled weekly report failed")
	}
}

func isoWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
