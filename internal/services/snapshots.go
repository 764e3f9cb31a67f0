package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"

	"github.com/jstittsworth/ninecat-analyzer/internal/models"
	"github.com/jstittsworth/ninecat-analyzer/internal/providers"
	"github.com/jstittsworth/ninecat-analyzer/pkg/database"
)

// SnapshotService fetches league-wide player stats from the fantasy provider
// and stores them as flat snapshots, one per (season, period). A refresh
// overwrites the whole snapshot; there are no incremental updates, so a
// failed write leaves the previous snapshot intact.
type SnapshotService struct {
	db       *database.DB
	cache    *CacheService
	client   *providers.FantasyClient
	logger   *logrus.Logger
	season   string
	cacheTTL time.Duration
}

func NewSnapshotService(db *database.DB, cache *CacheService, client *providers.FantasyClient, logger *logrus.Logger, season string, cacheTTL time.Duration) *SnapshotService {
	return &SnapshotService{
		db:       db,
		cache:    cache,
		client:   client,
		logger:   logger,
		season:   season,
		cacheTTL: cacheTTL,
	}
}

// Refresh fetches the current league player population and overwrites the
// stored snapshot for the period.
func (s *SnapshotService) Refresh(ctx context.Context, period string) ([]*models.PlayerStats, error) {
	players, err := s.client.GetLeaguePlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot refresh failed: %w", err)
	}

	payload, err := json.Marshal(players)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	snapshot := models.LeagueSnapshot{
		Season:      s.season,
		Period:      period,
		Source:      "fantasy-api",
		PlayerCount: len(players),
		Payload:     payload,
		FetchedAt:   time.Now().UTC(),
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "season"}, {Name: "period"}},
		UpdateAll: true,
	}).Create(&snapshot).Error
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	cacheKey := LeaguePlayersCacheKey(s.season, period)
	if err := s.cache.Set(ctx, cacheKey, players, s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache league snapshot")
	}

	s.logger.WithFields(logrus.Fields{
		"season":  s.season,
		"period":  period,
		"players": len(players),
	}).Info("League snapshot refreshed")

	return players, nil
}

// LeaguePlayers returns the player population for a period: cache first, then
// the stored snapshot, then a provider refresh.
func (s *SnapshotService) LeaguePlayers(ctx context.Context, period string) ([]*models.PlayerStats, error) {
	cacheKey := LeaguePlayersCacheKey(s.season, period)

	var cached []*models.PlayerStats
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	var snapshot models.LeagueSnapshot
	err := s.db.Where("season = ? AND period = ?", s.season, period).First(&snapshot).Error
	if err == nil {
		var players []*models.PlayerStats
		if err := json.Unmarshal(snapshot.Payload, &players); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot payload: %w", err)
		}
		if err := s.cache.Set(ctx, cacheKey, players, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache league snapshot")
		}
		return players, nil
	}

	return s.Refresh(ctx, period)
}

// TeamRoster fetches a team's roster, cache first.
func (s *SnapshotService) TeamRoster(ctx context.Context, teamKey string) (*models.Roster, error) {
	cacheKey := RosterCacheKey(teamKey)

	var cached models.Roster
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached.Players) > 0 {
		return &cached, nil
	}

	roster, err := s.client.GetTeamRoster(ctx, teamKey)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, roster, s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache roster")
	}

	return roster, nil
}
