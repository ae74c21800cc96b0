package service

import (
	"context"
	"fmt"
	"sort"

	"clanbot/models"
)

// statsService implements the StatsService interface
type statsService struct {
	fetcher StatsFetcher
}

// NewStatsService creates a new stats service
func NewStatsService(fetcher StatsFetcher) StatsService {
	return &statsService{fetcher: fetcher}
}

// GetClanStats returns all clan players sorted by rating descending, ties
// keeping fetch order.
func (s *statsService) GetClanStats(ctx context.Context) ([]models.PlayerStat, error) {
	players, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clan stats: %w", err)
	}

	sorted := make([]models.PlayerStat, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	return sorted, nil
}
