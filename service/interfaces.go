package service

import (
	"context"

	"clanbot/models"
)

// StatsFetcher defines the interface for fetching current clan stats
type StatsFetcher interface {
	// Fetch returns the normalized player list from the remote API
	Fetch(ctx context.Context) ([]models.PlayerStat, error)
}

// SnapshotStore defines the interface for per-week snapshot persistence
type SnapshotStore interface {
	// Load reads the snapshot for a week; snapshot.ErrNotFound when absent
	Load(week int) (models.WeekSnapshot, error)

	// Save writes the snapshot for a week, overwriting any existing file
	Save(week int, snap models.WeekSnapshot) error
}

// Renderer defines the interface for producing the leaderboard image
type Renderer interface {
	// Render produces the image for a week and returns the artifact path
	Render(ctx context.Context, week int) (string, error)
}

// LeaderboardService defines the interface for the weekly leaderboard pipeline
type LeaderboardService interface {
	// Generate runs the full fetch/reconcile/persist/render pipeline once
	Generate(ctx context.Context) (*models.LeaderboardResult, error)
}

// StatsService defines the interface for plain stats queries
type StatsService interface {
	// GetClanStats returns all players sorted by rating descending
	GetClanStats(ctx context.Context) ([]models.PlayerStat, error)
}
