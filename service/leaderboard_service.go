package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"clanbot/models"
	"clanbot/snapshot"
)

// leaderboardService implements the LeaderboardService interface
type leaderboardService struct {
	fetcher  StatsFetcher
	store    SnapshotStore
	renderer Renderer
	now      func() time.Time
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(fetcher StatsFetcher, store SnapshotStore, renderer Renderer) LeaderboardService {
	return &leaderboardService{
		fetcher:  fetcher,
		store:    store,
		renderer: renderer,
		now:      time.Now,
	}
}

// NewLeaderboardServiceWithClock creates a leaderboard service with a
// caller-provided clock, used by tests to pin the week and cutoff day.
func NewLeaderboardServiceWithClock(fetcher StatsFetcher, store SnapshotStore, renderer Renderer, now func() time.Time) LeaderboardService {
	return &leaderboardService{
		fetcher:  fetcher,
		store:    store,
		renderer: renderer,
		now:      now,
	}
}

// Generate runs the snapshot-and-diff pipeline once: fetch current stats,
// diff against the week's persisted baseline, persist the result (plus the
// next week's seed on the cutoff day) and render the image. Stages run
// strictly in order; the first failure wins and nothing already persisted
// is rolled back.
func (s *leaderboardService) Generate(ctx context.Context) (*models.LeaderboardResult, error) {
	now := s.now()
	week := snapshot.WeekNumber(now)

	runLog := log.WithFields(log.Fields{
		"run_id": uuid.New().String(),
		"week":   week,
	})
	runLog.Info("Starting leaderboard run")

	// Fetch current stats
	current, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, stageErr(StageFetch, err)
	}
	runLog.Infof("Fetched %d players", len(current))

	// Load this week's baseline; a missing file just means no baseline
	previous, err := s.store.Load(week)
	if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
		return nil, stageErr(StagePersist, err)
	}
	if previous == nil {
		runLog.Info("No previous snapshot, deltas start at zero")
	}

	// Reconcile and persist
	snap, seed := snapshot.Reconcile(current, previous, now)
	if err := s.store.Save(week, snap); err != nil {
		return nil, stageErr(StagePersist, err)
	}
	if seed != nil {
		if err := s.store.Save(week+1, seed); err != nil {
			return nil, stageErr(StagePersist, fmt.Errorf("failed to seed week %d: %w", week+1, err))
		}
		runLog.Infof("Seeded baseline for week %d", week+1)
	}

	// Render the image
	imagePath, err := s.renderer.Render(ctx, week)
	if err != nil {
		return nil, stageErr(StageRender, err)
	}

	runLog.Info("Leaderboard run completed")
	return &models.LeaderboardResult{
		Week:      week,
		ImagePath: imagePath,
		Entries:   snap,
	}, nil
}
