package snapshot

import (
	"sort"
	"time"

	"clanbot/models"
)

// Reconcile builds the week's snapshot from the current fetch and the
// previous snapshot. Players are sorted by rating descending (stable, so
// ties keep fetch order) and each one gets a rating delta against its
// matched previous entry, or 0 when there is no match.
//
// On the cutoff day it additionally returns a seed snapshot for week+1:
// the same players and ratings with every delta forced to 0, the baseline
// the next week diffs against. On any other day the seed is nil. An empty
// fetch produces an empty snapshot and never a seed.
func Reconcile(current []models.PlayerStat, previous models.WeekSnapshot, now time.Time) (models.WeekSnapshot, models.WeekSnapshot) {
	if len(current) == 0 {
		return models.WeekSnapshot{}, nil
	}

	sorted := make([]models.PlayerStat, len(current))
	copy(sorted, current)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	_, lookup := ReconcileIdentities(sorted, previous)

	snap := make(models.WeekSnapshot, 0, len(sorted))
	for _, p := range sorted {
		var match *models.SnapshotEntry
		if p.UserID != "" {
			match = lookup[p.UserID]
		} else {
			match = lookup[p.Name]
		}

		diff := 0
		if match != nil {
			diff = p.Rating - match.Rating
		}

		var userID *string
		if p.UserID != "" {
			id := p.UserID
			userID = &id
		}

		snap = append(snap, models.SnapshotEntry{
			Name:       p.Name,
			UserID:     userID,
			Rating:     p.Rating,
			RatingDiff: diff,
			Peak:       p.PeakRating,
			Wins:       p.Wins,
			Games:      p.Games,
		})
	}

	var seed models.WeekSnapshot
	if IsCutoffDay(now) {
		seed = make(models.WeekSnapshot, len(snap))
		copy(seed, snap)
		for i := range seed {
			seed[i].RatingDiff = 0
		}
	}

	return snap, seed
}
