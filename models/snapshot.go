package models

// SnapshotEntry is the persisted form of one player's stats for one week.
// The JSON field names are a fixed contract with the puppeteer renderer,
// which reads the week file directly.
type SnapshotEntry struct {
	Name       string  `json:"name"`
	UserID     *string `json:"user_id"`
	Rating     int     `json:"rating"`
	RatingDiff int     `json:"rating_diff"`
	Peak       int     `json:"peak"`
	Wins       int     `json:"wins"`
	Games      int     `json:"games"`
}

// WeekSnapshot is the full leaderboard for one ISO week, sorted by rating
// descending (ties keep fetch order).
type WeekSnapshot []SnapshotEntry

// LeaderboardResult is what a completed leaderboard run hands back to the
// command layer.
type LeaderboardResult struct {
	Week      int
	ImagePath string
	Entries   WeekSnapshot
}
