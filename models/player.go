package models

// PlayerStat is a single player's stats as normalized from the clan API.
// UserID is the opaque per-player identifier the API sometimes provides;
// empty string means the API did not send one. Display names are not
// guaranteed unique, so UserID is the only trustworthy cross-week key
// when present.
type PlayerStat struct {
	Name       string
	UserID     string
	Rating     int
	PeakRating int
	Wins       int
	Games      int
}
