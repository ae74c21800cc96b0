package snapshot

import (
	"regexp"
	"strings"

	"clanbot/models"
)

// clanTagPattern matches a clan tag token at the start of a display name,
// e.g. "[XYZ] player". Players rename with and without the tag, so names
// are also indexed with it stripped.
var clanTagPattern = regexp.MustCompile(`^\[[^\]]*\]\s*`)

// simplifyName strips a leading clan tag token from a display name.
func simplifyName(name string) string {
	return strings.TrimSpace(clanTagPattern.ReplaceAllString(name, ""))
}

// ReconcileIdentities matches last week's entries against the current
// fetch. Entries that already carry a user id are indexed under it.
// Entries without one are looked up in the current fetch by
// case-insensitive name (with and without clan tag); on a hit the current
// player's id is copied into the entry (backfill), otherwise the raw name
// becomes the last-resort key.
//
// The returned lookup maps user ids and raw names to entries of the
// (possibly mutated) previous snapshot. Running it again on its own output
// yields the same ids.
//
// Known limitation: two distinct players sharing a display name across
// weeks can have their rating history cross-attributed by the name
// fallback. The id, when the API provides one, is the only real guard.
func ReconcileIdentities(current []models.PlayerStat, previous models.WeekSnapshot) (models.WeekSnapshot, map[string]*models.SnapshotEntry) {
	// Name index over the current fetch, simplified names as secondary
	// keys so they never shadow an exact name
	byName := make(map[string]models.PlayerStat, len(current)*2)
	for _, p := range current {
		key := strings.ToLower(p.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = p
		}
	}
	for _, p := range current {
		simple := strings.ToLower(simplifyName(p.Name))
		if _, ok := byName[simple]; !ok {
			byName[simple] = p
		}
	}

	lookup := make(map[string]*models.SnapshotEntry, len(previous))
	for i := range previous {
		entry := &previous[i]

		if entry.UserID != nil && *entry.UserID != "" {
			lookup[*entry.UserID] = entry
			continue
		}

		match, ok := byName[strings.ToLower(entry.Name)]
		if !ok {
			match, ok = byName[strings.ToLower(simplifyName(entry.Name))]
		}
		if ok && match.UserID != "" {
			id := match.UserID
			entry.UserID = &id
			lookup[id] = entry
			continue
		}

		lookup[entry.Name] = entry
	}

	return previous, lookup
}
