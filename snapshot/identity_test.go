package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clanbot/models"
)

func TestReconcileIdentities_ExistingIDIndexedDirectly(t *testing.T) {
	current := []models.PlayerStat{{Name: "Alice", UserID: "u1", Rating: 1100}}
	previous := models.WeekSnapshot{{Name: "OldAlice", UserID: strPtr("u1"), Rating: 1000}}

	_, lookup := ReconcileIdentities(current, previous)

	require.Contains(t, lookup, "u1")
	assert.Equal(t, 1000, lookup["u1"].Rating)
}

func TestReconcileIdentities_BackfillsIDByName(t *testing.T) {
	current := []models.PlayerStat{{Name: "Alice", UserID: "u1", Rating: 1100}}
	previous := models.WeekSnapshot{{Name: "alice", UserID: nil, Rating: 1000}}

	repaired, lookup := ReconcileIdentities(current, previous)

	require.NotNil(t, repaired[0].UserID)
	assert.Equal(t, "u1", *repaired[0].UserID)
	require.Contains(t, lookup, "u1")
	assert.Equal(t, 1000, lookup["u1"].Rating)
}

func TestReconcileIdentities_BackfillsThroughClanTag(t *testing.T) {
	// Player renamed to carry the clan tag; the stripped name still matches
	current := []models.PlayerStat{{Name: "[XYZ] Alice", UserID: "u1", Rating: 1100}}
	previous := models.WeekSnapshot{{Name: "Alice", UserID: nil, Rating: 1000}}

	repaired, lookup := ReconcileIdentities(current, previous)

	require.NotNil(t, repaired[0].UserID)
	assert.Equal(t, "u1", *repaired[0].UserID)
	assert.Contains(t, lookup, "u1")
}

func TestReconcileIdentities_UnmatchedUsesRawNameKey(t *testing.T) {
	current := []models.PlayerStat{{Name: "Bob", UserID: "u2", Rating: 800}}
	previous := models.WeekSnapshot{{Name: "Ghost", UserID: nil, Rating: 500}}

	repaired, lookup := ReconcileIdentities(current, previous)

	assert.Nil(t, repaired[0].UserID)
	require.Contains(t, lookup, "Ghost")
	assert.Equal(t, 500, lookup["Ghost"].Rating)
}

func TestReconcileIdentities_NameMatchWithoutCurrentIDStaysOnName(t *testing.T) {
	// The current fetch knows the player but has no id for them either;
	// nothing to backfill, the raw name remains the key
	current := []models.PlayerStat{{Name: "Alice", UserID: "", Rating: 1100}}
	previous := models.WeekSnapshot{{Name: "Alice", UserID: nil, Rating: 1000}}

	repaired, lookup := ReconcileIdentities(current, previous)

	assert.Nil(t, repaired[0].UserID)
	assert.Contains(t, lookup, "Alice")
}

func TestReconcileIdentities_Idempotent(t *testing.T) {
	current := []models.PlayerStat{
		{Name: "[XYZ] Alice", UserID: "u1", Rating: 1100},
		{Name: "Bob", UserID: "u2", Rating: 800},
	}
	previous := models.WeekSnapshot{
		{Name: "Alice", UserID: nil, Rating: 1000},
		{Name: "Bob", UserID: nil, Rating: 750},
		{Name: "Ghost", UserID: nil, Rating: 500},
	}

	first, lookupA := ReconcileIdentities(current, previous)
	second, lookupB := ReconcileIdentities(current, first)

	assert.Equal(t, first, second)
	assert.Equal(t, keysOf(lookupA), keysOf(lookupB))
}

func TestSimplifyName(t *testing.T) {
	assert.Equal(t, "Alice", simplifyName("[XYZ] Alice"))
	assert.Equal(t, "Alice", simplifyName("Alice"))
	assert.Equal(t, "Alice [XYZ]", simplifyName("Alice [XYZ]"))
}

func keysOf(lookup map[string]*models.SnapshotEntry) map[string]bool {
	keys := make(map[string]bool, len(lookup))
	for k := range lookup {
		keys[k] = true
	}
	return keys
}
