package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clanbot/models"
)

func strPtr(s string) *string {
	return &s
}

func TestStore_SaveAndLoadRoundtrip(t *testing.T) {
	store := NewStore(t.TempDir())

	snap := models.WeekSnapshot{
		{Name: "Alice", UserID: strPtr("u1"), Rating: 1200, RatingDiff: 50, Peak: 1300, Wins: 10, Games: 20},
		{Name: "Bob", UserID: nil, Rating: 900, RatingDiff: -25, Peak: 950, Wins: 4, Games: 9},
	}

	require.NoError(t, store.Save(23, snap))

	loaded, err := store.Load(23)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestStore_LoadMissingWeekIsNotFound(t *testing.T) {
	store := NewStore(t.TempDir())

	snap, err := store.Load(42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, snap)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(dir)

	require.NoError(t, store.Save(1, models.WeekSnapshot{}))

	_, err := os.Stat(filepath.Join(dir, "week1.json"))
	assert.NoError(t, err)
}

func TestStore_SaveOverwritesExistingWeek(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(5, models.WeekSnapshot{{Name: "Old", Rating: 100}}))
	require.NoError(t, store.Save(5, models.WeekSnapshot{{Name: "New", Rating: 200}}))

	loaded, err := store.Load(5)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New", loaded[0].Name)
}

func TestStore_FileUsesRendererContract(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	snap := models.WeekSnapshot{
		{Name: "Alice", UserID: nil, Rating: 1200, RatingDiff: 50, Peak: 1300, Wins: 10, Games: 20},
	}
	require.NoError(t, store.Save(23, snap))

	// The renderer reads week{N}.json directly, so the field names on disk
	// are part of the contract
	data, err := os.ReadFile(filepath.Join(dir, "week23.json"))
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	for _, field := range []string{"name", "user_id", "rating", "rating_diff", "peak", "wins", "games"} {
		assert.Contains(t, raw[0], field)
	}
	assert.Nil(t, raw[0]["user_id"])
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(7, models.WeekSnapshot{{Name: "Alice"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "week7.json", entries[0].Name())
}
