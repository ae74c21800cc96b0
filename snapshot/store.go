package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"clanbot/models"
)

// ErrNotFound is returned by Load when no snapshot file exists for the
// requested week. A missing week is a normal "no prior data" condition,
// not a failure.
var ErrNotFound = errors.New("snapshot not found")

// Store owns all snapshot file I/O. Files live directly under the
// configured directory, one JSON array per week, named week{N}.json.
type Store struct {
	dir string
}

// NewStore creates a snapshot store rooted at dir. The directory is
// created on first write, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(week int) string {
	return filepath.Join(s.dir, fmt.Sprintf("week%d.json", week))
}

// Load reads the snapshot for the given week. Returns ErrNotFound when the
// file does not exist.
func (s *Store) Load(week int) (models.WeekSnapshot, error) {
	data, err := os.ReadFile(s.path(week))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot for week %d: %w", week, err)
	}

	var snap models.WeekSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for week %d: %w", week, err)
	}
	return snap, nil
}

// Save writes the snapshot for the given week, overwriting any existing
// file. The write goes to a temp file first and is renamed into place, so
// a concurrent reader (the renderer) never sees a partially written file.
func (s *Store) Save(week int, snap models.WeekSnapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for week %d: %w", week, err)
	}

	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf("week%d-*.tmp", week))
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot for week %d: %w", week, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(week)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move snapshot for week %d into place: %w", week, err)
	}

	log.Infof("Saved snapshot for week %d (%d players)", week, len(snap))
	return nil
}
