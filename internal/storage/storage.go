package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/hahn/maakmai/internal/model"
)

// Storage defines the interface for persisting folders and bookmarks.
type Storage interface {
	Load() (*model.Snapshot, error)
	Save(snap *model.Snapshot) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the snapshot from the JSON file.
// Returns an empty snapshot if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewSnapshot(), nil
		}
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	// Ensure slices are not nil
	if snap.Folders == nil {
		snap.Folders = []model.Folder{}
	}
	if snap.Bookmarks == nil {
		snap.Bookmarks = []model.Bookmark{}
	}

	return &snap, nil
}

// Save writes the snapshot to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(snap *model.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultJSONPath returns the default JSON path: ~/.config/maakmai/maakmai.json
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "maakmai", "maakmai.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	// If SQLite database exists, use it
	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	// Fall back to JSON
	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
