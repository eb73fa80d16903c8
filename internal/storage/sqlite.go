package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hahn/maakmai/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys and set pragmas for performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	// Check current schema version
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY NOT NULL,
			tag TEXT NOT NULL,
			parent_id TEXT,
			tag_groups TEXT NOT NULL DEFAULT '[]',
			color TEXT NOT NULL DEFAULT '0xFF9E9E9E',
			FOREIGN KEY (parent_id) REFERENCES folders(id) ON DELETE SET NULL
		);

		CREATE INDEX IF NOT EXISTS idx_folders_parent_id ON folders(parent_id);
		CREATE INDEX IF NOT EXISTS idx_folders_tag ON folders(tag);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			url TEXT,
			tags TEXT NOT NULL DEFAULT '[]',
			image_attachment_id TEXT,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_bookmarks_created_at ON bookmarks(created_at);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the snapshot from the SQLite database.
func (s *SQLiteStorage) Load() (*model.Snapshot, error) {
	snap := model.NewSnapshot()

	// Load folders
	rows, err := s.db.Query(`
		SELECT id, tag, parent_id, tag_groups, color
		FROM folders
		ORDER BY tag
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Folder
		var parentID sql.NullString
		var groupsJSON string

		if err := rows.Scan(&f.ID, &f.Tag, &parentID, &groupsJSON, &f.Color); err != nil {
			return nil, err
		}

		if parentID.Valid {
			f.Parent = &parentID.String
		}
		if err := json.Unmarshal([]byte(groupsJSON), &f.TagGroups); err != nil || f.TagGroups == nil {
			f.TagGroups = []string{}
		}

		snap.Folders = append(snap.Folders, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load bookmarks
	rows, err = s.db.Query(`
		SELECT id, title, description, url, tags, image_attachment_id, created_at
		FROM bookmarks
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Bookmark
		var url sql.NullString
		var attachmentID sql.NullString
		var tagsJSON string
		var createdAtStr string

		if err := rows.Scan(
			&b.ID, &b.Title, &b.Description, &url,
			&tagsJSON, &attachmentID, &createdAtStr,
		); err != nil {
			return nil, err
		}

		if url.Valid {
			b.URL = &url.String
		}
		if attachmentID.Valid {
			b.ImageAttachmentID = &attachmentID.String
		}

		if err := json.Unmarshal([]byte(tagsJSON), &b.Tags); err != nil || b.Tags == nil {
			b.Tags = []string{}
		}

		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

		snap.Bookmarks = append(snap.Bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}

// Save writes the snapshot to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(snap *model.Snapshot) error {
	// Temporarily disable foreign key checks for bulk insert
	// (folders may reference parents that haven't been inserted yet)
	// Note: PRAGMA foreign_keys cannot be changed inside a transaction
	if _, err := s.db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.db.Exec("PRAGMA foreign_keys = ON")
		return err
	}
	defer tx.Rollback()

	// Clear existing data
	if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM folders"); err != nil {
		return err
	}

	// Insert folders
	folderStmt, err := tx.Prepare(`
		INSERT INTO folders (id, tag, parent_id, tag_groups, color)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer folderStmt.Close()

	for _, f := range snap.Folders {
		groupsJSON, _ := json.Marshal(f.TagGroups)
		if f.TagGroups == nil {
			groupsJSON = []byte("[]")
		}
		if _, err := folderStmt.Exec(f.ID, f.Tag, f.Parent, string(groupsJSON), f.Color); err != nil {
			return err
		}
	}

	// Insert bookmarks
	bookmarkStmt, err := tx.Prepare(`
		INSERT INTO bookmarks (id, title, description, url, tags, image_attachment_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer bookmarkStmt.Close()

	for _, b := range snap.Bookmarks {
		tagsJSON, _ := json.Marshal(b.Tags)
		if b.Tags == nil {
			tagsJSON = []byte("[]")
		}
		createdAt := b.CreatedAt.Format(time.RFC3339)

		if _, err := bookmarkStmt.Exec(
			b.ID, b.Title, b.Description, b.URL,
			string(tagsJSON), b.ImageAttachmentID, createdAt,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// Re-enable foreign key checks
	_, _ = s.db.Exec("PRAGMA foreign_keys = ON")

	return nil
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/maakmai/maakmai.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "maakmai", "maakmai.db"), nil
}
