package upload

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/claude/hevylift/internal/models"
)

// StateDB tracks which routines have been successfully created so re-runs
// skip them instead of duplicating routines in Hevy.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite state database at dir/state.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS submitted_routines (
		title        TEXT PRIMARY KEY,
		payload_hash TEXT NOT NULL,
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsSubmitted checks if a routine was already created with the same payload.
// A changed payload under the same title counts as not submitted, so edits
// to the sheet go through again.
func (s *StateDB) IsSubmitted(title, hash string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM submitted_routines WHERE title = ? AND payload_hash = ?`,
		title, hash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkSubmitted records that a routine was successfully created.
func (s *StateDB) MarkSubmitted(title, hash string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO submitted_routines (title, payload_hash) VALUES (?, ?)`,
		title, hash,
	)
	return err
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// HashPayload computes the SHA-256 hash of a routine payload's JSON form.
func HashPayload(payload models.CreateRoutineRequest) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
