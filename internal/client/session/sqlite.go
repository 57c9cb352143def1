package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/logging"
)

// SQLiteStore keeps the session slot in a local SQLite key-value table.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

// Read returns the stored user record, or (nil, nil) when the slot is empty.
// A corrupt entry (unparseable JSON or a record without an identifier) is
// logged and reported as absent; the parse failure never escapes.
func (s *SQLiteStore) Read(ctx context.Context) (*models.User, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, sessionKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session entry: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "discarding corrupt session entry", "error", err)
		return nil, nil
	}
	if user.ID == "" || user.Email == "" {
		s.log.Warn(ctx, "discarding incomplete session entry")
		return nil, nil
	}
	return &user, nil
}

// Write serializes the user record into the session slot, replacing any
// previous entry.
func (s *SQLiteStore) Write(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session entry: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, sessionKey, value)
	if err != nil {
		return fmt.Errorf("failed to write session entry: %w", err)
	}
	return nil
}

// Clear deletes the session slot. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, sessionKey)
	if err != nil {
		return fmt.Errorf("failed to clear session entry: %w", err)
	}
	return nil
}
