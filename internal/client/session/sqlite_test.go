package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/logging"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func insertEntry(t *testing.T, db *sql.DB, value string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO session(key,value) VALUES(?,?)`, sessionKey, []byte(value))
	require.NoError(t, err)
}

func newStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewSQLiteStore(db, logging.NewNopLogger()), db
}

func TestSQLiteStore_ReadEmpty_Absent(t *testing.T) {
	s, _ := newStore(t)
	user, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSQLiteStore_WriteRead_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := &models.User{
		ID:               "u1",
		Email:            "a@b.com",
		DisplayName:      "A",
		BirthDate:        "1990-01-01",
		ConsentData:      true,
		MarketingConsent: false,
	}
	require.NoError(t, s.Write(ctx, u))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestSQLiteStore_Write_ReplacesPreviousEntry(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, &models.User{ID: "u1", Email: "a@b.com"}))
	require.NoError(t, s.Write(ctx, &models.User{ID: "u2", Email: "c@d.com"}))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
}

func TestSQLiteStore_CorruptEntry_TreatedAsAbsent(t *testing.T) {
	s, db := newStore(t)
	insertEntry(t, db, "not json")

	user, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSQLiteStore_EntryWithoutIdentifier_TreatedAsAbsent(t *testing.T) {
	s, db := newStore(t)
	insertEntry(t, db, `{"displayName":"ghost"}`)

	user, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSQLiteStore_ClearEmpty_NoOp(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Clear(context.Background()))
}

func TestSQLiteStore_Clear_RemovesEntry(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, &models.User{ID: "u1", Email: "a@b.com"}))
	require.NoError(t, s.Clear(ctx))

	user, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestOpenDB_AppliesMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")
	db, err := OpenDB(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='session'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "session", name)
}
