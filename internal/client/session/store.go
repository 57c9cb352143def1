package session

import (
	"context"
	"database/sql"

	"github.com/careercompass/careercompass/internal/client/migrations"
	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/pressly/goose/v3"
)

// sessionKey is the well-known slot the serialized user record lives under.
const sessionKey = "userData"

// Store is the durable, session-scoped slot for the current user record.
// At most one record exists at a time.
//
// Read fails soft: a missing or unparseable entry is reported as (nil, nil),
// never as an error the caller must handle. Clear on an empty store is a
// no-op.
type Store interface {
	Read(ctx context.Context) (*models.User, error)
	Write(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

// RunMigrations brings the session database schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenDB opens the session database at dsn and applies migrations. The
// caller is responsible for importing a sqlite driver.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
