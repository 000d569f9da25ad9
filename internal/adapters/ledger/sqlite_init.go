package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite Captain's log schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLogQuery := `
	CREATE TABLE IF NOT EXISTS captains_log (
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		op TEXT NOT NULL,
		customer TEXT NOT NULL,
		item TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		cost REAL NOT NULL,
		recorded_at TEXT NOT NULL,
		PRIMARY KEY (session_id, seq)
	);
	`

	if _, err := tx.Exec(createLogQuery); err != nil {
		return fmt.Errorf("init schema: create captains_log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Initialize the Postgres Captain's log schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS captains_log (
			session_id UUID NOT NULL,
			seq INTEGER NOT NULL,
			op TEXT NOT NULL,
			customer TEXT NOT NULL,
			item TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			cost DOUBLE PRECISION NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (session_id, seq)
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_captains_log_recorded_at
		ON captains_log(recorded_at);
		`,
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}
