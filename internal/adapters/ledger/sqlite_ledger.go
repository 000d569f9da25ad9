package ledger

import (
	"airship-delivery/internal/domain"
	"airship-delivery/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLite backed Captain's log. The default runs on an in-memory database,
// so entries vanish with the process.
type SqliteLedger struct {
	DB *sql.DB
}

func NewSqliteLedger(db *sql.DB) *SqliteLedger {
	return &SqliteLedger{DB: db}
}

// Append a log entry.
func (s *SqliteLedger) Record(ctx context.Context, e domain.LogEntry) (err error) {
	defer obs.Time(ctx, "ledger.sqlite.Record")(&err)

	if s.DB == nil {
		return errors.New("sqlite ledger: db is nil")
	}
	if strings.TrimSpace(e.SessionID) == "" {
		return errors.New("record ledger entry: session id must not be empty")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO captains_log (
		session_id,
		seq,
		op,
		customer,
		item,
		quantity,
		cost,
		recorded_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		e.SessionID,
		e.Seq,
		string(e.Op),
		e.Delivery.Customer,
		e.Delivery.Item,
		e.Delivery.Quantity,
		e.Delivery.Cost,
		e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record ledger entry seq=%d: %w", e.Seq, err)
	}

	return nil
}

// Return all entries recorded for a session, oldest first.
func (s *SqliteLedger) List(ctx context.Context, sessionID string) (_ []domain.LogEntry, err error) {
	defer obs.Time(ctx, "ledger.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite ledger: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		seq,
		op,
		customer,
		item,
		quantity,
		cost,
		recorded_at
	FROM captains_log
	WHERE session_id = ?
	ORDER BY seq;
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: query captains_log table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.LogEntry, 0, 16)
	for rows.Next() {
		var e domain.LogEntry
		var op, at string
		if err := rows.Scan(
			&e.Seq,
			&op,
			&e.Delivery.Customer,
			&e.Delivery.Item,
			&e.Delivery.Quantity,
			&e.Delivery.Cost,
			&at,
		); err != nil {
			return nil, fmt.Errorf("list ledger entries: scan row: %w", err)
		}

		e.SessionID = sessionID
		e.Op = domain.LogOp(op)
		e.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("list ledger entries: parse recorded_at seq=%d: %w", e.Seq, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger entries: row iteration: %w", err)
	}

	return out, nil
}

// Close releases the database; an in-memory log is discarded with it.
func (s *SqliteLedger) Close(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
