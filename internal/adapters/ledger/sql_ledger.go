package ledger

import (
	"airship-delivery/internal/domain"
	"airship-delivery/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// SQLLedger is a Postgres-backed Captain's log. Rows are scoped by session id
// and purged on Close so nothing carries over into the next run.
// Like the session that owns it, an SQLLedger is not safe for concurrent use.
type SQLLedger struct {
	DB *sql.DB

	sessions map[string]struct{}
}

func NewSQLLedger(db *sql.DB) *SQLLedger {
	return &SQLLedger{DB: db, sessions: map[string]struct{}{}}
}

func (s *SQLLedger) Record(ctx context.Context, e domain.LogEntry) (err error) {
	defer obs.Time(ctx, "ledger.sql.Record")(&err)

	if s.DB == nil {
		return errors.New("sql ledger: db is nil")
	}
	if e.SessionID == "" {
		return errors.New("record ledger entry: session id must not be empty")
	}

	q := `
	INSERT INTO captains_log (session_id, seq, op, customer, item, quantity, cost, recorded_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = s.DB.ExecContext(ctx, q,
		e.SessionID,
		e.Seq,
		string(e.Op),
		e.Delivery.Customer,
		e.Delivery.Item,
		e.Delivery.Quantity,
		e.Delivery.Cost,
		e.At.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record ledger entry seq=%d: %w", e.Seq, err)
	}

	if s.sessions == nil {
		s.sessions = map[string]struct{}{}
	}
	s.sessions[e.SessionID] = struct{}{}

	return nil
}

func (s *SQLLedger) List(ctx context.Context, sessionID string) (_ []domain.LogEntry, err error) {
	defer obs.Time(ctx, "ledger.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql ledger: db is nil")
	}

	q := `
	SELECT seq, op, customer, item, quantity, cost, recorded_at
	FROM captains_log
	WHERE session_id = $1
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: query captains_log table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.LogEntry, 0, 16)
	for rows.Next() {
		var e domain.LogEntry
		var op string
		if err := rows.Scan(
			&e.Seq,
			&op,
			&e.Delivery.Customer,
			&e.Delivery.Item,
			&e.Delivery.Quantity,
			&e.Delivery.Cost,
			&e.At,
		); err != nil {
			return nil, fmt.Errorf("list ledger entries: scan row: %w", err)
		}
		e.SessionID = sessionID
		e.Op = domain.LogOp(op)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger entries: row iteration: %w", err)
	}

	return out, nil
}

// Close deletes every session this ledger wrote to, then closes the pool.
func (s *SQLLedger) Close(ctx context.Context) (err error) {
	defer obs.Time(ctx, "ledger.sql.Close")(&err)

	if s.DB == nil {
		return nil
	}

	ids := slices.Sorted(maps.Keys(s.sessions))
	clear(s.sessions)

	var purgeErr error
	if len(ids) > 0 {
		if _, err := s.DB.ExecContext(ctx, `DELETE FROM captains_log WHERE session_id::text = ANY($1::text[]);`, ids); err != nil {
			purgeErr = fmt.Errorf("close sql ledger: purge sessions: %w", err)
		}
	}

	return errors.Join(purgeErr, s.DB.Close())
}
