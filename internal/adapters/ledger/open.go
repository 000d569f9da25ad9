package ledger

import (
	"airship-delivery/internal/config"
	"airship-delivery/internal/platform/db"
	"airship-delivery/internal/ports"
	"context"
	"fmt"
)

// Open builds the Captain's log selected by driver and prepares its schema.
func Open(ctx context.Context, driver, dsn string) (ports.Ledger, error) {
	switch driver {
	case config.LedgerNone:
		return Nop{}, nil

	case config.LedgerPostgres:
		conn, err := db.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		if err := InitPostgresSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		return NewSQLLedger(conn), nil

	case config.LedgerSqlite, "":
		conn, err := db.OpenSqlite(dsn)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		if err := InitSchema(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		return NewSqliteLedger(conn), nil

	default:
		return nil, fmt.Errorf("open ledger: unknown driver %q", driver)
	}
}
