package ports

import (
	"airship-delivery/internal/domain"
	"context"
)

// Port: the per-session Captain's log of manifest changes.
type Ledger interface {
	// Append one entry for the entry's session.
	Record(ctx context.Context, e domain.LogEntry) error
	// Return all entries of a session ordered by sequence number.
	List(ctx context.Context, sessionID string) ([]domain.LogEntry, error)
	// Release the ledger; session rows do not outlive it.
	Close(ctx context.Context) error
}
