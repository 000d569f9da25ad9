package ledger

import (
	"airship-delivery/internal/domain"
	"context"
)

// Nop discards every entry. Used when the Captain's log is switched off.
type Nop struct{}

func (Nop) Record(context.Context, domain.LogEntry) error { return nil }

func (Nop) List(context.Context, string) ([]domain.LogEntry, error) { return nil, nil }

func (Nop) Close(context.Context) error { return nil }
