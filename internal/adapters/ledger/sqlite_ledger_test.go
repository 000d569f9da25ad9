package ledger

import (
	"airship-delivery/internal/config"
	"airship-delivery/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openMemory(t *testing.T) *SqliteLedger {
	t.Helper()

	l, err := Open(context.Background(), config.LedgerSqlite, "")
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	sl, ok := l.(*SqliteLedger)
	if !ok {
		t.Fatalf("Open(sqlite) returned %T", l)
	}
	t.Cleanup(func() { _ = sl.Close(context.Background()) })
	return sl
}

func TestSqliteLedgerRecordAndList(t *testing.T) {
	ctx := context.Background()
	l := openMemory(t)

	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	entries := []domain.LogEntry{
		{SessionID: "s1", Seq: 1, Op: domain.LogOpAdd, At: at,
			Delivery: domain.Delivery{Customer: "Bulk Ryker", Item: "Protein Canisters", Quantity: 10, Cost: 200}},
		{SessionID: "s1", Seq: 2, Op: domain.LogOpModify, At: at.Add(time.Minute),
			Delivery: domain.Delivery{Customer: "Bulk Ryker", Item: "Protein Canisters", Quantity: 12, Cost: 180.5}},
		{SessionID: "s2", Seq: 1, Op: domain.LogOpAdd, At: at,
			Delivery: domain.Delivery{Customer: "Someone Else", Item: "Crate", Quantity: 1, Cost: 1}},
		{SessionID: "s1", Seq: 3, Op: domain.LogOpRemove, At: at.Add(2 * time.Minute),
			Delivery: domain.Delivery{Customer: "Bulk Ryker", Item: "Protein Canisters", Quantity: 12, Cost: 180.5}},
	}
	for _, e := range entries {
		if err := l.Record(ctx, e); err != nil {
			t.Fatalf("record seq=%d: %v", e.Seq, err)
		}
	}

	got, err := l.List(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []domain.LogEntry{entries[0], entries[1], entries[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestSqliteLedgerRejectsDuplicateSeq(t *testing.T) {
	ctx := context.Background()
	l := openMemory(t)

	e := domain.LogEntry{SessionID: "s1", Seq: 1, Op: domain.LogOpAdd, At: time.Now()}
	if err := l.Record(ctx, e); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := l.Record(ctx, e); err == nil {
		t.Fatal("expected primary key violation on duplicate seq")
	}
}

func TestSqliteLedgerRequiresSession(t *testing.T) {
	l := openMemory(t)
	if err := l.Record(context.Background(), domain.LogEntry{Seq: 1}); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestSqliteLedgerListEmpty(t *testing.T) {
	l := openMemory(t)
	got, err := l.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestSqliteLedgerNilDB(t *testing.T) {
	l := NewSqliteLedger(nil)
	if err := l.Record(context.Background(), domain.LogEntry{SessionID: "s"}); err == nil {
		t.Fatal("expected error for nil db")
	}
	if _, err := l.List(context.Background(), "s"); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestOpenNoneAndUnknown(t *testing.T) {
	ctx := context.Background()

	l, err := Open(ctx, config.LedgerNone, "")
	if err != nil {
		t.Fatalf("open none: %v", err)
	}
	if err := l.Record(ctx, domain.LogEntry{}); err != nil {
		t.Fatalf("nop record: %v", err)
	}
	if got, _ := l.List(ctx, "s"); len(got) != 0 {
		t.Fatalf("nop list returned %d entries", len(got))
	}

	if _, err := Open(ctx, "redis", ""); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
