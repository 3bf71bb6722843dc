package history

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-questions/pkg/testsupport"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := testsupport.NewBunMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func TestBunRepositoryRecordAndList(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		record := BuildRecord{
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Documents: 15,
			Duration:  2 * time.Second,
		}
		if err := repo.Record(ctx, record); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	records, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[0].StartedAt.After(records[1].StartedAt) {
		t.Fatalf("expected newest-first ordering, got %v then %v", records[0].StartedAt, records[1].StartedAt)
	}
	if records[0].Documents != 15 {
		t.Fatalf("unexpected document count %d", records[0].Documents)
	}
}

func TestBunRepositoryAssignsIdentifier(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Record(ctx, BuildRecord{Documents: 1}); err != nil {
		t.Fatalf("record: %v", err)
	}

	records, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	if records[0].ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a generated identifier")
	}
	if records[0].StartedAt.IsZero() {
		t.Fatal("expected a generated start time")
	}
}
