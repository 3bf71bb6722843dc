// Package history keeps an append-only ledger of generator runs. Recording
// is best-effort: the generator logs failures and keeps going, so the ledger
// never changes a build outcome.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BuildRecord captures one generator run.
type BuildRecord struct {
	bun.BaseModel `bun:"table:build_records,alias:br"`

	ID        uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	StartedAt time.Time     `bun:"started_at,notnull" json:"started_at"`
	Duration  time.Duration `bun:"duration" json:"duration"`
	Documents int           `bun:"documents" json:"documents"`
	DryRun    bool          `bun:"dry_run" json:"dry_run"`
	Notes     string        `bun:"notes" json:"notes,omitempty"`
}

// Recorder persists build records.
type Recorder interface {
	Record(ctx context.Context, record BuildRecord) error
}

// Repository extends Recorder with read access for reporting.
type Repository interface {
	Recorder
	List(ctx context.Context, limit int) ([]BuildRecord, error)
}
