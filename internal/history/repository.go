package history

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository stores build records in a Bun-backed database.
type BunRepository struct {
	repo repository.Repository[*BuildRecord]
	now  func() time.Time
}

var _ Repository = (*BunRepository)(nil)

// NewBunRepository creates a build record repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a build record repository with optional
// caching services layered on top of the base repository.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := newRecordRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{
		repo: base,
		now:  time.Now,
	}
}

func newRecordRepository(db *bun.DB) repository.Repository[*BuildRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*BuildRecord]{
		NewRecord:          func() *BuildRecord { return &BuildRecord{} },
		GetID:              func(r *BuildRecord) uuid.UUID { return r.ID },
		SetID:              func(r *BuildRecord, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "" },
		GetIdentifierValue: func(*BuildRecord) string { return "" },
	})
}

// Record appends a build record, assigning an identifier and start time when
// the caller left them empty.
func (r *BunRepository) Record(ctx context.Context, record BuildRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.StartedAt.IsZero() {
		record.StartedAt = r.now().UTC()
	}
	_, err := r.repo.Create(ctx, &record)
	return err
}

// List returns the most recent build records, newest first.
func (r *BunRepository) List(ctx context.Context, limit int) ([]BuildRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("started_at DESC")
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, err
	}
	out := make([]BuildRecord, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		out = append(out, *record)
	}
	return out, nil
}
