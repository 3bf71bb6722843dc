package history

import (
	"context"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the build_records table when it does not exist yet.
// Intended for CLI bootstraps and tests; hosts with their own migration
// tooling can manage the table themselves.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*BuildRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}
