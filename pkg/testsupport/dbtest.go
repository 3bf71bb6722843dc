// Package testsupport provides database helpers shared by the repository and
// wiring tests.
package testsupport

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewSQLiteMemoryDB opens an in-memory SQLite database. Each name gets its own
// shared-cache namespace so concurrent tests do not see each other's tables.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	return sql.Open("sqlite3", dsn)
}

// NewBunMemoryDB wraps an in-memory SQLite handle with the bun dialect used by
// the build history repository.
func NewBunMemoryDB(name string) (*bun.DB, error) {
	sqldb, err := NewSQLiteMemoryDB(name)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}
