package zombiezen

import (
	"context"
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a SQLite connection pool for the database at dbPath.
//
// The default flags of sqlitex.NewPool are used:
// sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite pool at %s: %w", dbPath, err)
	}

	return pool, nil
}

// Open creates the pool for dbPath and makes sure the article tables exist.
func Open(dbPath string) (*sqlitex.Pool, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, err
	}

	if err := CreateSchema(context.Background(), pool, ArticlesSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
