package main

import (
	"fmt"
	"os"

	"github.com/revelaction/morphpipe/storage/sqlite/zombiezen"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"zombiezen.com/go/sqlite/sqlitex"
)

// repository is the database of annotated articles.
type repository struct {
	*zombiezen.DocStore
	pool *sqlitex.Pool
}

// openRepository opens an existing database. The database is always on the
// OS filesystem.
func openRepository(path string) (*repository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	pool, err := zombiezen.Open(path)
	if err != nil {
		return nil, err
	}

	return &repository{DocStore: zombiezen.NewDocStore(pool), pool: pool}, nil
}

func (r *repository) Close() error {
	return r.pool.Close()
}

// withRepository opens the database of the config and calls fn.
func withRepository(c *cli.Context, fs afero.Fs, fn func(*repository) error) error {
	cfg, err := loadConfig(c, fs)
	if err != nil {
		return err
	}

	repo, err := openRepository(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	return fn(repo)
}
