package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite/sqlitex"
)

// ArticlesSchema creates the tables of the annotated corpus:
//
//   - articles: one row per article with its metadata
//   - sentences: the text, cleaned text and JSON tokens of each sentence,
//     ordered by position within the article
//   - sentence_lemmas: the distinct lemmas of each sentence, keyed by the
//     sentence rowid, used for the paginated lemma lookup
const ArticlesSchema = "articles.sql"

//go:embed sql/*.sql
var scripts embed.FS

// CreateSchema runs the embedded script name against a connection of pool.
// Scripts only use IF NOT EXISTS statements, so opening an existing
// database leaves its rows untouched.
func CreateSchema(ctx context.Context, pool *sqlitex.Pool, name string) error {
	script, err := scripts.ReadFile(path.Join("sql", name))
	if err != nil {
		return fmt.Errorf("unknown schema %s: %w", name, err)
	}

	conn, err := pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("could not get a connection for schema %s: %w", name, err)
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("could not create schema %s: %w", name, err)
	}

	return nil
}
