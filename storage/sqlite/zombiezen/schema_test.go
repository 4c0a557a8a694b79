package zombiezen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenKeepsExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	pool, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewDocStore(pool).Write(newArticle(1, "Животные")))
	require.NoError(t, pool.Close())

	pool, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	articles, err := NewDocStore(pool).List()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Животные", articles[0].Title())
}

func TestCreateSchemaUnknown(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	err = CreateSchema(context.Background(), pool, "topics.sql")
	assert.ErrorContains(t, err, "unknown schema topics.sql")
}
