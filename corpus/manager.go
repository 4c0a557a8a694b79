package corpus

import (
	"fmt"
	"sort"

	"github.com/revelaction/morphpipe/article"
	"github.com/revelaction/morphpipe/storage"
	"github.com/spf13/afero"
)

// Manager holds the articles of a validated assets directory.
type Manager struct {
	layout   Layout
	reader   storage.ArticleReader
	articles map[int]*article.Article
}

// NewManager validates the assets directory and reads all articles through
// reader. No article is read if the validation fails.
func NewManager(fs afero.Fs, reader storage.ArticleReader, l Layout) (*Manager, error) {
	n, err := Validate(fs, l)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		layout:   l,
		reader:   reader,
		articles: make(map[int]*article.Article, n),
	}

	if err := m.scan(n); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) scan(n int) error {
	for id := 1; id <= n; id++ {
		text, err := m.reader.ReadRaw(id)
		if err != nil {
			return fmt.Errorf("failed to read article %d: %w", id, err)
		}

		a := article.New(id, text)

		if m.layout.RequireMeta {
			meta, err := m.reader.ReadMeta(id)
			if err != nil {
				return fmt.Errorf("failed to read metadata of article %d: %w", id, err)
			}
			a.Meta = &meta
		}

		m.articles[id] = a
	}

	return nil
}

// Articles returns the articles keyed by id.
func (m *Manager) Articles() map[int]*article.Article {
	return m.articles
}

// IDs returns the article ids in ascending order.
func (m *Manager) IDs() []int {
	ids := make([]int, 0, len(m.articles))
	for id := range m.articles {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
