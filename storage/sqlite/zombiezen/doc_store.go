package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/morphpipe/article"
	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// DocStore persists annotated articles in SQLite.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]*article.Article, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var articles []*article.Article
	err = sqlitex.Execute(conn, "SELECT id, url, title, date FROM articles ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			articles = append(articles, articleFromRow(stmt))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return articles, nil
}

func (h *DocStore) Read(id int) (*article.Article, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var a *article.Article
	err = sqlitex.Execute(conn, "SELECT id, url, title, date FROM articles WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			a = articleFromRow(stmt)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, fmt.Errorf("article not found: %d", id)
	}

	var sentences []sent.Sentence
	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE article_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			sentences = append(sentences, s)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	a.SetSentences(sentences)
	return a, nil
}

func (h *DocStore) FindCandidates(lemma string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	query := `SELECT s.rowid, s.article_id, a.title, s.data
		FROM sentence_lemmas l
		JOIN sentences s ON s.rowid = l.sentence_rowid
		JOIN articles a ON a.id = s.article_id
		WHERE l.lemma = ? AND l.sentence_rowid > ?
		ORDER BY l.sentence_rowid
		LIMIT ?`

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{lemma, int64(after), limit},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			res := storage.SentenceResult{
				RowID:        stmt.ColumnInt64(0),
				ArticleID:    stmt.ColumnInt(1),
				ArticleTitle: stmt.ColumnText(2),
			}

			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &res.Sentence); err != nil {
				return err
			}

			newCursor = storage.Cursor(res.RowID)
			return onCandidate(res)
		},
	})
	if err != nil {
		return after, err
	}

	return newCursor, nil
}

// Write stores a and its sentences, replacing a previous version of the
// article with the same id. Lemmas are indexed once per sentence.
func (h *DocStore) Write(a *article.Article) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = deleteArticle(conn, a.Id); err != nil {
		return err
	}

	var meta article.Meta
	if a.Meta != nil {
		meta = *a.Meta
	}

	err = sqlitex.Execute(conn, "INSERT INTO articles (id, url, title, date) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{a.Id, meta.URL, meta.Title, meta.Date},
	})
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	for _, s := range a.Sentences() {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (article_id, position, text, cleaned, data) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{a.Id, s.Position(), s.Text(), s.CleanedSentence(), string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		rowID := conn.LastInsertRowID()

		for _, lemma := range lemmas(s) {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []any{lemma, rowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return nil
}

func deleteArticle(conn *sqlite.Conn, id int) error {
	stmts := []string{
		"DELETE FROM sentence_lemmas WHERE sentence_rowid IN (SELECT rowid FROM sentences WHERE article_id = ?)",
		"DELETE FROM sentences WHERE article_id = ?",
		"DELETE FROM articles WHERE id = ?",
	}

	for _, q := range stmts {
		if err := sqlitex.Execute(conn, q, &sqlitex.ExecOptions{Args: []any{id}}); err != nil {
			return fmt.Errorf("failed to delete article %d: %w", id, err)
		}
	}

	return nil
}

// lemmas returns the distinct lemmas of s in token order.
func lemmas(s sent.Sentence) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range s.Tokens() {
		l := t.MorphologicalParameters().Lemma
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}

	return out
}

func articleFromRow(stmt *sqlite.Stmt) *article.Article {
	a := article.New(stmt.ColumnInt(0), "")
	a.Meta = &article.Meta{
		Id:    a.Id,
		URL:   stmt.ColumnText(1),
		Title: stmt.ColumnText(2),
		Date:  stmt.ColumnText(3),
	}

	return a
}
