package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/revelaction/morphpipe/article"
	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *DocStore {
	t.Helper()

	pool, err := Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	return NewDocStore(pool)
}

func annotate(s sent.Sentence, params ...sent.MorphologicalParameters) sent.Sentence {
	tokens := s.Tokens()
	for i := range params {
		tokens[i].SetMorphologicalParameters(params[i])
	}
	return s
}

func newArticle(id int, title string) *article.Article {
	a := article.New(id, "Кошка спит. Кошки спят!")
	a.Meta = &article.Meta{Id: id, URL: "https://example.com", Title: title, Date: "2023-03-01"}

	s0 := annotate(sent.New(0, "Кошка спит."),
		sent.MorphologicalParameters{Lemma: "кошка", POS: "NOUN", Tags: "Case=Nom|Gender=Fem|Number=Sing"},
		sent.MorphologicalParameters{Lemma: "спать", POS: "VERB", Tags: "Number=Sing"},
	)
	s1 := annotate(sent.New(1, "Кошки спят!"),
		sent.MorphologicalParameters{Lemma: "кошка", POS: "NOUN"},
		sent.MorphologicalParameters{Lemma: "спать", POS: "VERB"},
	)
	a.SetSentences([]sent.Sentence{s0, s1})

	return a
}

func TestDocStoreWriteRead(t *testing.T) {
	store := newStore(t)
	a := newArticle(1, "Животные")

	require.NoError(t, store.Write(a))

	got, err := store.Read(1)
	require.NoError(t, err)

	assert.Equal(t, "Животные", got.Title())
	assert.Equal(t, "https://example.com", got.Meta.URL)
	require.Len(t, got.Sentences(), 2)
	assert.Equal(t, a.ConlluText(true), got.ConlluText(true))
	assert.Equal(t, a.CleanedText(), got.CleanedText())
}

func TestDocStoreReadNotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Read(7)
	assert.ErrorContains(t, err, "article not found: 7")
}

func TestDocStoreWriteReplaces(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Write(newArticle(1, "Первая версия")))

	a := newArticle(1, "Вторая версия")
	a.SetSentences(a.Sentences()[:1])
	require.NoError(t, store.Write(a))

	got, err := store.Read(1)
	require.NoError(t, err)
	assert.Equal(t, "Вторая версия", got.Title())
	assert.Len(t, got.Sentences(), 1)

	var n int
	_, err = store.FindCandidates("кошка", 0, 10, func(storage.SentenceResult) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDocStoreList(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Write(newArticle(2, "Два")))
	require.NoError(t, store.Write(newArticle(1, "Один")))

	articles, err := store.List()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, 1, articles[0].Id)
	assert.Equal(t, "Один", articles[0].Title())
	assert.Equal(t, 2, articles[1].Id)
}

func TestDocStoreFindCandidatesPaginates(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Write(newArticle(1, "Один")))
	require.NoError(t, store.Write(newArticle(2, "Два")))

	var results []storage.SentenceResult
	collect := func(r storage.SentenceResult) error {
		results = append(results, r)
		return nil
	}

	cursor, err := store.FindCandidates("спать", 0, 3, collect)
	require.NoError(t, err)
	require.Len(t, results, 3)

	cursor, err = store.FindCandidates("спать", cursor, 3, collect)
	require.NoError(t, err)
	require.Len(t, results, 4)

	last := cursor
	cursor, err = store.FindCandidates("спать", cursor, 3, collect)
	require.NoError(t, err)
	assert.Len(t, results, 4)
	assert.Equal(t, last, cursor)

	assert.Equal(t, 1, results[0].ArticleID)
	assert.Equal(t, "Один", results[0].ArticleTitle)
	assert.Equal(t, "Кошка спит.", results[0].Sentence.Text())
	assert.Equal(t, 2, results[3].ArticleID)
}

func TestDocStoreFindCandidatesUnknownLemma(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Write(newArticle(1, "Один")))

	cursor, err := store.FindCandidates("собака", 5, 10, func(storage.SentenceResult) error {
		t.Fatal("unexpected candidate")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, storage.Cursor(5), cursor)
}
