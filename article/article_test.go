package article

import (
	"testing"

	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/stretchr/testify/assert"
)

func TestArticleCleanedText(t *testing.T) {
	a := New(1, "Мама мыла раму. Кошка спит!")
	a.SetSentences([]sent.Sentence{
		sent.New(0, "Мама мыла раму."),
		sent.New(1, "Кошка спит!"),
	})

	assert.Equal(t, "мама мыла раму\nкошка спит", a.CleanedText())
}

func TestArticleConlluTextSeparatesBlocks(t *testing.T) {
	a := New(1, "Да. Нет.")
	a.SetSentences([]sent.Sentence{sent.New(0, "Да."), sent.New(1, "Нет.")})

	want := "# sent_id = 0\n# text = Да.\n1\tДа.\t_\t_\t_\t_\t0\troot\t_\t_\n\n" +
		"# sent_id = 1\n# text = Нет.\n1\tНет.\t_\t_\t_\t_\t0\troot\t_\t_\n\n"
	assert.Equal(t, want, a.ConlluText(true))
}

func TestArticleSetSentencesOverwrites(t *testing.T) {
	a := New(3, "Раз. Два.")
	a.SetSentences([]sent.Sentence{sent.New(0, "Раз.")})
	a.SetSentences([]sent.Sentence{sent.New(0, "Раз."), sent.New(1, "Два.")})

	assert.Len(t, a.Sentences(), 2)
	assert.Equal(t, "Раз. Два.", a.Text())
	assert.Equal(t, "", a.Title())
}
