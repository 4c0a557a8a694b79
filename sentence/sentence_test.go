package sentence

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRenderLineAnnotated(t *testing.T) {
	tk := NewToken(3, "кошка")
	tk.SetMorphologicalParameters(MorphologicalParameters{Lemma: "кошка", POS: "NOUN"})

	assert.Equal(t, "3\tкошка\tкошка\tNOUN\t_\t_\t0\troot\t_\t_", tk.RenderLine(true))
}

func TestTokenRenderLineWithFeats(t *testing.T) {
	tk := NewToken(1, "Кошки")
	tk.SetMorphologicalParameters(MorphologicalParameters{Lemma: "кошка", POS: "NOUN", Tags: "Case=Nom|Number=Plur"})

	assert.Equal(t, "1\tКошки\tкошка\tNOUN\t_\tCase=Nom|Number=Plur\t0\troot\t_\t_", tk.RenderLine(true))
}

func TestTokenRenderLineWithoutTags(t *testing.T) {
	tk := NewToken(2, "мама")
	tk.SetMorphologicalParameters(MorphologicalParameters{Lemma: "мама", POS: "NOUN", Tags: "Case=Nom"})

	line := tk.RenderLine(false)
	assert.Equal(t, "2\tмама\t_\t_\t_\t_\t0\troot\t_\t_", line)
	assert.Len(t, strings.Split(line, "\t"), 10)
}

func TestTokenRenderLineUnannotatedKeepsTenFields(t *testing.T) {
	tk := NewToken(7, "слово")

	for _, include := range []bool{true, false} {
		assert.Len(t, strings.Split(tk.RenderLine(include), "\t"), 10)
	}
}

func TestTokenSetMorphologicalParametersOverwrites(t *testing.T) {
	tk := NewToken(1, "мыла")
	assert.True(t, tk.MorphologicalParameters().IsZero())

	tk.SetMorphologicalParameters(MorphologicalParameters{Lemma: "мыло", POS: "NOUN"})
	tk.SetMorphologicalParameters(MorphologicalParameters{Lemma: "мыть", POS: "VERB"})

	assert.Equal(t, MorphologicalParameters{Lemma: "мыть", POS: "VERB"}, tk.MorphologicalParameters())
}

func TestClean(t *testing.T) {
	cases := map[string]string{
		"Hello,":    "hello",
		"world!":    "world",
		"«Кошка»":   "кошка",
		"—":         "",
		"don't":     "dont",
		"a+b=c":     "abc",
		"ПРИВЕТ...": "привет",
		"2023":      "2023",
	}

	for in, want := range cases {
		assert.Equal(t, want, Clean(in), "input %q", in)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Hello,", "«Кошка»", "e.́", "ǅemal", "İstanbul", "Ёлка!", "a$b^c", "", "...",
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

func TestIsPunctOnly(t *testing.T) {
	assert.True(t, IsPunctOnly("—"))
	assert.True(t, IsPunctOnly("..."))
	assert.False(t, IsPunctOnly("кот,"))
	assert.False(t, IsPunctOnly(""))
}

func TestNewSentencePositions(t *testing.T) {
	s := New(4, "  Мама   мыла\tраму. ")

	require.Len(t, s.Tokens(), 3)
	for i, tk := range s.Tokens() {
		assert.Equal(t, i+1, tk.Position())
	}
	assert.Equal(t, 4, s.Position())
	assert.Equal(t, "  Мама   мыла\tраму. ", s.Text())
}

func TestCleanedSentence(t *testing.T) {
	s := New(0, "Hello, world!")

	require.Len(t, s.Tokens(), 2)
	assert.Equal(t, "Hello,", s.Tokens()[0].Text())
	assert.Equal(t, "world!", s.Tokens()[1].Text())
	assert.Equal(t, "hello world", s.CleanedSentence())
}

func TestCleanedSentenceCollapsesPunctuationTokens(t *testing.T) {
	s := New(0, "Он сказал — и ушёл .")
	assert.Equal(t, "он сказал и ушёл", s.CleanedSentence())
}

func TestSentenceRender(t *testing.T) {
	s := New(1, "Кошка спит.")
	toks := s.Tokens()
	toks[0].SetMorphologicalParameters(MorphologicalParameters{Lemma: "кошка", POS: "NOUN", Tags: "Case=Nom"})

	want := "# sent_id = 1\n" +
		"# text = Кошка спит.\n" +
		"1\tКошка\tкошка\tNOUN\t_\tCase=Nom\t0\troot\t_\t_\n" +
		"2\tспит.\t_\t_\t_\t_\t0\troot\t_\t_\n"

	assert.Equal(t, want, s.Render(true))
}

func TestSentenceRenderMultilineText(t *testing.T) {
	s := New(0, "Кошка спит\r\nна   диване.")

	got := s.Render(false)
	assert.Equal(t, "Кошка спит\r\nна   диване.", s.Text())

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "# text = Кошка спит на диване.", lines[1])
	for _, line := range lines[2:] {
		assert.Len(t, strings.Split(line, "\t"), 10, line)
	}
}

func TestSentenceJSONRoundTrip(t *testing.T) {
	s := New(2, "Кошка спит")
	s.Tokens()[0].SetMorphologicalParameters(MorphologicalParameters{Lemma: "кошка", POS: "NOUN", Tags: "Case=Nom"})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got Sentence
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, s.Render(true), got.Render(true))
}
