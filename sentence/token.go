package sentence

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	// Empty is the CONLL-U placeholder for a missing field.
	Empty = "_"

	// defaults for the dependency columns, no syntactic parse is made
	defaultHead   = "0"
	defaultDeprel = "root"
)

// MorphologicalParameters holds the annotation of a token. The zero value
// means the token is not annotated.
type MorphologicalParameters struct {
	Lemma string

	// POS is the Universal Dependencies part of speech tag
	POS string

	// Tags is the UD feature string, f.ex. Case=Nom|Number=Sing
	Tags string
}

// IsZero reports whether the parameters are the unannotated default.
func (p MorphologicalParameters) IsZero() bool {
	return p == MorphologicalParameters{}
}

// Token represents a word of the sentence, with its position and
// morphological annotation.
type Token struct {
	// The unmodified word
	text string

	// The position of the word in the sentence, starting at 1.
	position int

	params MorphologicalParameters
}

// NewToken creates a token for the surface form text at position.
func NewToken(position int, text string) Token {
	return Token{position: position, text: text}
}

func (t Token) Text() string {
	return t.text
}

func (t Token) Position() int {
	return t.position
}

// SetMorphologicalParameters attaches p to the token, replacing any previous
// annotation.
func (t *Token) SetMorphologicalParameters(p MorphologicalParameters) {
	t.params = p
}

func (t Token) MorphologicalParameters() MorphologicalParameters {
	return t.params
}

// Cleaned returns the lowercase form of the token without punctuation.
func (t Token) Cleaned() string {
	return Clean(t.text)
}

// RenderLine returns the CONLL-U line of the token, without the trailing
// newline. The line has always 10 fields. If includeTags is false, the
// LEMMA, UPOS and FEATS fields are rendered as empty.
func (t Token) RenderLine(includeTags bool) string {
	lemma, pos, feats := Empty, Empty, Empty
	if includeTags {
		lemma = orEmpty(t.params.Lemma)
		pos = orEmpty(t.params.POS)
		feats = orEmpty(t.params.Tags)
	}

	fields := []string{
		strconv.Itoa(t.position),
		orEmpty(t.text),
		lemma,
		pos,
		Empty, // XPOS
		feats,
		defaultHead,
		defaultDeprel,
		Empty, // DEPS
		Empty, // MISC
	}

	return strings.Join(fields, "\t")
}

func orEmpty(s string) string {
	if s == "" {
		return Empty
	}
	return s
}

type tokenJSON struct {
	Id    int    `json:"id"`
	Text  string `json:"text"`
	Lemma string `json:"lemma,omitempty"`
	Pos   string `json:"pos,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenJSON{
		Id:    t.position,
		Text:  t.text,
		Lemma: t.params.Lemma,
		Pos:   t.params.POS,
		Tag:   t.params.Tags,
	})
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var tj tokenJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}

	t.position = tj.Id
	t.text = tj.Text
	t.params = MorphologicalParameters{Lemma: tj.Lemma, POS: tj.Pos, Tags: tj.Tag}
	return nil
}
