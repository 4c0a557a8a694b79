package sentence

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sentence is a sentence of an article with its tokens.
type Sentence struct {
	// position of the sentence in the article, starting at 0
	position int

	// the original text of the sentence
	text string

	tokens []Token
}

// New creates a Sentence at position from its original text, tokenizing it
// by whitespace. Token positions are 1..len(tokens).
func New(position int, text string) Sentence {
	words := strings.Fields(text)
	tokens := make([]Token, 0, len(words))
	for i, w := range words {
		tokens = append(tokens, NewToken(i+1, w))
	}

	return Sentence{position: position, text: text, tokens: tokens}
}

func (s Sentence) Position() int {
	return s.position
}

func (s Sentence) Text() string {
	return s.text
}

// Tokens returns the tokens of the sentence in position order. Tokens are
// returned by reference so the annotation stage can set their parameters.
func (s Sentence) Tokens() []Token {
	return s.tokens
}

// Render returns the CONLL-U block of the sentence: the sent_id and text
// comments followed by one line per token. Line breaks of the text are
// collapsed so the text comment stays on one line.
func (s Sentence) Render(includeTags bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# sent_id = %d\n", s.position)
	fmt.Fprintf(&b, "# text = %s\n", strings.Join(strings.Fields(s.text), " "))
	for _, t := range s.tokens {
		b.WriteString(t.RenderLine(includeTags))
		b.WriteString("\n")
	}

	return b.String()
}

// CleanedSentence returns the lowercase sentence without punctuation, with
// words separated by a single space.
func (s Sentence) CleanedSentence() string {
	cleaned := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		cleaned = append(cleaned, t.Cleaned())
	}

	return strings.Join(strings.Fields(strings.Join(cleaned, " ")), " ")
}

type sentenceJSON struct {
	Id     int     `json:"id"`
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

func (s Sentence) MarshalJSON() ([]byte, error) {
	return json.Marshal(sentenceJSON{Id: s.position, Text: s.text, Tokens: s.tokens})
}

func (s *Sentence) UnmarshalJSON(data []byte) error {
	var sj sentenceJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}

	s.position = sj.Id
	s.text = sj.Text
	s.tokens = sj.Tokens
	return nil
}
