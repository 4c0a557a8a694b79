package morph

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Lexicon is an in-memory dictionary of word forms, f.ex. an export of the
// OpenCorpora dictionary. Each line of the source has the form
//
//	form<TAB>lemma<TAB>tags
//
// Blank lines and lines starting with # are ignored. If a form appears more
// than once, the first entry wins.
type Lexicon struct {
	entries map[string]Analysis
}

var _ Analyzer = (*Lexicon)(nil)

// LoadLexicon reads the lexicon file at path.
func LoadLexicon(fs afero.Fs, path string) (*Lexicon, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open lexicon: %w", err)
	}
	defer f.Close()

	lex, err := ReadLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lex, nil
}

// ReadLexicon parses a lexicon from r.
func ReadLexicon(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{entries: make(map[string]Analysis)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab separated fields, got %d", lineNum, len(fields))
		}

		form := strings.ToLower(strings.TrimSpace(fields[0]))
		if form == "" {
			return nil, fmt.Errorf("line %d: empty form", lineNum)
		}

		if _, exists := lex.entries[form]; exists {
			continue
		}

		lex.entries[form] = Analysis{
			Lemma: strings.TrimSpace(fields[1]),
			Tags:  strings.TrimSpace(fields[2]),
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lex, nil
}

// Len returns the number of word forms.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

func (l *Lexicon) Analyze(ctx context.Context, word string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	return l.entries[strings.ToLower(word)], nil
}
