package morph

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultMystemPath is the mystem binary looked up in PATH.
const DefaultMystemPath = "mystem"

// mystemArgs makes mystem print one disambiguated JSON analysis per line.
var mystemArgs = []string{"-n", "-i", "-d", "--format", "json", "-e", "utf-8"}

// Mystem runs the Yandex mystem binary, once per word or once per batch of
// words.
type Mystem struct {
	path string
}

var _ BatchAnalyzer = (*Mystem)(nil)

// NewMystem returns an analyzer running the binary at path. If path is
// empty, DefaultMystemPath is used.
func NewMystem(path string) *Mystem {
	if path == "" {
		path = DefaultMystemPath
	}

	return &Mystem{path: path}
}

func (m *Mystem) Analyze(ctx context.Context, word string) (Analysis, error) {
	out, err := m.run(ctx, word+"\n")
	if err != nil {
		return Analysis{}, fmt.Errorf("mystem failed for %q: %w", word, err)
	}

	return parseMystem(out)
}

// AnalyzeBatch runs mystem once for all words, one word per input line, and
// matches the output objects back to the words by their text.
func (m *Mystem) AnalyzeBatch(ctx context.Context, words []string) (map[string]Analysis, error) {
	result := make(map[string]Analysis, len(words))
	if len(words) == 0 {
		return result, nil
	}

	out, err := m.run(ctx, strings.Join(words, "\n")+"\n")
	if err != nil {
		return nil, fmt.Errorf("mystem failed for %d words: %w", len(words), err)
	}

	decoded, err := decodeMystem(out)
	if err != nil {
		return nil, err
	}

	for _, w := range words {
		result[w] = Analysis{}
	}

	seen := make(map[string]bool, len(decoded))
	for _, w := range decoded {
		text := strings.ToLower(strings.TrimSpace(w.Text))
		if _, ok := result[text]; !ok || seen[text] || len(w.Analysis) == 0 {
			continue
		}
		seen[text] = true
		result[text] = Analysis{Lemma: w.Analysis[0].Lex, Tags: w.Analysis[0].Gr}
	}

	return result, nil
}

func (m *Mystem) run(ctx context.Context, input string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.path, mystemArgs...)
	cmd.Stdin = strings.NewReader(input)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}

	return out, nil
}

type mystemWord struct {
	Text     string `json:"text"`
	Analysis []struct {
		Lex string `json:"lex"`
		Gr  string `json:"gr"`
	} `json:"analysis"`
}

// parseMystem returns the first analysis of the mystem JSON lines output.
func parseMystem(out []byte) (Analysis, error) {
	words, err := decodeMystem(out)
	if err != nil {
		return Analysis{}, err
	}

	for _, w := range words {
		if len(w.Analysis) > 0 {
			return Analysis{Lemma: w.Analysis[0].Lex, Tags: w.Analysis[0].Gr}, nil
		}
	}

	return Analysis{}, nil
}

// decodeMystem returns the word objects of the output in order. Lines hold
// either one object or an array of objects.
func decodeMystem(out []byte) ([]mystemWord, error) {
	var words []mystemWord

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if line[0] == '[' {
			var batch []mystemWord
			if err := json.Unmarshal(line, &batch); err != nil {
				return nil, fmt.Errorf("could not decode mystem output: %w", err)
			}
			words = append(words, batch...)
			continue
		}

		var w mystemWord
		if err := json.Unmarshal(line, &w); err != nil {
			return nil, fmt.Errorf("could not decode mystem output: %w", err)
		}
		words = append(words, w)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
