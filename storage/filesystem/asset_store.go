package filesystem

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/revelaction/morphpipe/article"
	"github.com/revelaction/morphpipe/storage"
	"github.com/spf13/afero"
)

const (
	RawSuffix     = "_raw.txt"
	MetaSuffix    = "_meta.json"
	CleanedSuffix = "_cleaned.txt"
	ConlluSuffix  = "_conllu.conllu"

	filePerm = 0644
	dirPerm  = 0755
)

// AssetStore reads the fetched articles from the assets directory and writes
// the pipeline outputs to the output directory.
type AssetStore struct {
	fs        afero.Fs
	assetsDir string
	outputDir string
}

var _ storage.ArticleReader = (*AssetStore)(nil)
var _ storage.ArticleWriter = (*AssetStore)(nil)

// NewAssetStore creates a store over fs. If outputDir is empty, outputs are
// written next to the assets.
func NewAssetStore(fs afero.Fs, assetsDir, outputDir string) *AssetStore {
	if outputDir == "" {
		outputDir = assetsDir
	}

	return &AssetStore{fs: fs, assetsDir: assetsDir, outputDir: outputDir}
}

// FileName returns the canonical file name of the article id with suffix.
func FileName(id int, suffix string) string {
	return strconv.Itoa(id) + suffix
}

// ParseID extracts the id of a file name with suffix. It returns false if the
// name does not have the suffix, or if the prefix is not a canonical
// positive integer (f.ex. "01" or "x").
func ParseID(name, suffix string) (int, bool) {
	prefix, found := strings.CutSuffix(name, suffix)
	if !found {
		return 0, false
	}

	id, err := strconv.Atoi(prefix)
	if err != nil || id < 1 || strconv.Itoa(id) != prefix {
		return 0, false
	}

	return id, true
}

func (s *AssetStore) RawPath(id int) string {
	return filepath.Join(s.assetsDir, FileName(id, RawSuffix))
}

func (s *AssetStore) MetaPath(id int) string {
	return filepath.Join(s.assetsDir, FileName(id, MetaSuffix))
}

func (s *AssetStore) CleanedPath(id int) string {
	return filepath.Join(s.outputDir, FileName(id, CleanedSuffix))
}

func (s *AssetStore) ConlluPath(id int) string {
	return filepath.Join(s.outputDir, FileName(id, ConlluSuffix))
}

func (s *AssetStore) ReadRaw(id int) (string, error) {
	data, err := afero.ReadFile(s.fs, s.RawPath(id))
	if err != nil {
		return "", fmt.Errorf("IO error: %w", err)
	}

	return string(data), nil
}

func (s *AssetStore) ReadMeta(id int) (article.Meta, error) {
	data, err := afero.ReadFile(s.fs, s.MetaPath(id))
	if err != nil {
		return article.Meta{}, fmt.Errorf("IO error: %w", err)
	}

	var meta article.Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return article.Meta{}, fmt.Errorf("JSON decoding error in %s: %w", s.MetaPath(id), err)
	}

	return meta, nil
}

// WriteCleaned writes the cleaned sentences of a, one per line.
func (s *AssetStore) WriteCleaned(a *article.Article) error {
	return s.write(s.CleanedPath(a.Id), a.CleanedText())
}

// WriteConllu writes the annotated CONLL-U representation of a.
func (s *AssetStore) WriteConllu(a *article.Article) error {
	return s.write(s.ConlluPath(a.Id), a.ConlluText(true))
}

func (s *AssetStore) write(path, content string) error {
	if err := s.fs.MkdirAll(s.outputDir, dirPerm); err != nil {
		return err
	}

	return afero.WriteFile(s.fs, path, []byte(content), filePerm)
}
