package corpus

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/morphpipe/storage/filesystem"
	"github.com/spf13/afero"
)

// Layout describes the assets directory of a corpus.
type Layout struct {
	// Dir is the directory with the {id}_raw.txt and {id}_meta.json files
	Dir string

	// RequireMeta makes the {id}_meta.json files part of the dataset. If
	// false, meta files are ignored.
	RequireMeta bool
}

type assetFile struct {
	name string
	size int64
}

// Validate checks the structure of the assets directory without reading any
// file content, and returns the number of articles.
//
// The checks run in this order: existence, is directory, non empty, equal
// number of raw and meta files, non empty files, contiguous numbering 1..N.
func Validate(fs afero.Fs, l Layout) (int, error) {
	info, err := fs.Stat(l.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, &DatasetError{Path: l.Dir, Err: ErrPathNotFound}
		}
		return 0, fmt.Errorf("could not stat %s: %w", l.Dir, err)
	}

	if !info.IsDir() {
		return 0, &DatasetError{Path: l.Dir, Err: ErrNotADirectory}
	}

	entries, err := afero.ReadDir(fs, l.Dir)
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %w", l.Dir, err)
	}

	var raws, metas []assetFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		f := assetFile{name: e.Name(), size: e.Size()}
		switch {
		case strings.HasSuffix(f.name, filesystem.RawSuffix):
			raws = append(raws, f)
		case l.RequireMeta && strings.HasSuffix(f.name, filesystem.MetaSuffix):
			metas = append(metas, f)
		}
	}

	if len(raws) == 0 {
		return 0, &DatasetError{Path: l.Dir, Err: ErrEmptyDirectory}
	}

	if l.RequireMeta && len(raws) != len(metas) {
		return 0, datasetErr(ErrInconsistentDataset, l.Dir, "%d raw files but %d meta files", len(raws), len(metas))
	}

	for _, files := range [][]assetFile{raws, metas} {
		for _, f := range files {
			if f.size == 0 {
				return 0, datasetErr(ErrInconsistentDataset, l.Dir, "empty file %s", f.name)
			}
		}
	}

	n := len(raws)
	if err := checkNumbering(l.Dir, raws, filesystem.RawSuffix, n); err != nil {
		return 0, err
	}

	if l.RequireMeta {
		if err := checkNumbering(l.Dir, metas, filesystem.MetaSuffix, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// checkNumbering verifies that the ids of files are exactly 1..n.
func checkNumbering(dir string, files []assetFile, suffix string, n int) error {
	seen := make(map[int]bool, len(files))
	for _, f := range files {
		id, ok := filesystem.ParseID(f.name, suffix)
		if !ok {
			return datasetErr(ErrInconsistentDataset, dir, "unexpected file name %s", f.name)
		}

		if id > n {
			return datasetErr(ErrInconsistentDataset, dir, "id %d out of range 1..%d", id, n)
		}

		if seen[id] {
			return datasetErr(ErrInconsistentDataset, dir, "duplicated id %d", id)
		}
		seen[id] = true
	}

	for id := 1; id <= n; id++ {
		if !seen[id] {
			return datasetErr(ErrInconsistentDataset, dir, "missing id %d", id)
		}
	}

	return nil
}
