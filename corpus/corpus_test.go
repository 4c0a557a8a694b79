package corpus

import (
	"errors"
	"fmt"
	"testing"

	"github.com/revelaction/morphpipe/article"
	"github.com/revelaction/morphpipe/storage/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dir = "/assets"

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, dir+"/"+name, []byte(content), 0644))
}

// newDataset writes n raw/meta pairs.
func newDataset(t *testing.T, n int) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for id := 1; id <= n; id++ {
		writeFile(t, fs, fmt.Sprintf("%d_raw.txt", id), fmt.Sprintf("Статья номер %d. Вторая фраза.", id))
		writeFile(t, fs, fmt.Sprintf("%d_meta.json", id), fmt.Sprintf(`{"id":%d,"url":"https://example.com/%d","title":"Заголовок %d"}`, id, id, id))
	}
	return fs
}

func layout() Layout {
	return Layout{Dir: dir, RequireMeta: true}
}

func TestValidateOk(t *testing.T) {
	fs := newDataset(t, 5)

	n, err := Validate(fs, layout())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestValidatePathNotFound(t *testing.T) {
	_, err := Validate(afero.NewMemMapFs(), Layout{Dir: "/nope", RequireMeta: true})
	assert.ErrorIs(t, err, ErrPathNotFound)

	var dErr *DatasetError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, "/nope", dErr.Path)
}

func TestValidateNotADirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file.txt", []byte("x"), 0644))

	_, err := Validate(fs, Layout{Dir: "/file.txt"})
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestValidateEmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dir, 0755))

	_, err := Validate(fs, layout())
	assert.ErrorIs(t, err, ErrEmptyDirectory)
}

func TestValidateEmptyDirectoryIgnoresOtherFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "1_meta.json", `{"id":1}`)
	writeFile(t, fs, "notes.md", "x")

	_, err := Validate(fs, layout())
	assert.ErrorIs(t, err, ErrEmptyDirectory)
}

func TestValidateInconsistent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, fs afero.Fs)
	}{
		{
			name: "gap in numbering",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.Remove(dir+"/2_raw.txt"))
				require.NoError(t, fs.Remove(dir+"/2_meta.json"))
			},
		},
		{
			name: "missing meta",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.Remove(dir+"/3_meta.json"))
			},
		},
		{
			name: "empty raw file",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, "2_raw.txt", "")
			},
		},
		{
			name: "empty meta file",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, "1_meta.json", "")
			},
		},
		{
			name: "non canonical id",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.Rename(dir+"/3_raw.txt", dir+"/03_raw.txt"))
			},
		},
		{
			name: "id out of range",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.Rename(dir+"/3_raw.txt", dir+"/4_raw.txt"))
			},
		},
		{
			name: "meta numbering differs",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.Rename(dir+"/3_meta.json", dir+"/7_meta.json"))
			},
		},
		{
			name: "non numeric name",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, fs.Rename(dir+"/3_raw.txt", dir+"/abc_raw.txt"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newDataset(t, 3)
			tt.setup(t, fs)

			_, err := Validate(fs, layout())
			assert.ErrorIs(t, err, ErrInconsistentDataset)
		})
	}
}

func TestValidateGapWithoutMeta(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "1_raw.txt", "Раз.")
	writeFile(t, fs, "3_raw.txt", "Три.")

	_, err := Validate(fs, Layout{Dir: dir})
	assert.ErrorIs(t, err, ErrInconsistentDataset)
}

func TestValidateIgnoresMetaWhenNotRequired(t *testing.T) {
	fs := newDataset(t, 2)
	require.NoError(t, fs.Remove(dir+"/2_meta.json"))
	writeFile(t, fs, "1_meta.json", "")

	n, err := Validate(fs, Layout{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewManagerArticles(t *testing.T) {
	fs := newDataset(t, 4)
	store := filesystem.NewAssetStore(fs, dir, "")

	m, err := NewManager(fs, store, layout())
	require.NoError(t, err)

	articles := m.Articles()
	require.Len(t, articles, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, m.IDs())

	for id, a := range articles {
		assert.Equal(t, id, a.Id)
		assert.Equal(t, fmt.Sprintf("Статья номер %d. Вторая фраза.", id), a.Text())
		require.NotNil(t, a.Meta)
		assert.Equal(t, fmt.Sprintf("Заголовок %d", id), a.Title())
	}
}

func TestNewManagerWithoutMeta(t *testing.T) {
	fs := newDataset(t, 2)
	store := filesystem.NewAssetStore(fs, dir, "")

	m, err := NewManager(fs, store, Layout{Dir: dir})
	require.NoError(t, err)

	for _, a := range m.Articles() {
		assert.Nil(t, a.Meta)
	}
}

// countingReader records reads to prove that validation gates scanning.
type countingReader struct {
	reads int
}

func (r *countingReader) ReadRaw(id int) (string, error) {
	r.reads++
	return "text", nil
}

func (r *countingReader) ReadMeta(id int) (article.Meta, error) {
	r.reads++
	return article.Meta{Id: id}, nil
}

func TestNewManagerDoesNotReadInvalidDataset(t *testing.T) {
	fs := newDataset(t, 3)
	require.NoError(t, fs.Remove(dir+"/2_raw.txt"))

	r := &countingReader{}
	m, err := NewManager(fs, r, layout())

	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInconsistentDataset)
	assert.Zero(t, r.reads)
}

func TestNewManagerReadError(t *testing.T) {
	fs := newDataset(t, 2)
	store := filesystem.NewAssetStore(fs, "/elsewhere", "")

	_, err := NewManager(fs, store, layout())
	assert.ErrorContains(t, err, "failed to read article 1")
}
