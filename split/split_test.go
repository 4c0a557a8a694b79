package split

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunktSplit(t *testing.T) {
	p, err := LoadPunkt(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	got := p.Split("Кошка спит. Собака лает! Где мышь?")
	assert.Equal(t, []string{"Кошка спит.", "Собака лает!", "Где мышь?"}, got)
}

func TestPunktSplitBlank(t *testing.T) {
	p, err := LoadPunkt(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Empty(t, p.Split(""))
	assert.Empty(t, p.Split("   \n\t "))
}

func TestLoadPunktErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadPunkt(fs, "/models/russian.json")
	assert.ErrorContains(t, err, "could not read punkt model")

	require.NoError(t, afero.WriteFile(fs, "/models/broken.json", []byte("{"), 0644))
	_, err = LoadPunkt(fs, "/models/broken.json")
	assert.ErrorContains(t, err, "could not load punkt model")
}

func TestLoadPunktModel(t *testing.T) {
	fs := afero.NewMemMapFs()
	model := `{"AbbrevTypes":{"г":1,"т.е":1},"Collocations":{},"SentStarters":{},"OrthoContext":{}}`
	require.NoError(t, afero.WriteFile(fs, "/models/russian.json", []byte(model), 0644))

	p, err := LoadPunkt(fs, "/models/russian.json")
	require.NoError(t, err)

	got := p.Split("Кошка спит. Собака лает.")
	assert.Equal(t, []string{"Кошка спит.", "Собака лает."}, got)
}
