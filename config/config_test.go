package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), Options{EnvFile: DefaultEnvFile})
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	yamlConfig := `
assets_path: /data/articles
mode: basic
cache_size: 50
log_level: debug
analyzer: mystem
`
	require.NoError(t, afero.WriteFile(fs, "/etc/morphpipe.yaml", []byte(yamlConfig), 0644))
	dotEnv := "MORPHPIPE_CACHE_SIZE=70\nMORPHPIPE_LOG_LEVEL=warn\nOTHER=1\n"
	require.NoError(t, afero.WriteFile(fs, "/work/.env", []byte(dotEnv), 0644))

	t.Setenv("MORPHPIPE_LOG_LEVEL", "error")
	t.Setenv("MORPHPIPE_REQUIRE_META", "false")
	t.Setenv("MORPHPIPE_MODE", "basic")

	cfg, err := Load(fs, Options{
		File:      "/etc/morphpipe.yaml",
		EnvFile:   "/work/.env",
		Overrides: map[string]any{"mode": "advanced"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/articles", cfg.AssetsPath)
	assert.Equal(t, 70, cfg.CacheSize)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.RequireMeta)
	assert.Equal(t, ModeAdvanced, cfg.Mode)
	assert.Equal(t, "morphpipe.db", cfg.DBPath)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), Options{File: "/nope.yaml"})
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("mode: [basic"), 0644))

	_, err := Load(fs, Options{File: "/c.yaml"})
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"unknown mode", map[string]any{"mode": "expert"}},
		{"unknown analyzer", map[string]any{"analyzer": "spacy"}},
		{"zero cache", map[string]any{"cache_size": 0}},
		{"empty assets", map[string]any{"assets_path": ""}},
		{"unknown log level", map[string]any{"log_level": "trace"}},
		{"opencorpora without lexicon", map[string]any{"analyzer": "opencorpora"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(afero.NewMemMapFs(), Options{Overrides: tt.overrides})
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadOpenCorporaWithLexicon(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), Options{Overrides: map[string]any{
		"analyzer":     "opencorpora",
		"lexicon_path": "/dict/lexicon.tsv",
	}})
	require.NoError(t, err)
	assert.Equal(t, "opencorpora", cfg.Analyzer)
}
