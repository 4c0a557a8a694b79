// Package config loads the settings of morphpipe.
//
// Values are layered, each source overriding the previous one: defaults, the
// YAML config file, the .env file, MORPHPIPE_ environment variables and
// finally the command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

const (
	EnvPrefix = "MORPHPIPE_"

	DefaultEnvFile = ".env"
)

const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

type Config struct {
	// AssetsPath is the directory with the {id}_raw.txt and {id}_meta.json
	// files
	AssetsPath string `koanf:"assets_path" validate:"required"`

	// OutputPath is the directory of the produced files. Empty means the
	// assets directory.
	OutputPath string `koanf:"output_path"`

	Mode     string `koanf:"mode" validate:"oneof=basic advanced"`
	Analyzer string `koanf:"analyzer" validate:"oneof=mystem opencorpora"`

	MystemPath  string `koanf:"mystem_path"`
	LexiconPath string `koanf:"lexicon_path"`
	PunktPath   string `koanf:"punkt_path"`

	RequireMeta bool `koanf:"require_meta"`

	// CacheSize is the number of word analyses kept in memory
	CacheSize int `koanf:"cache_size" validate:"min=1"`

	DBPath string `koanf:"db_path"`

	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogJSON  bool   `koanf:"log_json"`
}

// Default returns the configuration used when no source sets a value.
func Default() Config {
	return Config{
		AssetsPath:  "tmp/articles",
		Mode:        ModeAdvanced,
		Analyzer:    "mystem",
		MystemPath:  "mystem",
		RequireMeta: true,
		CacheSize:   10000,
		DBPath:      "morphpipe.db",
		LogLevel:    "info",
	}
}

// Options selects the sources of Load.
type Options struct {
	// File is a YAML config file. It must exist if set.
	File string

	// EnvFile is a dotenv file. It is ignored if it does not exist.
	EnvFile string

	// Overrides are the values of the command line flags, by config key
	Overrides map[string]any
}

// Load reads the configuration from the sources of opts.
func Load(fs afero.Fs, opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if opts.File != "" {
		values, err := readYAML(fs, opts.File)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawMap(values), nil); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", opts.File, err)
		}
	}

	var dotEnv map[string]any
	if opts.EnvFile != "" {
		values, err := readDotEnv(fs, opts.EnvFile)
		if err != nil {
			return nil, err
		}
		dotEnv = values
	}

	if len(dotEnv) > 0 {
		if err := k.Load(rawMap(dotEnv), nil); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(rawMap(opts.Overrides), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Mode == ModeAdvanced && cfg.Analyzer == "opencorpora" && cfg.LexiconPath == "" {
		return errors.New("invalid configuration: the opencorpora analyzer needs lexicon_path")
	}

	return nil
}

// envKey maps MORPHPIPE_LOG_LEVEL to log_level.
func envKey(key, value string) (string, any) {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

func readYAML(fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return values, nil
}

// readDotEnv returns the MORPHPIPE_ variables of the dotenv file at path by
// config key. The process environment is not modified.
func readDotEnv(fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}

	values := map[string]any{}
	for k, v := range vars {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		key, value := envKey(k, v)
		values[key] = value
	}

	return values, nil
}

// rawMap is a koanf.Provider adapter for map[string]any data.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}
