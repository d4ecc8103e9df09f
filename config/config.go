package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/go-leo/bestiary/logger"
	"github.com/go-leo/bestiary/registry"
)

// Config drives the bestiary command.
type Config struct {
	// Repetitions is how many times each factory repeats its species triplet.
	// Nil means registry.DefaultRepetitions.
	Repetitions *int `json:"repetitions"`
	// Seed makes the random pick reproducible. Zero draws from the process-wide source.
	Seed int64         `json:"seed"`
	Log  LoggingConfig `json:"log"`
}

// LoggingConfig selects level and rendering of diagnostic logs.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Load reads the yaml or json file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Repetitions == nil {
		n := registry.DefaultRepetitions
		c.Repetitions = &n
	}
	c.Log.SetDefaults()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Repetitions != nil && *c.Repetitions < 0 {
		return fmt.Errorf("%w, got %d", registry.ErrInvalidRepetitions, *c.Repetitions)
	}
	return c.Log.Validate()
}

// SetDefaults applies info level console logs.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = zerolog.InfoLevel.String()
	}
	if c.Format == "" {
		c.Format = string(logger.FormatConsole)
	}
}

// Validate checks the level parses and the format is known.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch logger.Format(c.Format) {
	case logger.FormatConsole, logger.FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown log format %s", c.Format)
	}
}

// Options translates the logging section into logger options.
func (c LoggingConfig) Options() []logger.Option {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return []logger.Option{logger.Level(level), logger.WithFormat(logger.Format(c.Format))}
}
