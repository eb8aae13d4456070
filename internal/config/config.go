package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"github.com/dshills/keymark/internal/config/loader"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "KEYMARK_"

// Config holds every keymark setting.
type Config struct {
	Editor   EditorConfig   `toml:"editor" yaml:"editor"`
	Viewport ViewportConfig `toml:"viewport" yaml:"viewport"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Script   ScriptConfig   `toml:"script" yaml:"script"`
}

// EditorConfig controls indentation and list continuation.
type EditorConfig struct {
	// IndentWidth is the number of spaces in one indentation level.
	IndentWidth int `toml:"indent_width" yaml:"indent_width"`
	// UseTabs indents with a single tab instead of spaces.
	UseTabs bool `toml:"use_tabs" yaml:"use_tabs"`
	// AutoList continues list items on a new block.
	AutoList bool `toml:"auto_list" yaml:"auto_list"`
	// AutoIndent copies the previous block's indentation on a new block.
	AutoIndent bool `toml:"auto_indent" yaml:"auto_indent"`
}

// IndentationText returns the text inserted for one indentation level.
func (e EditorConfig) IndentationText() string {
	if e.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", e.IndentWidth)
}

// ViewportConfig sizes the text view.
type ViewportConfig struct {
	Width      int  `toml:"width" yaml:"width"`
	Height     int  `toml:"height" yaml:"height"`
	Wrap       bool `toml:"wrap" yaml:"wrap"`
	SingleStep int  `toml:"single_step" yaml:"single_step"`
	TabWidth   int  `toml:"tab_width" yaml:"tab_width"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// ScriptConfig limits Lua scripts.
type ScriptConfig struct {
	// Timeout is a Go duration string such as "5s".
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// TimeoutDuration parses Timeout. Validate guarantees it parses.
func (s ScriptConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			IndentWidth: 4,
			AutoList:    true,
			AutoIndent:  true,
		},
		Viewport: ViewportConfig{
			Width:      80,
			Height:     24,
			SingleStep: 1,
			TabWidth:   4,
		},
		Logging: LoggingConfig{Level: "info"},
		Script:  ScriptConfig{Timeout: "5s"},
	}
}

// Options customizes Load.
type Options struct {
	// FS reads the configuration file. Defaults to the OS file system.
	FS loader.FileSystem
	// Env loads environment overrides. Defaults to the KEYMARK_ loader.
	Env loader.Loader
}

// Load reads settings from path (optional) and the environment on top of
// the defaults, then validates the result.
func Load(path string) (*Config, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions is Load with replaceable sources.
func LoadWithOptions(path string, opts Options) (*Config, error) {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Env == nil {
		opts.Env = loader.NewEnvLoader(EnvPrefix)
	}

	merged := make(map[string]any)

	if path != "" {
		fl, err := loader.ForPath(opts.FS, path)
		if err != nil {
			return nil, err
		}
		data, err := fl.Load()
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		merged = loader.DeepMerge(merged, data)
		log.Debug().Str("path", path).Msg("config file loaded")
	}

	env, err := opts.Env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, env)

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes a merged settings map over c.
func (c *Config) apply(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	if err := toml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every setting range.
func (c *Config) Validate() error {
	checks := []struct {
		ok    bool
		path  string
		value any
		msg   string
	}{
		{c.Editor.IndentWidth >= 1 && c.Editor.IndentWidth <= 16, "editor.indent_width", c.Editor.IndentWidth, "must be between 1 and 16"},
		{c.Viewport.Width >= 1, "viewport.width", c.Viewport.Width, "must be positive"},
		{c.Viewport.Height >= 1, "viewport.height", c.Viewport.Height, "must be positive"},
		{c.Viewport.SingleStep >= 1, "viewport.single_step", c.Viewport.SingleStep, "must be positive"},
		{c.Viewport.TabWidth >= 1, "viewport.tab_width", c.Viewport.TabWidth, "must be positive"},
		{logLevels[strings.ToLower(c.Logging.Level)], "logging.level", c.Logging.Level, "must be debug, info, warn or error"},
		{c.Script.TimeoutDuration() > 0, "script.timeout", c.Script.Timeout, "must be a positive duration"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return &ValidationError{Path: chk.path, Value: chk.value, Message: chk.msg}
		}
	}
	return nil
}
