package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/dshills/keymark/internal/config/loader"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func noEnv(vars ...string) loader.Loader {
	return loader.NewEnvLoaderFrom(EnvPrefix, func() []string { return vars })
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Editor.IndentationText() != "    " {
		t.Errorf("expected four spaces, got %q", cfg.Editor.IndentationText())
	}
	if cfg.Script.TimeoutDuration() != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Script.TimeoutDuration())
	}
}

func TestIndentationText(t *testing.T) {
	if got := (EditorConfig{IndentWidth: 2}).IndentationText(); got != "  " {
		t.Errorf("expected two spaces, got %q", got)
	}
	if got := (EditorConfig{IndentWidth: 8, UseTabs: true}).IndentationText(); got != "\t" {
		t.Errorf("expected a tab, got %q", got)
	}
}

func TestLoadLayers(t *testing.T) {
	fsys := memFS{
		"k.toml": "[editor]\nindent_width = 2\n\n[viewport]\nwidth = 40\nwrap = true\n",
	}

	cfg, err := LoadWithOptions("k.toml", Options{
		FS:  fsys,
		Env: noEnv("KEYMARK_VIEWPORT_WIDTH=60", "KEYMARK_LOG_LEVEL=debug"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Editor.IndentWidth != 2 {
		t.Errorf("expected file indent_width 2, got %d", cfg.Editor.IndentWidth)
	}
	if cfg.Viewport.Width != 60 {
		t.Errorf("expected env width 60, got %d", cfg.Viewport.Width)
	}
	if !cfg.Viewport.Wrap {
		t.Error("expected wrap from file")
	}
	if cfg.Viewport.Height != 24 {
		t.Errorf("expected default height 24, got %d", cfg.Viewport.Height)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Logging.Level)
	}
	if !cfg.Editor.AutoList {
		t.Error("expected default auto_list to survive")
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"k.yml": "editor:\n  use_tabs: true\nscript:\n  timeout: 250ms\n"}

	cfg, err := LoadWithOptions("k.yml", Options{FS: fsys, Env: noEnv()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor.IndentationText() != "\t" {
		t.Errorf("expected tab indentation, got %q", cfg.Editor.IndentationText())
	}
	if cfg.Script.TimeoutDuration() != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Script.TimeoutDuration())
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := LoadWithOptions("", Options{FS: memFS{}, Env: noEnv("KEYMARK_EDITOR_AUTO_LIST=false")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor.AutoList {
		t.Error("expected env to disable auto_list")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	fsys := memFS{
		"empty.toml":   "",
		"empty.yaml":   "",
		"comment.yaml": "# all defaults\n",
	}

	for path := range fsys {
		t.Run(path, func(t *testing.T) {
			cfg, err := LoadWithOptions(path, Options{FS: fsys, Env: noEnv()})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *cfg != *Default() {
				t.Errorf("expected defaults, got %+v", cfg)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := memFS{
		"bad.toml":    "[editor\n",
		"type.toml":   "[editor]\nindent_width = \"wide\"\n",
		"range.toml":  "[editor]\nindent_width = 0\n",
		"level.yaml":  "logging:\n  level: loud\n",
		"config.json": "{}",
	}

	tests := []struct {
		name  string
		path  string
		check func(error) bool
	}{
		{"missing", "none.toml", func(err error) bool { return errors.Is(err, ErrFileNotFound) }},
		{"parse", "bad.toml", func(err error) bool {
			var perr *ParseError
			return errors.As(err, &perr)
		}},
		{"type", "type.toml", func(err error) bool { return errors.Is(err, ErrTypeMismatch) }},
		{"range", "range.toml", func(err error) bool {
			var verr *ValidationError
			return errors.As(err, &verr) && verr.Path == "editor.indent_width"
		}},
		{"level", "level.yaml", func(err error) bool { return errors.Is(err, ErrValidationFailed) }},
		{"format", "config.json", func(err error) bool { return errors.Is(err, loader.ErrUnsupportedFormat) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithOptions(tt.path, Options{FS: fsys, Env: noEnv()})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestValidateTimeout(t *testing.T) {
	cfg := Default()
	cfg.Script.Timeout = "soon"
	if err := cfg.Validate(); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}
