// Package app wires the editing kernel together: configuration, logging,
// the document, a viewport over it and a Lua scripting session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/dshills/keymark/internal/config"
	"github.com/dshills/keymark/internal/editkit"
	"github.com/dshills/keymark/internal/engine/document"
	"github.com/dshills/keymark/internal/input/vim"
	"github.com/dshills/keymark/internal/plugin/lua"
	"github.com/dshills/keymark/internal/renderer/backend"
	"github.com/dshills/keymark/internal/renderer/viewport"
)

// ErrClosed is returned when using an App after Close.
var ErrClosed = errors.New("app closed")

// DefaultMaxLogEntries bounds the document's cursor synchronisation log.
const DefaultMaxLogEntries = 4096

// Options configures an App.
type Options struct {
	// Config supplies settings. Defaults to config.Default().
	Config *config.Config

	// ScriptOutput receives the output of print in scripts.
	ScriptOutput io.Writer

	// MaxLogEntries bounds the edit log cursors replay. Cursors further
	// behind are clamped. Defaults to DefaultMaxLogEntries.
	MaxLogEntries int
}

// App is one editing session over a Markdown document.
type App struct {
	cfg     *config.Config
	doc     *document.Document
	cursor  *document.Cursor
	view    *viewport.Viewport
	vim     *vim.Executor
	lua     *lua.State
	session *lua.Session

	unsubscribe func()
	revisions   int
	closed      bool
}

// New creates an App editing text.
func New(text string, opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	maxLog := opts.MaxLogEntries
	if maxLog <= 0 {
		maxLog = DefaultMaxLogEntries
	}

	a := &App{cfg: cfg}
	a.doc = document.New(text, document.WithMaxLogEntries(maxLog))
	a.cursor = document.NewCursor(a.doc)
	a.view = viewport.NewViewport(a.doc, cfg.Viewport.Width, cfg.Viewport.Height,
		viewport.WithWrap(cfg.Viewport.Wrap),
		viewport.WithSingleStep(cfg.Viewport.SingleStep),
		viewport.WithTabWidth(cfg.Viewport.TabWidth),
	)
	a.vim = vim.NewExecutor(cfg.Editor.IndentationText())

	stateOpts := []lua.StateOption{lua.WithExecutionTimeout(cfg.Script.TimeoutDuration())}
	if opts.ScriptOutput != nil {
		stateOpts = append(stateOpts, lua.WithOutput(opts.ScriptOutput))
	}
	a.lua = lua.NewState(stateOpts...)
	a.session = &lua.Session{
		Doc:         a.doc,
		Cursor:      a.cursor,
		View:        a.view,
		Indentation: cfg.Editor.IndentationText(),
		AutoIndent:  cfg.Editor.AutoIndent,
		AutoList:    cfg.Editor.AutoList,
		Vim:         a.vim,
	}
	lua.NewEditModule(a.session).Register(a.lua)

	a.unsubscribe = a.doc.Subscribe(func(ch document.Change) {
		a.revisions++
		log.Debug().Str("id", ch.ID.String()).Int("revision", ch.Revision).Int("edits", len(ch.Edits)).Msg("document changed")
	})

	log.Debug().Int("blocks", a.doc.BlockCount()).Msg("session started")
	return a
}

// Document returns the edited document.
func (a *App) Document() *document.Document {
	return a.doc
}

// Cursor returns the session cursor.
func (a *App) Cursor() *document.Cursor {
	return a.cursor
}

// Viewport returns the view over the document.
func (a *App) Viewport() *viewport.Viewport {
	return a.view
}

// Text returns the document text.
func (a *App) Text() string {
	return a.doc.Text()
}

// RunScript executes Lua code against the session.
func (a *App) RunScript(ctx context.Context, code string) error {
	if a.closed {
		return ErrClosed
	}
	if err := a.lua.DoString(ctx, code); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// RunFile executes a Lua file against the session.
func (a *App) RunFile(ctx context.Context, path string) error {
	if a.closed {
		return ErrClosed
	}
	if err := a.lua.DoFile(ctx, path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// Normal runs a normal-mode key sequence at the session cursor.
func (a *App) Normal(keys string) (bool, error) {
	if a.closed {
		return false, ErrClosed
	}
	return a.vim.Execute(a.cursor, keys)
}

// Render draws the view with the session cursor kept in sight.
func (a *App) Render(theme backend.Theme) (string, error) {
	if a.closed {
		return "", ErrClosed
	}
	a.view.SetTextCursor(a.cursor)
	a.view.EnsureCursorVisible()
	return backend.Render(a.view, theme)
}

// Report summarises the session state.
type Report struct {
	Text         string
	Position     int
	Anchor       int
	SelectedText string
	Blocks       int
	Mode         string
	Revisions    int
}

// Report returns the current session state.
func (a *App) Report() Report {
	return Report{
		Text:         a.doc.Text(),
		Position:     a.cursor.Position(),
		Anchor:       a.cursor.Anchor(),
		SelectedText: editkit.SelectedText(a.cursor),
		Blocks:       a.doc.BlockCount(),
		Mode:         a.vim.Mode.String(),
		Revisions:    a.revisions,
	}
}

// Close releases the scripting state and detaches the view.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.unsubscribe()
	a.view.Close()
	return a.lua.Close()
}
