// Package main is the entry point for keymark.
//
// keymark loads a Markdown file, runs a Lua edit script against it and
// prints the resulting text, a JSON report or a rendering of the view.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/keymark/internal/app"
	"github.com/dshills/keymark/internal/config"
	"github.com/dshills/keymark/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	scriptPath string
	code       string
	keys       string
	jsonOut    bool
	render     bool
	logLevel   string
	file       string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	app.InstallLogger(app.LoggerConfig{Level: cfg.Logging.Level, Output: stderr})

	text, err := readInput(opts.file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(text, app.Options{Config: cfg, ScriptOutput: stderr})
	defer a.Close()

	if err := edit(ctx, a, opts); err != nil {
		log.Error().Err(err).Msg("edit failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case opts.render:
		out, err := a.Render(backend.DefaultTheme())
		if err != nil {
			fmt.Fprintf(stderr, "Error: rendering: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	case opts.jsonOut:
		out, err := report(a.Report())
		if err != nil {
			fmt.Fprintf(stderr, "Error: building report: %v\n", err)
			return 1
		}
		stdout.Write(out)
	default:
		io.WriteString(stdout, a.Text())
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("keymark", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&opts.scriptPath, "script", "", "Lua script to run")
	fs.StringVar(&opts.code, "e", "", "Lua code to run")
	fs.StringVar(&opts.keys, "normal", "", "Normal-mode keys to run after the script")
	fs.BoolVar(&opts.jsonOut, "json", false, "Print a JSON report instead of the text")
	fs.BoolVar(&opts.render, "render", false, "Print the rendered view instead of the text")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "keymark - Markdown editing kernel\n\n")
		fmt.Fprintf(stderr, "Usage: keymark [options] [file.md]\n\n")
		fmt.Fprintf(stderr, "Reads standard input when no file is given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  keymark -e 'edit.set_position(5) edit.newline()' notes.md\n")
		fmt.Fprintf(stderr, "  keymark -normal 'di(' -json notes.md\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if showVersion {
		fmt.Fprintf(stderr, "keymark %s (%s)\n", version, commit)
		return opts, flag.ErrHelp
	}

	if opts.scriptPath != "" && opts.code != "" {
		return opts, errors.New("-script and -e are mutually exclusive")
	}
	if opts.jsonOut && opts.render {
		return opts, errors.New("-json and -render are mutually exclusive")
	}
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return opts, errors.New("at most one file may be given")
	}
	return opts, nil
}

func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

func edit(ctx context.Context, a *app.App, opts options) error {
	switch {
	case opts.scriptPath != "":
		if err := a.RunFile(ctx, opts.scriptPath); err != nil {
			return err
		}
	case opts.code != "":
		if err := a.RunScript(ctx, opts.code); err != nil {
			return err
		}
	}
	if opts.keys != "" {
		ok, err := a.Normal(opts.keys)
		if err != nil {
			return fmt.Errorf("normal %q: %w", opts.keys, err)
		}
		if !ok {
			log.Info().Str("keys", opts.keys).Msg("normal command found nothing to act on")
		}
	}
	return nil
}

// report renders r as indented JSON.
func report(r app.Report) ([]byte, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"text", r.Text},
		{"position", r.Position},
		{"anchor", r.Anchor},
		{"selected_text", r.SelectedText},
		{"blocks", r.Blocks},
		{"mode", r.Mode},
		{"revisions", r.Revisions},
	}

	out := []byte("{}")
	for _, f := range fields {
		var err error
		out, err = sjson.SetBytes(out, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", f.path, err)
		}
	}
	return pretty.Pretty(out), nil
}
