package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/desertwitch/xattrstore"
	"github.com/desertwitch/xattrstore/internal/configuration"
	"github.com/desertwitch/xattrstore/structured"
)

// Modes of the get command.
const (
	ModeRaw    = "raw"
	ModeText   = "text"
	ModeObject = "object"
)

// App runs the commands of the tool against a store.
type App struct {
	store    *xattrstore.Store
	settings *configuration.Settings
	out      io.Writer
}

// NewApp returns a pointer to a new [App] writing its output to out.
func NewApp(store *xattrstore.Store, settings *configuration.Settings, out io.Writer) *App {
	return &App{
		store:    store,
		settings: settings,
		out:      out,
	}
}

// Run executes the command named by the first argument.
func (app *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	command, rest := args[0], args[1:]

	slog.Debug("Running command.",
		"command", command,
		"args", strings.Join(rest, " "),
		"nofollow", app.settings.NoFollow,
		"format", app.settings.Format.String(),
	)

	switch command {
	case "list":
		return app.list(rest)
	case "get":
		return app.get(rest)
	case "set":
		return app.set(rest)
	case "set-object":
		return app.setObject(rest)
	case "rm":
		return app.remove(rest)
	case "dump":
		return app.dump(rest)
	case "sum":
		return app.sum(rest)
	case "cp":
		return app.copy(rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (app *App) target(path string) xattrstore.Target {
	if app.settings.NoFollow {
		return xattrstore.NoFollow(path)
	}

	return xattrstore.Follow(path)
}

func parseArgs(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}

	if fs.NArg() != want {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrUsage, fs.Name(), want, fs.NArg())
	}

	return fs.Args(), nil
}

func (app *App) list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	long := fs.Bool("l", false, "show value sizes")

	pos, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	target := app.target(pos[0])

	if !*long {
		keys, err := app.store.ListKeys(target)
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintln(app.out, key)
		}

		return nil
	}

	attrs, err := app.store.Attributes(target)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		fmt.Fprintln(app.out, renderSize(attr.Key, attr.Value))
	}

	return nil
}

func (app *App) get(args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	mode := fs.String("mode", ModeText, "how to decode the value (raw, text or object)")

	pos, err := parseArgs(fs, args, 2) //nolint:mnd
	if err != nil {
		return err
	}
	key, target := pos[0], app.target(pos[1])

	switch *mode {
	case ModeRaw:
		value, err := app.store.GetRaw(target, key)
		if err != nil {
			return err
		}
		_, err = app.out.Write(value)

		return err //nolint:wrapcheck

	case ModeText:
		text, err := app.store.GetText(target, key)
		if err != nil {
			return err
		}
		fmt.Fprintln(app.out, text)

		return nil

	case ModeObject:
		value, err := app.store.GetObject(target, key)
		if err != nil {
			return err
		}
		data, err := structured.Marshal(value, structured.FormatYAML)
		if err != nil {
			return fmt.Errorf("(main) failed to render: %w", err)
		}
		_, err = app.out.Write(data)

		return err //nolint:wrapcheck

	default:
		return fmt.Errorf("%w: unknown mode %q", ErrUsage, *mode)
	}
}

func (app *App) set(args []string) error {
	pos, err := parseArgs(flag.NewFlagSet("set", flag.ContinueOnError), args, 3) //nolint:mnd
	if err != nil {
		return err
	}

	return app.store.SetText(app.target(pos[2]), pos[0], pos[1])
}

func (app *App) setObject(args []string) error {
	pos, err := parseArgs(flag.NewFlagSet("set-object", flag.ContinueOnError), args, 3) //nolint:mnd
	if err != nil {
		return err
	}

	value, err := structured.Unmarshal([]byte(pos[1]))
	if err != nil {
		return fmt.Errorf("%w: set-object: %w", ErrUsage, err)
	}

	return app.store.SetObjectFormat(app.target(pos[2]), pos[0], value, app.settings.Format)
}

func (app *App) remove(args []string) error {
	pos, err := parseArgs(flag.NewFlagSet("rm", flag.ContinueOnError), args, 2) //nolint:mnd
	if err != nil {
		return err
	}

	return app.store.RemoveKey(app.target(pos[1]), pos[0])
}

func (app *App) dump(args []string) error {
	pos, err := parseArgs(flag.NewFlagSet("dump", flag.ContinueOnError), args, 1)
	if err != nil {
		return err
	}

	attrs, err := app.store.Attributes(app.target(pos[0]))
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		fmt.Fprintln(app.out, renderAttribute(attr.Key, attr.Value))
	}

	return nil
}

func (app *App) sum(args []string) error {
	pos, err := parseArgs(flag.NewFlagSet("sum", flag.ContinueOnError), args, 1)
	if err != nil {
		return err
	}

	attrs, err := app.store.Attributes(app.target(pos[0]))
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		fmt.Fprintf(app.out, "%s  %s\n", digest(attr.Value), attr.Key)
	}

	return nil
}

func (app *App) copy(args []string) error {
	pos, err := parseArgs(flag.NewFlagSet("cp", flag.ContinueOnError), args, 2) //nolint:mnd
	if err != nil {
		return err
	}

	return app.store.Copy(app.target(pos[0]), app.target(pos[1]))
}
