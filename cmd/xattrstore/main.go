// Command xattrstore reads and writes the extended attributes of files and
// symbolic links.
//
//	xattrstore [-config FILE] [-nofollow] [-format yaml|cbor] [-debug] COMMAND ...
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/xattrstore"
	"github.com/desertwitch/xattrstore/internal/configuration"
	"github.com/desertwitch/xattrstore/structured"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile = flag.String("config", "", "read settings from this dotenv file")
	noFollow   = flag.Bool("nofollow", false, "act upon symbolic links themselves")
	format     = flag.String("format", "", "format for writing structured values (yaml or cbor)")
	debug      = flag.Bool("debug", false, "enable debug logging")
	version    = flag.Bool("version", false, "print the version and exit")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func loadSettings() (*configuration.Settings, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	var files []string
	if *configFile != "" {
		files = append(files, *configFile)
	}

	settings, err := configHandler.Load(files...)
	if err != nil {
		return nil, err
	}

	if *noFollow {
		settings.NoFollow = true
	}
	if *format != "" {
		f, err := structured.ParseFormat(*format)
		if err != nil {
			return nil, fmt.Errorf("%w: -format %q", ErrUsage, *format)
		}
		settings.Format = f
	}
	if *debug {
		settings.LogLevel = slog.LevelDebug
	}

	return settings, nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] COMMAND ...

Commands:
  list [-l] PATH                          list attribute names
  get [-mode raw|text|object] KEY PATH    print an attribute
  set KEY VALUE PATH                      store text
  set-object KEY YAML PATH                store a structured value
  rm KEY PATH                             remove an attribute
  dump PATH                               print all attributes
  sum PATH                                print BLAKE3 digests of all attributes
  cp SRC DST                              copy all attributes

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Fprintln(os.Stdout, "xattrstore", Version)

		return
	}

	setupLogging(slog.LevelInfo)

	settings, err := loadSettings()
	if err != nil {
		slog.Error("Failed to load the configuration.", "err", err)
		ExitCode = 1

		return
	}

	setupLogging(settings.LogLevel)

	app := NewApp(xattrstore.Default(), settings, os.Stdout)

	if err := app.Run(flag.Args()); err != nil {
		slog.Error("Command failed.", "err", err)
		ExitCode = 1
	}
}
