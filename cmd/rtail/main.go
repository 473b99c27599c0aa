package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/five82/rtail/internal/app"
	"github.com/five82/rtail/internal/config"
	"github.com/five82/rtail/internal/textenc"
	"github.com/five82/rtail/internal/ui"
)

const usageLine = "usage: rtail [-h] [-n int] [-config path] [-color mode] [-encoding name] [-i] [-debug] FILE [FILE ...]"

const usageBody = `
Print the last lines of each FILE. Files ending in .gz are decompressed.

options:
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return runArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func runArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rtail", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var numLines int
	fs.IntVar(&numLines, "n", 10, "number of lines")
	fs.IntVar(&numLines, "num_lines", 10, "number of lines")
	configPath := fs.String("config", "", "override config path (optional)")
	color := fs.String("color", "", "color banners: auto, always or never")
	encoding := fs.String("encoding", "", "text encoding of the input files")
	interactive := fs.Bool("i", false, "show the output in a pager")
	debug := fs.Bool("debug", false, "log debug details to stderr")

	usage := func(w io.Writer) {
		fmt.Fprintln(w, usageLine)
		fmt.Fprint(w, usageBody)
		fs.SetOutput(w)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
	}

	files, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		usage(stdout)
		return exitOK
	}
	if err != nil {
		return usageError(stderr, usage, err.Error())
	}
	if len(files) == 0 {
		return usageError(stderr, usage, "the following arguments are required: FILE")
	}

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "rtail: load config: %v\n", err)
		return exitError
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["n"] && !set["num_lines"] {
		numLines = cfg.NumLines
	}
	if numLines < 0 {
		return usageError(stderr, usage, fmt.Sprintf("invalid line count: %d", numLines))
	}
	if !set["color"] {
		*color = cfg.Color
	}
	if !set["encoding"] {
		*encoding = cfg.Encoding
	}
	if _, err := textenc.Lookup(*encoding); err != nil {
		return usageError(stderr, usage, err.Error())
	}
	if _, err := ui.ParseColorMode(*color); err != nil {
		return usageError(stderr, usage, err.Error())
	}

	opts := app.Options{
		Files:       files,
		NumLines:    numLines,
		Encoding:    *encoding,
		Color:       *color,
		Theme:       cfg.Theme,
		SpoolDir:    cfg.SpoolDir,
		Interactive: *interactive && isTerminal(stdout),
		Stdout:      stdout,
		Stderr:      stderr,
		Logger:      logger,
	}
	logger.Debug("starting", "files", len(files), "num_lines", numLines, "encoding", *encoding, "interactive", opts.Interactive)

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(stderr, "rtail: %v\n", err)
		return exitError
	}
	return exitOK
}

// parseArgs parses flags that may appear before, between or after file
// arguments. Everything after "--" is a file.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return files, nil
		}
		if endsWithTerminator(fs, args[:len(args)-len(rest)]) {
			return append(files, rest...), nil
		}
		files = append(files, rest[0])
		args = rest[1:]
	}
}

// endsWithTerminator reports whether the flag arguments fs just consumed were
// closed by a bare "--", as opposed to "--" given as a flag's value.
func endsWithTerminator(fs *flag.FlagSet, consumed []string) bool {
	for i := 0; i < len(consumed); i++ {
		arg := consumed[i]
		if arg == "--" {
			return i == len(consumed)-1
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		i++
	}
	return false
}

func usageError(stderr io.Writer, usage func(io.Writer), msg string) int {
	usage(stderr)
	fmt.Fprintf(stderr, "rtail: error: %s\n", msg)
	return exitUsage
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
