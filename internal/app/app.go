package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/rtail/internal/backward"
	"github.com/five82/rtail/internal/logtail"
	"github.com/five82/rtail/internal/source"
	"github.com/five82/rtail/internal/textenc"
	"github.com/five82/rtail/internal/ui"
)

// Options configure a tail run.
type Options struct {
	Files       []string
	NumLines    int
	Encoding    string // empty uses UTF-8
	Color       string // auto, always or never; empty is auto
	Theme       string
	SpoolDir    string // empty uses the OS temp dir
	Interactive bool   // show the output in a pager instead of writing it

	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Run prints the last NumLines lines of every file in order. Problems with a
// single file are reported on Stderr and do not stop the run; Run only fails
// for invalid options or when the pager cannot be shown.
func Run(ctx context.Context, opts Options) error {
	dec, err := textenc.Lookup(opts.Encoding)
	if err != nil {
		return err
	}
	colorMode, err := ui.ParseColorMode(opts.Color)
	if err != nil {
		return err
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	theme := ui.GetTheme(opts.Theme)

	out := stdout
	var paged bytes.Buffer
	if opts.Interactive {
		out = &paged
	}

	t := &tailer{
		out:      out,
		errOut:   stderr,
		logger:   logger,
		banner:   ui.NewBannerRenderer(out, colorMode, theme),
		multi:    len(opts.Files) > 1,
		numLines: opts.NumLines,
		spoolDir: opts.SpoolDir,
		scanOpts: []backward.Option{backward.WithDecoder(dec)},
	}
	for i, path := range opts.Files {
		t.tailFile(i+1, path)
	}

	if opts.Interactive {
		return ui.RunPager(ctx, pagerTitle(opts.Files), paged.String(), theme)
	}
	return nil
}

// tailer holds the state shared across files of one run.
type tailer struct {
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	banner   ui.BannerRenderer
	multi    bool
	numLines int
	spoolDir string
	scanOpts []backward.Option
}

func (t *tailer) tailFile(index int, path string) {
	ref := source.NewRef(path)
	if err := ref.Check(); err != nil {
		t.logger.Debug("skipping path", "path", path, "error", err)
		fmt.Fprintf(t.errOut, "%s is not a file\n", path)
		return
	}

	stream, err := ref.Open(t.spoolDir)
	if err != nil {
		fmt.Fprintln(t.errOut, err)
		return
	}
	defer func() {
		if err := stream.Close(); err != nil {
			t.logger.Warn("close failed", "path", path, "error", err)
		}
	}()

	// A zero count prints nothing for the file, banner included.
	if t.numLines <= 0 {
		return
	}

	// Lines are collected before anything is written so a failing file
	// leaves no banner behind.
	lines, err := logtail.Last(stream, t.numLines, t.scanOpts...)
	if err != nil {
		fmt.Fprintln(t.errOut, tailError(path, err))
		return
	}
	t.logger.Debug("tailed file", "index", index, "path", path, "mode", ref.Mode, "lines", len(lines))

	if t.multi {
		if index > 1 {
			fmt.Fprintln(t.out)
		}
		fmt.Fprintln(t.out, t.banner.Render(path))
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(t.out, strings.Join(lines, "\n"))
}

func tailError(path string, err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}

func pagerTitle(files []string) string {
	switch len(files) {
	case 0:
		return "rtail"
	case 1:
		return files[0]
	default:
		return fmt.Sprintf("%s (+%d more)", files[0], len(files)-1)
	}
}
