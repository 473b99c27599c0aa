// Package source resolves command-line paths into readable, seekable byte
// streams, decompressing gzip files on the way.
package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// ErrNotFile is returned by Check for paths that are missing or are not
// regular files.
var ErrNotFile = errors.New("not a file")

// Mode selects how the bytes of a file are decoded before scanning.
type Mode int

const (
	Plain Mode = iota
	Gzip
)

func (m Mode) String() string {
	switch m {
	case Gzip:
		return "gzip"
	default:
		return "plain"
	}
}

// ModeFor picks the mode from the file extension. Only ".gz" is recognized.
func ModeFor(path string) Mode {
	if filepath.Ext(path) == ".gz" {
		return Gzip
	}
	return Plain
}

// Ref is a path together with its decompression mode.
type Ref struct {
	Path string
	Mode Mode
}

// NewRef builds the reference for a command-line argument.
func NewRef(path string) Ref {
	return Ref{Path: path, Mode: ModeFor(path)}
}

// Check reports whether the path names an existing regular file. Symlinks are
// followed.
func (r Ref) Check() error {
	info, err := os.Stat(r.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Path, ErrNotFile)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", r.Path, ErrNotFile)
	}
	return nil
}

// Open returns the decoded byte stream of the file. Gzip files are
// decompressed into a temporary file under spoolDir (the OS default when
// empty) so the result can be read backward; Close removes it.
func (r Ref) Open(spoolDir string) (io.ReadSeekCloser, error) {
	file, err := os.Open(r.Path)
	if err != nil {
		return nil, err
	}
	if r.Mode == Plain {
		return file, nil
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("open gzip %s: %w", r.Path, err)
	}
	defer zr.Close()

	spool, err := os.CreateTemp(spoolDir, "rtail-*.spool")
	if err != nil {
		return nil, fmt.Errorf("create spool: %w", err)
	}
	n, err := io.Copy(spool, zr)
	if err != nil {
		discard(spool)
		return nil, fmt.Errorf("decompress %s: %w", r.Path, err)
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		discard(spool)
		return nil, fmt.Errorf("rewind spool: %w", err)
	}

	slog.Debug("spooled gzip stream", "path", r.Path, "spool", spool.Name(), "bytes", n)
	return &spoolFile{File: spool}, nil
}

// spoolFile deletes its backing temp file on Close.
type spoolFile struct {
	*os.File
}

func (s *spoolFile) Close() error {
	closeErr := s.File.Close()
	removeErr := os.Remove(s.File.Name())
	return errors.Join(closeErr, removeErr)
}

func discard(f *os.File) {
	_ = f.Close()
	_ = os.Remove(f.Name())
}
