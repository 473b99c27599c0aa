// Package textenc converts the raw bytes of a single line into text using a
// fixed, ASCII-compatible encoding.
package textenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultName is the encoding used when none is configured.
const DefaultName = "utf-8"

// ErrUnsupported is returned by Lookup for unknown encodings and for encodings
// whose newline is not the single byte '\n'.
var ErrUnsupported = errors.New("unsupported encoding")

// Decoder converts the bytes of one line, in file order, into text.
type Decoder func([]byte) (string, error)

// Lookup returns the Decoder for an encoding label such as "utf-8", "latin1" or
// "shift_jis". An empty label selects DefaultName.
func Lookup(name string) (Decoder, error) {
	label := strings.TrimSpace(name)
	if label == "" {
		label = DefaultName
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}

	switch canonical {
	case "utf-8":
		return UTF8, nil
	case "utf-16be", "utf-16le", "replacement":
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}

	return func(b []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%s: %w", canonical, err)
		}
		return string(out), nil
	}, nil
}

// UTF8 decodes b as UTF-8 and fails on the first invalid sequence instead of
// substituting U+FFFD.
func UTF8(b []byte) (string, error) {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
		return "", err
	}
	return string(b), nil
}
