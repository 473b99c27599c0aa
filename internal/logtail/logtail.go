package logtail

import (
	"io"
	"slices"

	"github.com/five82/rtail/internal/backward"
)

// Last returns at most maxLines from the end of r, in file order.
func Last(r io.ReadSeeker, maxLines int, opts ...backward.Option) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}

	var lines []string
	for line, err := range backward.Lines(r, opts...) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
		if len(lines) == maxLines {
			break
		}
	}
	slices.Reverse(lines)
	return lines, nil
}
