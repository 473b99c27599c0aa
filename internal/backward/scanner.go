package backward

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/five82/rtail/internal/textenc"
)

// DefaultWindow is the number of bytes read from the stream per seek.
const DefaultWindow = 4096

// Option configures a Scanner.
type Option func(*Scanner)

// WithWindow sets how many bytes are read per seek. Values below 1 are ignored.
func WithWindow(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.window = n
		}
	}
}

// WithDecoder sets the decoder applied to each line. A nil decoder is ignored.
func WithDecoder(dec textenc.Decoder) Option {
	return func(s *Scanner) {
		if dec != nil {
			s.decode = dec
		}
	}
}

// Scanner yields the lines of a stream in reverse order.
type Scanner struct {
	r      io.ReadSeeker
	window int
	decode textenc.Decoder

	started    bool
	done       bool
	off        int64  // bytes before buf that have not been read yet
	buf        []byte // read but not yet returned, in file order
	sawNewline bool
}

// NewScanner returns a Scanner over r. The stream is not touched until the
// first call to Next.
func NewScanner(r io.ReadSeeker, opts ...Option) *Scanner {
	s := &Scanner{
		r:      r,
		window: DefaultWindow,
		decode: textenc.UTF8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset discards all scan state. The next call to Next seeks to the end of the
// stream again and starts over from the last line.
func (s *Scanner) Reset() {
	s.started = false
	s.done = false
	s.off = 0
	s.buf = s.buf[:0]
	s.sawNewline = false
}

// Next returns the next line, moving toward the start of the stream. It
// returns io.EOF once the first line of the stream has been returned.
func (s *Scanner) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}
	if !s.started {
		if err := s.start(); err != nil {
			s.done = true
			return "", err
		}
	}

	for {
		if i := bytes.LastIndexByte(s.buf, '\n'); i >= 0 {
			line := s.buf[i+1:]
			s.buf = s.buf[:i]
			s.sawNewline = true
			return s.emit(line)
		}
		if s.off == 0 {
			s.done = true
			if len(s.buf) == 0 && !s.sawNewline {
				return "", io.EOF
			}
			line := s.buf
			s.buf = s.buf[:0]
			return s.emit(line)
		}
		if err := s.fill(); err != nil {
			s.done = true
			return "", err
		}
	}
}

// Lines returns the lines of r in reverse order as a lazy sequence. Reading
// stops as soon as the caller stops ranging. A non-nil error is yielded once
// and ends the sequence.
func Lines(r io.ReadSeeker, opts ...Option) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s := NewScanner(r, opts...)
		for {
			line, err := s.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

func (s *Scanner) start() error {
	end, err := s.r.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("seek end: %w", err)
	}
	s.started = true
	s.off = end
	s.buf = s.buf[:0]
	s.sawNewline = false
	if end == 0 {
		return nil
	}

	if err := s.fill(); err != nil {
		return err
	}
	// The newline ending the final line does not open a new, empty one.
	if n := len(s.buf); n > 0 && s.buf[n-1] == '\n' {
		s.buf = s.buf[:n-1]
		s.sawNewline = true
	}
	return nil
}

// fill reads the window immediately before the cursor and prepends it to buf.
func (s *Scanner) fill() error {
	size := int64(s.window)
	if size > s.off {
		size = s.off
	}
	from := s.off - size

	if _, err := s.r.Seek(from, io.SeekStart); err != nil {
		return fmt.Errorf("seek %d: %w", from, err)
	}
	merged := make([]byte, int(size)+len(s.buf))
	if _, err := io.ReadFull(s.r, merged[:size]); err != nil {
		return fmt.Errorf("read at %d: %w", from, err)
	}
	copy(merged[size:], s.buf)

	s.buf = merged
	s.off = from
	return nil
}

func (s *Scanner) emit(line []byte) (string, error) {
	text, err := s.decode(line)
	if err != nil {
		s.done = true
		return "", fmt.Errorf("decode line: %w", err)
	}
	return text, nil
}
