// Package backward reads the lines of a seekable stream from its end toward
// its start.
//
// # Overview
//
// A Scanner keeps a byte cursor into the stream and a buffer of bytes that
// have been read but not yet returned. Each call to Next returns the line
// closest to the end that has not been returned yet, so the last line of the
// file comes first. Memory use is bounded by the window size plus the length of
// the longest line, never by the size of the stream.
//
//	s := backward.NewScanner(f)
//	for {
//		line, err := s.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(line)
//	}
//
// Lines wraps the same state machine in an iter.Seq2 so callers can range over
// it and stop early.
//
// # Line Boundaries
//
// Lines are separated by a single '\n' byte. A newline at the very end of the
// stream terminates the last line and does not start another one. Adjacent
// newlines produce empty lines:
//
//	"a\n\nb\n"  →  "b", "", "a"
//	"a\nb"      →  "b", "a"
//	"\n"        →  ""
//	""          →  (nothing)
//
// No other byte is treated specially; a "\r\n" file keeps its '\r'.
//
// # Windowed Reads
//
// The stream is read in fixed-size trailing windows (DefaultWindow bytes)
// rather than one byte at a time. WithWindow(1) reproduces a strict
// byte-at-a-time scan; the window size never changes which lines are returned
// or their order.
//
// # Decoding
//
// Each line's bytes are handed to a textenc.Decoder in file order. The default
// decoder is strict UTF-8. A decode failure is returned from Next and ends the
// scan for that stream.
package backward
