// Package logtail extracts the last N lines of a stream.
//
// # Overview
//
// Last pulls lines from a backward.Scanner, newest first, until it has
// maxLines of them or reaches the start of the stream, then reverses the
// collected lines into file order:
//
//	f, err := os.Open("/var/log/syslog")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	lines, err := logtail.Last(f, 10)
//
// Only the trailing part of the stream that holds those lines is read, so the
// cost depends on maxLines and line length, not on file size.
//
// # Error Handling
//
// Last returns either every requested line or an error and no lines. A decode
// failure in any of the trailing lines fails the whole call.
package logtail
