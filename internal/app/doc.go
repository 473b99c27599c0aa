// Package app drives a tail run over several files.
//
// # Overview
//
// Run walks the requested paths in command-line order and, for each one:
//
//  1. Checks that the path is an existing regular file, otherwise prints
//     "<path> is not a file" on stderr and moves on
//  2. Opens the byte stream (gzip files are decompressed into a spool file)
//  3. Collects the last N lines with logtail.Last; N = 0 stops here
//  4. Prints a "==> path <==" banner when more than one file was requested,
//     with a blank line before every banner except the first
//  5. Prints the lines, one per line; an empty result prints nothing
//  6. Closes the stream before the next file
//
// Any open, read or decode failure is printed on stderr and the run continues
// with the next file. Nothing, banner included, goes to stdout for a file
// that failed.
//
// # Components
//
//   - app.go: Options, Run, and the per-file loop
//
// # Output
//
// Lines go to Options.Stdout; diagnostics go to Options.Stderr. With
// Interactive set, the output is collected and shown in the ui pager instead.
// Debug records (paths, modes, line counts) go to Options.Logger.
package app
