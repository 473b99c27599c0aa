// Package config loads rtail's optional TOML defaults file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/rtail/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - num_lines: 10
//   - encoding: utf-8
//   - color: auto (auto, always, never)
//   - theme: Nightfox (Nightfox, Kanagawa, Slate)
//   - spool_dir: empty, meaning the OS temp directory
//
// # TOML Format
//
//	num_lines = 20
//	encoding = "latin1"
//	color = "never"
//	theme = "Slate"
//	spool_dir = "~/.cache/rtail"
//
// Every field is optional. Tilde expansion is performed for spool_dir.
// Command-line flags take precedence over anything loaded here; values are
// validated by the packages that consume them, except num_lines, which must not
// be negative.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and negative num_lines
package config
