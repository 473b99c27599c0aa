// Package ui holds rtail's terminal presentation: color themes, the
// "==> path <==" banner, and a Bubble Tea pager.
//
// # Banners
//
// BannerRenderer styles banners with the theme's accent color. In auto mode
// the color profile is detected from the output writer, so banners written to
// a pipe or file are plain text. Only banners are styled; file lines are
// always written unchanged.
//
// # Pager
//
// Pager wraps a bubbles viewport. It opens scrolled to the bottom, since the
// interesting part of a tail is its end, and supports:
//
//   - q, esc, ctrl+c: quit
//   - j/k, ↓/↑: scroll one line
//   - g/G, home/end: jump to top or bottom
//   - ctrl+d/ctrl+u: half page
//   - pgdown/space/f, pgup/b: full page
//
// # Themes
//
// Nightfox (default), Kanagawa and Slate. Unknown names fall back to Nightfox.
package ui
