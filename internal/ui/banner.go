package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls whether banners are colored.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode accepts "auto", "always" or "never"; empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// BannerRenderer formats the "==> path <==" header printed before each file
// when several files are tailed.
type BannerRenderer struct {
	style lipgloss.Style
	plain bool
}

// NewBannerRenderer returns a renderer for banners written to w. In auto mode
// color is used only when w is a terminal.
func NewBannerRenderer(w io.Writer, mode ColorMode, theme Theme) BannerRenderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return BannerRenderer{
		style: theme.StylesFor(r).Banner,
		plain: r.ColorProfile() == termenv.Ascii,
	}
}

// Render returns the banner for path without a trailing newline.
func (b BannerRenderer) Render(path string) string {
	text := "==> " + path + " <=="
	if b.plain {
		return text
	}
	return b.style.Render(text)
}
