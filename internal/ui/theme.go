package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for banners and the pager.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Accent string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Banner lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Body   lipgloss.Style
}

// Styles returns Lipgloss styles for this theme bound to the default renderer.
func (t Theme) Styles() Styles {
	return t.StylesFor(lipgloss.DefaultRenderer())
}

// StylesFor returns Lipgloss styles for this theme bound to r, so color output
// follows r's color profile.
func (t Theme) StylesFor(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),

		Header: r.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Footer: r.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Body: r.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),
	}
}

// Theme definitions
var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:       "Nightfox",
		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Text:       "#cdcecf", // fg1
		Muted:      "#738091", // comment
		Accent:     "#719cd6", // blue
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:       "Kanagawa",
		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Text:       "#DCD7BA", // fujiWhite
		Muted:      "#C8C093", // oldWhite
		Accent:     "#7E9CD8", // crystalBlue
	}
}

func slateTheme() Theme {
	// Tailwind slate scale
	return Theme{
		Name:       "Slate",
		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Text:       "#f1f5f9", // slate-100
		Muted:      "#94a3b8", // slate-400
		Accent:     "#38bdf8", // sky-400
	}
}
