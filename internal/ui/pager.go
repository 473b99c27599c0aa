package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pager is a Bubble Tea model that shows tail output in a scrollable
// viewport, starting at the bottom.
type Pager struct {
	title   string
	content string
	keys    keyMap
	styles  Styles

	viewport viewport.Model
	ready    bool
}

// NewPager creates a pager model for content.
func NewPager(title, content string, theme Theme) Pager {
	return Pager{
		title:   title,
		content: strings.TrimSuffix(content, "\n"),
		keys:    DefaultKeyMap(),
		styles:  theme.Styles(),
	}
}

// Init implements tea.Model.
func (m Pager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Header and footer take one row each.
		height := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.Style = m.styles.Body
			m.viewport.SetContent(m.content)
			m.viewport.GotoBottom()
			m.ready = true
			return m, nil
		}
		atBottom := m.viewport.AtBottom()
		m.viewport.Width = msg.Width
		m.viewport.Height = height
		if atBottom {
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Pager) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	}
	return m, nil
}

// View implements tea.Model.
func (m Pager) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.styles.Header.Render(m.title)
	footer := m.styles.Footer.Render(fmt.Sprintf("%3.f%%  %s", m.viewport.ScrollPercent()*100, m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

func (m Pager) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+strings.ToLower(h.Desc))
	}
	return strings.Join(parts, " • ")
}

// RunPager shows content full-screen until the user quits or ctx is
// cancelled.
func RunPager(ctx context.Context, title, content string, theme Theme) error {
	p := tea.NewProgram(
		NewPager(title, content, theme),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}
