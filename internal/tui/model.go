// Package tui is the interactive demo for bullet's list components: a
// scrollable sample list whose markers restyle live as the theme file
// changes.
package tui

import (
	"fmt"

	"github.com/MikeBiancalana/bullet/list"
	"github.com/MikeBiancalana/bullet/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// themeReloadedMsg carries a theme delivered by the watcher.
type themeReloadedMsg struct {
	theme *theme.Theme
}

// Model is the demo TUI state.
type Model struct {
	content  *list.List
	theme    *theme.Theme
	watcher  *theme.Watcher
	viewport viewport.Model
	keys     keyMap
	ready    bool
	width    int
	height   int
}

// NewModel creates the demo model. th and watcher may be nil, in which
// case built-in defaults apply and no live reload happens.
func NewModel(content *list.List, th *theme.Theme, watcher *theme.Watcher) *Model {
	if th != nil {
		content.ApplyTheme(th)
	}
	return &Model{
		content: content,
		theme:   th,
		watcher: watcher,
		keys:    defaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.waitForThemeReload()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case themeReloadedMsg:
		return m.handleThemeReloaded(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render("bullet demo")
	help := helpStyle.Render(fmt.Sprintf("%s %s  %s %s  %s %s",
		m.keys.Up.Help().Key, m.keys.Up.Help().Desc,
		m.keys.Down.Help().Key, m.keys.Down.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc,
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), help)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// One line each for title and help.
	viewHeight := msg.Height - 2
	if viewHeight < 1 {
		viewHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, viewHeight)
		m.ready = true
		m.refreshContent()
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewHeight
	}
	return m, nil
}

func (m *Model) handleThemeReloaded(msg themeReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.theme != nil {
		m.theme = msg.theme
		m.content.ApplyTheme(msg.theme)
		m.refreshContent()
	}
	if m.watcher == nil {
		return m, nil
	}
	return m, m.waitForThemeReload()
}

func (m *Model) refreshContent() {
	if m.ready {
		m.viewport.SetContent(m.content.String())
	}
}

// waitForThemeReload blocks on the watcher channel and surfaces the next
// reloaded theme as a message.
func (m *Model) waitForThemeReload() tea.Cmd {
	capturedWatcher := m.watcher
	return func() tea.Msg {
		th, ok := <-capturedWatcher.Themes()
		if !ok {
			return nil
		}
		return themeReloadedMsg{theme: th}
	}
}
