package tui

import (
	"strings"
	"testing"

	"github.com/MikeBiancalana/bullet/list"
	"github.com/MikeBiancalana/bullet/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func sampleList() *list.List {
	return list.New(
		list.NewItem(list.Text("one")),
		list.NewItem(list.Text("two")),
	)
}

func TestNewModel(t *testing.T) {
	m := NewModel(sampleList(), nil, nil)

	if m.content == nil {
		t.Fatal("content should not be nil")
	}
	if m.ready {
		t.Error("model should not be ready before the first window size message")
	}
	if m.Init() != nil {
		t.Error("Init should be a no-op without a watcher")
	}
}

func TestViewBeforeReady(t *testing.T) {
	m := NewModel(sampleList(), nil, nil)

	if got := m.View(); got != "Loading..." {
		t.Errorf("View before ready = %q", got)
	}
}

func TestWindowSizeMakesReady(t *testing.T) {
	m := NewModel(sampleList(), nil, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(*Model)

	if !m.ready {
		t.Fatal("model should be ready after window size message")
	}
	if m.viewport.Width != 80 {
		t.Errorf("viewport width = %d, want 80", m.viewport.Width)
	}
	if !strings.Contains(m.View(), "one") {
		t.Error("view should contain list content")
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(sampleList(), nil, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestThemeReloadedRestylesContent(t *testing.T) {
	content := sampleList()
	m := NewModel(content, nil, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(*Model)

	th := &theme.Theme{
		Components: map[string]theme.Component{
			list.ComponentList: {Marker: "→"},
		},
	}
	updated, _ = m.Update(themeReloadedMsg{theme: th})
	m = updated.(*Model)

	if !strings.Contains(m.View(), "→ one") {
		t.Error("view should use the reloaded theme's marker")
	}
}
