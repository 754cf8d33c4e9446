package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/hasse/pkg/poset"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ExampleListModel, keys ...string) (ExampleListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(ExampleListModel)
	}
	return m, cmd
}

func TestExampleListNavigation(t *testing.T) {
	examples := poset.Examples()
	m := NewExampleListModel(examples)

	tests := []struct {
		name   string
		keys   []string
		cursor int
	}{
		{"start", nil, 0},
		{"up at top stays", []string{"up"}, 0},
		{"down", []string{"down"}, 1},
		{"vim keys", []string{"j", "j", "k"}, 1},
		{"clamped at bottom", []string{"down", "down", "down", "down", "down", "down"}, len(examples) - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := press(m, tt.keys...)
			if got.Cursor != tt.cursor {
				t.Errorf("Cursor = %d, want %d", got.Cursor, tt.cursor)
			}
		})
	}
}

func TestExampleListSelect(t *testing.T) {
	examples := poset.Examples()
	m, cmd := press(NewExampleListModel(examples), "down", "enter")
	if m.Selected == nil || m.Selected.Name != examples[1].Name {
		t.Fatalf("Selected = %v, want %s", m.Selected, examples[1].Name)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestExampleListQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m, cmd := press(NewExampleListModel(poset.Examples()), k)
		if m.Selected != nil {
			t.Errorf("%s: nothing should be selected", k)
		}
		if cmd == nil {
			t.Errorf("%s: should quit", k)
		}
	}
}

func TestExampleListView(t *testing.T) {
	examples := poset.Examples()
	view := NewExampleListModel(examples).View()
	for _, e := range examples {
		if !strings.Contains(view, e.Name) {
			t.Errorf("view missing %s", e.Name)
		}
	}
	if !strings.Contains(view, examples[0].Description) {
		t.Error("view should describe the highlighted example")
	}
}
