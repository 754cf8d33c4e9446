package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hasse/pkg/poset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExampleListModel - Interactive example selection
// =============================================================================

// ExampleListModel is the bubbletea model for interactive example selection.
type ExampleListModel struct {
	Examples []poset.Example
	Cursor   int
	Selected *poset.Example
}

// NewExampleListModel creates a new example list model.
func NewExampleListModel(examples []poset.Example) ExampleListModel {
	return ExampleListModel{Examples: examples}
}

func (m ExampleListModel) Init() tea.Cmd {
	return nil
}

func (m ExampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Examples)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Examples) == 0 {
				return m, tea.Quit
			}
			e := m.Examples[m.Cursor]
			m.Selected = &e
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ExampleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Example"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, e := range m.Examples {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, e.Name, e.Title)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Examples) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("  " + m.Examples[m.Cursor].Description))
		b.WriteString("\n")
	}
	return b.String()
}
