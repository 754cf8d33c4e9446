package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hasse/pkg/pipeline"
	"github.com/matzehuels/hasse/pkg/poset"
)

// examplesCommand creates the examples command.
func (c *CLI) examplesCommand() *cobra.Command {
	var (
		pick    bool
		layout  string
		formats string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the bundled example posets",
		Long: `List the bundled example posets.

With --pick an interactive list opens; the chosen example is computed as if
'hasse diagram --example <name>' had been run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := poset.Examples()
			if !pick {
				fmt.Println(examplesTable(examples))
				printNextStep("Compute one", "hasse diagram --example "+examples[0].Name)
				return nil
			}

			name, err := pickExample(examples)
			if err != nil {
				return err
			}
			if name == "" {
				printInfo("No example selected")
				return nil
			}

			opts := pipeline.Options{
				Example:     name,
				Layout:      layout,
				LevelHeight: c.Config.LevelHeight,
				MaxElements: c.Config.MaxElements,
				Formats:     parseFormats(formats),
			}
			if output == "" {
				output = name
			}
			return c.runDiagram(cmd.Context(), opts, diagramFlags{output: output})
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose an example interactively and compute it")
	cmd.Flags().StringVar(&layout, "layout", c.Config.Layout, "layout for the picked example: hierarchical, circular")
	cmd.Flags().StringVarP(&formats, "format", "f", "json,svg", "output format(s) for the picked example")
	cmd.Flags().StringVarP(&output, "output", "o", "", "base path for the picked example (default: its name)")

	return cmd
}

// examplesTable renders the examples as a table.
func examplesTable(examples []poset.Example) string {
	rows := make([][]string, len(examples))
	for i, e := range examples {
		kind := "relations"
		if e.IsDivisibility() {
			kind = "divisibility"
		}
		rows[i] = []string{e.Name, e.Title, kind}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Kind").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return styleHeader.Padding(0, 1)
			case col == 0:
				return StyleNumber.Padding(0, 1)
			case col == 2:
				return StyleDim.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		}).
		Render()
}

// pickExample runs the interactive picker and returns the chosen example
// name, or "" if the user quit.
func pickExample(examples []poset.Example) (string, error) {
	final, err := tea.NewProgram(NewExampleListModel(examples)).Run()
	if err != nil {
		return "", fmt.Errorf("example picker: %w", err)
	}
	m, ok := final.(ExampleListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Name, nil
}

// completeExamples completes example names for --example.
func completeExamples(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, e := range poset.Examples() {
		if strings.HasPrefix(e.Name, toComplete) {
			out = append(out, e.Name+"\t"+e.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
