package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/pipeline"
)

// layoutCommand creates the layout command, which re-lays out a diagram
// previously written with -f json.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags diagramFlags
	opts := pipeline.Options{
		Layout:      c.Config.Layout,
		LevelHeight: c.Config.LevelHeight,
	}

	cmd := &cobra.Command{
		Use:   "layout <diagram.json>",
		Short: "Lay out a saved diagram again and render it",
		Long: `Read a diagram written by 'hasse diagram -f json', compute new coordinates
and render it. Levels and covering pairs are taken from the file as-is.`,
		Example: `  hasse layout divisors.json --layout circular -f svg -o divisors-circle.svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(flags.formats)
			return c.runLayout(cmd, args[0], opts, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Layout, "layout", opts.Layout, "layout: hierarchical, circular")
	f.Float64Var(&opts.LevelHeight, "level-height", opts.LevelHeight, "vertical distance between levels (hierarchical)")
	f.BoolVar(&opts.Detailed, "detailed", false, "show levels in DOT/SVG node labels")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s): json (default), dot, svg, canvas-svg, pdf (comma-separated)")
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.BoolVar(&flags.noCache, "no-cache", false, "disable caching")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(graph.Layouts, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, path string, opts pipeline.Options, flags diagramFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var (
		d   graph.Diagram
		err error
	)
	if path == "-" {
		d, err = graph.ReadDiagram(os.Stdin)
	} else {
		d, err = graph.ReadDiagramFile(path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read diagram %s", path)
	}
	if len(d.Nodes) > 0 {
		if _, err := graph.ToDAG(d); err != nil {
			return err
		}
	}

	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	prog := newProgress(logger)
	d, err = pipeline.ComputeLayout(d, opts.Layout, opts.LevelHeight)
	if err != nil {
		return err
	}
	prog.done("layout computed", "layout", opts.Layout, "nodes", len(d.Nodes))

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	artifacts, err := runner.Render(ctx, d, opts)
	if err != nil {
		return err
	}

	if flags.output == "" && len(opts.Formats) == 1 {
		_, err := cmd.OutOrStdout().Write(artifacts[opts.Formats[0]])
		return err
	}
	paths, err := writeArtifacts(artifacts, opts.Formats, flags.output)
	if err != nil {
		return err
	}
	printSuccess("Diagram laid out (%s)", opts.Layout)
	for _, p := range paths {
		printFile(p)
	}
	if !slices.Contains(opts.Formats, pipeline.FormatSVG) {
		printNextStep("Render as SVG", "hasse layout "+path+" -f svg")
	}
	return nil
}
