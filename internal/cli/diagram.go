package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hasse/pkg/pipeline"
)

// defaultOutputBase is the file name prefix used when several formats are
// written and no --output is given.
const defaultOutputBase = "hasse"

// diagramFlags holds the command-line flags for the diagram command that do
// not map directly onto pipeline.Options.
type diagramFlags struct {
	formats       string
	relationsFile string
	output        string
	noCache       bool
	quiet         bool
}

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	var flags diagramFlags
	opts := pipeline.Options{
		Layout:      c.Config.Layout,
		LevelHeight: c.Config.LevelHeight,
		MaxElements: c.Config.MaxElements,
	}

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Compute and lay out a Hasse diagram",
		Long: `Compute the Hasse diagram of a poset and write it in one or more formats.

The poset comes from exactly one source:
  --elements with --relations (or --relations-file), one "A < B" or "A,B" per line
  --divisibility, a comma-separated list of positive integers
  --example, one of the bundled examples (see 'hasse examples')

With a single format and no --output the result is written to stdout.
Otherwise each format is written to <output>.<ext>.`,
		Example: `  hasse diagram --divisibility 1,2,3,4,6,12
  hasse diagram --elements a,b,c,d --relations $'a < b\na < c\nb < d\nc < d' -f svg -o abcd
  hasse diagram --example pentagon --layout circular -f json,canvas-svg,pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.relationsFile != "" {
				if opts.Relations != "" {
					return fmt.Errorf("use either --relations or --relations-file")
				}
				data, err := readInput(flags.relationsFile)
				if err != nil {
					return fmt.Errorf("read relations: %w", err)
				}
				opts.Relations = string(data)
			}
			if cmd.Flags().Changed("format") || len(c.Config.Formats) == 0 {
				opts.Formats = parseFormats(flags.formats)
			} else {
				opts.Formats = slices.Clone(c.Config.Formats)
			}
			return c.runDiagram(cmd.Context(), opts, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Elements, "elements", "", "comma-separated elements")
	f.StringVar(&opts.Relations, "relations", "", `relations, one "A < B" or "A,B" per line`)
	f.StringVar(&flags.relationsFile, "relations-file", "", `file with one relation per line ("-" for stdin)`)
	f.StringVar(&opts.Numbers, "divisibility", "", "comma-separated positive integers ordered by divisibility")
	f.StringVar(&opts.Example, "example", "", "bundled example name")
	f.StringVar(&opts.Layout, "layout", opts.Layout, "layout: hierarchical, circular")
	f.Float64Var(&opts.LevelHeight, "level-height", opts.LevelHeight, "vertical distance between levels (hierarchical)")
	f.IntVar(&opts.MaxElements, "max-elements", opts.MaxElements, "refuse posets with more elements (negative disables)")
	f.BoolVar(&opts.KeepRedundant, "keep-redundant", false, "keep implied relations instead of reducing to covering pairs")
	f.BoolVar(&opts.Detailed, "detailed", false, "show levels in DOT/SVG node labels")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s): json (default), dot, svg, canvas-svg, pdf (comma-separated)")
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "do not print the level summary")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(
		[]string{"hierarchical", "circular"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("example", completeExamples)

	return cmd
}

// runDiagram executes the pipeline and writes the artifacts.
func (c *CLI) runDiagram(ctx context.Context, opts pipeline.Options, flags diagramFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	toStdout := flags.output == "" && len(opts.Formats) == 1

	var spinner *Spinner
	if !toStdout {
		spinner = newSpinner(ctx, "Computing diagram...")
		spinner.Start()
	}

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Diagram failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done("diagram ready", "id", result.ID)

	if toStdout {
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, flags.output)
	if err != nil {
		return err
	}

	printSuccess("Hasse diagram computed")
	if !flags.quiet {
		printSummary(result)
	}
	for _, p := range paths {
		printFile(p)
	}
	if !slices.Contains(opts.Formats, pipeline.FormatSVG) {
		printNextStep("Render as SVG", "hasse diagram ... -f svg")
	}
	return nil
}

// fileExt maps an output format to a file extension.
func fileExt(format string) string {
	if format == pipeline.FormatCanvasSVG {
		return "canvas.svg"
	}
	return format
}

// basePath strips a known format extension from output. An empty output
// yields defaultOutputBase.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	if strings.HasSuffix(output, ".canvas.svg") {
		return strings.TrimSuffix(output, ".canvas.svg")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths returns the file each format is written to. A single format
// with an explicit output is written to exactly that path.
func outputPaths(formats []string, output string) []string {
	if len(formats) == 1 && output != "" {
		return []string{output}
	}
	base := basePath(output)
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + "." + fileExt(f)
	}
	return paths
}

// writeArtifacts writes every format's artifact and returns the paths.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	paths := outputPaths(formats, output)
	for i, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return nil, fmt.Errorf("no %s artifact was rendered", format)
		}
		if dir := filepath.Dir(paths[i]); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(paths[i], data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", paths[i], err)
		}
	}
	return paths, nil
}

// readInput reads a file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
