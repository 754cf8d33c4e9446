package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
	canvasrenderer "github.com/matzehuels/hasse/pkg/render/canvas"
	"github.com/matzehuels/hasse/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
// Formats are rendered concurrently; the first failure cancels the rest.
func Render(ctx context.Context, d graph.Diagram, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := RenderFormat(d, format, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(d graph.Diagram, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = graph.MarshalDiagram(d)
	case FormatDOT:
		data = []byte(nodelink.ToDOT(d, dotOptions(d, opts)))
	case FormatSVG:
		data, err = nodelink.Render(d, dotOptions(d, opts))
	case FormatCanvasSVG:
		data, err = canvasrenderer.RenderSVG(d, canvasOptions(opts))
	case FormatPDF:
		data, err = canvasrenderer.RenderPDF(d, canvasOptions(opts))
	default:
		return nil, ValidateFormat(format)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

// dotOptions pins nodes for circular layouts, which Graphviz ranking
// cannot reproduce.
func dotOptions(d graph.Diagram, opts Options) nodelink.Options {
	return nodelink.Options{
		Detailed: opts.Detailed,
		Pinned:   d.Layout == graph.LayoutCircular,
	}
}

func canvasOptions(opts Options) canvasrenderer.Options {
	return canvasrenderer.Options{
		NodeRadius: opts.NodeRadius,
		Margin:     opts.Margin,
	}
}
