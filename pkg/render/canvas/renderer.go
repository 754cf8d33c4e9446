package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
)

// ptToMM converts typographic points to the millimetres canvas works in.
const ptToMM = 25.4 / 72

// Defaults for Options fields left at zero.
const (
	DefaultNodeRadius  = 16.0
	DefaultMargin      = 24.0
	DefaultFontSize    = 11.0
	DefaultStrokeWidth = 1.2
)

// Options configures the drawing. Sizes are in points.
type Options struct {
	NodeRadius  float64
	Margin      float64
	FontSize    float64
	StrokeWidth float64

	NodeFill   color.Color
	NodeStroke color.Color
	EdgeStroke color.Color
	LabelColor color.Color
}

func (o Options) withDefaults() Options {
	if o.NodeRadius <= 0 {
		o.NodeRadius = DefaultNodeRadius
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.NodeFill == nil {
		o.NodeFill = canvas.White
	}
	if o.NodeStroke == nil {
		o.NodeStroke = canvas.Hex("#334155")
	}
	if o.EdgeStroke == nil {
		o.EdgeStroke = canvas.Hex("#64748b")
	}
	if o.LabelColor == nil {
		o.LabelColor = canvas.Hex("#0f172a")
	}
	return o
}

// RenderSVG draws d and encodes the drawing as SVG.
func RenderSVG(d graph.Diagram, opts Options) ([]byte, error) {
	return render(d, opts, func(w io.Writer, width, height float64) writer {
		return svg.New(w, width, height, nil)
	})
}

// RenderPDF draws d and encodes the drawing as a single-page PDF.
func RenderPDF(d graph.Diagram, opts Options) ([]byte, error) {
	return render(d, opts, func(w io.Writer, width, height float64) writer {
		return pdf.New(w, width, height, nil)
	})
}

// writer is a canvas renderer that must be closed to flush its output.
type writer interface {
	canvas.Renderer
	Close() error
}

func render(d graph.Diagram, opts Options, newWriter func(io.Writer, float64, float64) writer) ([]byte, error) {
	if len(d.Nodes) > 0 && !d.HasCoordinates() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "diagram has no coordinates; apply a layout first")
	}
	opts = opts.withDefaults()

	face, err := labelFace(opts)
	if err != nil {
		return nil, err
	}

	f := newFrame(d, opts)
	c := canvas.New(f.width, f.height)
	ctx := canvas.NewContext(c)

	drawEdges(ctx, d, f, opts)
	drawNodes(ctx, d, f, opts, face)

	var buf bytes.Buffer
	w := newWriter(&buf, f.width, f.height)
	c.RenderTo(w)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode drawing: %w", err)
	}
	return buf.Bytes(), nil
}

// frame maps diagram coordinates (points, y-up) to canvas millimetres.
type frame struct {
	minX, minY    float64
	pad           float64
	width, height float64
}

func newFrame(d graph.Diagram, opts Options) frame {
	pad := opts.NodeRadius + opts.Margin
	minX, minY, maxX, maxY, ok := d.Bounds()
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	return frame{
		minX:   minX,
		minY:   minY,
		pad:    pad,
		width:  (maxX - minX + 2*pad) * ptToMM,
		height: (maxY - minY + 2*pad) * ptToMM,
	}
}

func (f frame) point(n graph.Node) (float64, float64) {
	x, y := n.Position()
	return (x - f.minX + f.pad) * ptToMM, (y - f.minY + f.pad) * ptToMM
}

func drawEdges(ctx *canvas.Context, d graph.Diagram, f frame, opts Options) {
	idx := d.NodeIndex()
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(opts.EdgeStroke)
	ctx.SetStrokeWidth(opts.StrokeWidth * ptToMM)
	for _, e := range d.Edges {
		si, okS := idx[e.Source]
		ti, okT := idx[e.Target]
		if !okS || !okT {
			continue
		}
		x1, y1 := f.point(d.Nodes[si])
		x2, y2 := f.point(d.Nodes[ti])
		p := &canvas.Path{}
		p.MoveTo(x1, y1)
		p.LineTo(x2, y2)
		ctx.DrawPath(0, 0, p)
	}
}

func drawNodes(ctx *canvas.Context, d graph.Diagram, f frame, opts Options, face *canvas.FontFace) {
	r := opts.NodeRadius * ptToMM
	metrics := face.Metrics()
	// shift the baseline so the label's ascent-descent box is centred
	baselineOffset := (metrics.Ascent - metrics.Descent) / 2

	for _, n := range d.Nodes {
		x, y := f.point(n)

		ctx.SetFillColor(opts.NodeFill)
		ctx.SetStrokeColor(opts.NodeStroke)
		ctx.SetStrokeWidth(opts.StrokeWidth * ptToMM)
		ctx.DrawPath(x, y, canvas.Circle(r))

		line := canvas.NewTextLine(face, n.ID, canvas.Center)
		ctx.DrawText(x, y-baselineOffset, line)
	}
}

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

func labelFace(opts Options) (*canvas.FontFace, error) {
	fontOnce.Do(func() {
		family := canvas.NewFontFamily("Go")
		if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			fontErr = fmt.Errorf("load label font: %w", err)
			return
		}
		fontFamily = family
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return fontFamily.Face(opts.FontSize, opts.LabelColor, canvas.FontRegular, canvas.FontNormal), nil
}
