// Package pipeline provides the poset-to-diagram pipeline for hasse.
//
// This package implements the complete build → diagram → layout → render
// pipeline used by the CLI and the HTTP API. By centralizing this logic,
// both entry points share defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Build: parse elements and relations, generate a divisibility poset,
//     or load a bundled example
//  2. Diagram: transitive closure, transitive reduction and level assignment
//  3. Layout: hierarchical or circular coordinates
//  4. Render: JSON, DOT, Graphviz SVG, canvas SVG and PDF
//
// The two core stages are available as plain functions:
//
//	d, err := pipeline.ComputeHasseDiagram(p)
//	d, err = pipeline.ComputeLayout(d, "hierarchical", 100)
//
// # Usage
//
// Create a Runner and execute the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Numbers: "1,2,3,4,6,12",
//	    Formats: []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/hasse/pkg/cache"
	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/poset"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultLayout is the layout strategy used when none is requested.
	DefaultLayout = graph.LayoutHierarchical

	// DefaultLevelHeight is the vertical distance between levels.
	DefaultLevelHeight = 100.0

	// DefaultMaxElements caps the number of distinct elements. The closure
	// is cubic in the element count.
	DefaultMaxElements = 500
)

// DefaultFormats is the output format list used when none is requested.
var DefaultFormats = []string{FormatJSON}

// Format constants for output formats.
const (
	FormatJSON      = "json"
	FormatDOT       = "dot"
	FormatSVG       = "svg"
	FormatCanvasSVG = "canvas-svg"
	FormatPDF       = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:      true,
	FormatDOT:       true,
	FormatSVG:       true,
	FormatCanvasSVG: true,
	FormatPDF:       true,
}

// Formats lists the supported output formats in display order.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatCanvasSVG, FormatPDF}

// Poset sources reported by [Options.Source].
const (
	SourceRelations    = "relations"
	SourceDivisibility = "divisibility"
	SourceExample      = "example"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization for API requests.
//
// Exactly one poset source is used: Example, Numbers, or Elements with
// Relations.
type Options struct {
	// Build options
	Elements    string `json:"elements,omitempty"`
	Relations   string `json:"relations,omitempty"`
	Numbers     string `json:"numbers,omitempty"`
	Example     string `json:"example,omitempty"`
	MaxElements int    `json:"max_elements,omitempty"` // negative disables the cap

	// Diagram and layout options
	KeepRedundant bool    `json:"keep_redundant,omitempty"`
	Layout        string  `json:"layout,omitempty"`
	LevelHeight   float64 `json:"level_height,omitempty"` // zero means DefaultLevelHeight, not a flat diagram

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"`    // level numbers in DOT labels
	NodeRadius float64  `json:"node_radius,omitempty"` // canvas renderer
	Margin     float64  `json:"margin,omitempty"`      // canvas renderer
	Refresh    bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run. It is echoed in API responses and logs.
	ID string

	// Poset is the poset the diagram was computed from.
	Poset *poset.Poset

	// Diagram is the leveled, laid-out Hasse diagram.
	Diagram graph.Diagram

	// DiagramHash is the content hash of the diagram.
	DiagramHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains size and timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount     int           `json:"elements"`
	RelationCount    int           `json:"relations"`
	NodeCount        int           `json:"nodes"`
	EdgeCount        int           `json:"edges"`
	ClosurePairs     int           `json:"closure_pairs"`
	RedundantRemoved int           `json:"redundant_removed"`
	MaxLevel         int           `json:"max_level"`
	BuildTime        time.Duration `json:"build_time"`
	DiagramTime      time.Duration `json:"diagram_time"`
	RenderTime       time.Duration `json:"render_time"`
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DiagramHit bool `json:"diagram_hit"` // diagram and layout came from cache
	RenderHit  bool `json:"render_hit"`  // all artifacts came from cache
}

// NewID returns a fresh run identifier.
func NewID() string {
	return uuid.NewString()
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: json, dot, svg, canvas-svg, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForBuild checks that at most one poset source is set.
func (o *Options) ValidateForBuild() error {
	sources := 0
	if o.Example != "" {
		sources++
	}
	if o.Numbers != "" {
		sources++
	}
	if o.Elements != "" || o.Relations != "" {
		sources++
	}
	if sources > 1 {
		return errors.New(errors.ErrCodeInvalidInput,
			"use only one of: elements and relations, numbers, example")
	}
	if o.MaxElements == 0 {
		o.MaxElements = DefaultMaxElements
	}
	o.setLogger()
	return nil
}

// ValidateForLayout applies layout defaults and validates the layout options.
func (o *Options) ValidateForLayout() error {
	if o.Layout == "" {
		o.Layout = DefaultLayout
	}
	if o.LevelHeight == 0 {
		o.LevelHeight = DefaultLevelHeight
	}
	o.setLogger()
	if err := errors.ValidateLayoutType(o.Layout); err != nil {
		return err
	}
	return errors.ValidateLevelHeight(o.LevelHeight)
}

// ValidateForRender applies render defaults and validates the formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Source reports which poset source the options select.
func (o *Options) Source() string {
	switch {
	case o.Example != "":
		return SourceExample
	case o.Numbers != "":
		return SourceDivisibility
	default:
		return SourceRelations
	}
}

// DiagramKeyOpts returns cache key options for diagram computation.
func (o *Options) DiagramKeyOpts() cache.DiagramKeyOpts {
	return cache.DiagramKeyOpts{
		Layout:        o.Layout,
		LevelHeight:   o.LevelHeight,
		KeepRedundant: o.KeepRedundant,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatCanvasSVG, FormatPDF:
		k.NodeRadius = o.NodeRadius
		k.Margin = o.Margin
	case FormatDOT, FormatSVG:
		k.Detailed = o.Detailed
	}
	return k
}
