package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/hasse/pkg/cache"
	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/observability"
	"github.com/matzehuels/hasse/pkg/poset"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → diagram → layout → render pipeline
// with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{ID: NewID()}

	// Stage 1: Build
	source := opts.Source()
	hooks := observability.Pipeline()
	buildStart := time.Now()
	hooks.OnBuildStart(ctx, source)
	p, err := BuildPoset(opts)
	result.Stats.BuildTime = time.Since(buildStart)
	hooks.OnBuildComplete(ctx, source, posetSize(p), result.Stats.BuildTime, err)
	if err != nil {
		return nil, err
	}
	result.Poset = p
	result.Stats.ElementCount = len(p.Distinct())
	result.Stats.RelationCount = len(p.Relations)

	r.Logger.Debug("built poset",
		"source", source,
		"elements", result.Stats.ElementCount,
		"relations", result.Stats.RelationCount)

	// Stage 2 and 3: Diagram and layout
	diagramStart := time.Now()
	d, red, hit, err := r.DiagramWithCacheInfo(ctx, p, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.DiagramTime = time.Since(diagramStart)
	result.Stats.NodeCount = len(d.Nodes)
	result.Stats.EdgeCount = len(d.Edges)
	result.Stats.ClosurePairs = red.ClosurePairs
	result.Stats.RedundantRemoved = red.RedundantRemoved
	result.Stats.MaxLevel = red.MaxLevel
	result.CacheInfo.DiagramHit = hit

	r.Logger.Info("computed diagram",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"levels", d.MaxLevel()+1,
		"redundant", red.RedundantRemoved,
		"duration", result.Stats.DiagramTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, diagramHash, renderHit, err := r.renderWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.DiagramHash = diagramHash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ReductionStats summarizes the reduction that produced a diagram.
type ReductionStats struct {
	ClosurePairs     int `json:"closure_pairs"`
	RedundantRemoved int `json:"redundant_removed"`
	MaxLevel         int `json:"max_level"`
}

// cachedDiagram is the cache entry for a laid-out diagram.
type cachedDiagram struct {
	Diagram   graph.Diagram  `json:"diagram"`
	Reduction ReductionStats `json:"reduction"`
}

// DiagramWithCacheInfo computes the laid-out Hasse diagram of p with caching
// and returns cache hit info.
func (r *Runner) DiagramWithCacheInfo(ctx context.Context, p *poset.Poset, opts Options) (graph.Diagram, ReductionStats, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Diagram{}, ReductionStats{}, false, err
	}

	posetHash, err := cache.HashJSON(p)
	if err != nil {
		return graph.Diagram{}, ReductionStats{}, false, err
	}
	cacheKey := r.Keyer.DiagramKey(posetHash, opts.DiagramKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedDiagram
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "diagram")
				return cached.Diagram, cached.Reduction, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "diagram")
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnDiagramStart(ctx, posetSize(p))
	d, res, err := computeDiagram(p, opts.KeepRedundant)
	hooks.OnDiagramComplete(ctx, len(d.Nodes), len(d.Edges), time.Since(start), err)
	if err != nil {
		return graph.Diagram{}, ReductionStats{}, false, err
	}
	red := ReductionStats{
		ClosurePairs:     res.ClosurePairs,
		RedundantRemoved: res.RedundantEdgesRemoved,
		MaxLevel:         res.MaxLevel,
	}

	start = time.Now()
	hooks.OnLayoutStart(ctx, opts.Layout, len(d.Nodes))
	d, err = ComputeLayout(d, opts.Layout, opts.LevelHeight)
	hooks.OnLayoutComplete(ctx, opts.Layout, time.Since(start), err)
	if err != nil {
		return graph.Diagram{}, ReductionStats{}, false, err
	}

	if data, err := json.Marshal(cachedDiagram{Diagram: d, Reduction: red}); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLDiagram); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "diagram", len(data))
		}
	}

	return d, red, false, nil
}

// Diagram is a convenience wrapper that calls DiagramWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Diagram(ctx context.Context, p *poset.Poset, opts Options) (graph.Diagram, error) {
	d, _, _, err := r.DiagramWithCacheInfo(ctx, p, opts)
	return d, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Cached formats are reused; the remaining ones are rendered concurrently.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d graph.Diagram, opts Options) (map[string][]byte, bool, error) {
	artifacts, _, hit, err := r.renderWithCacheInfo(ctx, d, opts)
	return artifacts, hit, err
}

func (r *Runner) renderWithCacheInfo(ctx context.Context, d graph.Diagram, opts Options) (map[string][]byte, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}

	diagramData, err := graph.MarshalDiagram(d)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	diagramHash := cache.Hash(diagramData)

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
		allCached = true
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			key := r.Keyer.ArtifactKey(diagramHash, opts.ArtifactKeyOpts(format))
			if !opts.Refresh {
				if data, hit, err := r.Cache.Get(gctx, key); err == nil && hit {
					observability.Cache().OnCacheHit(gctx, "artifact")
					mu.Lock()
					artifacts[format] = data
					mu.Unlock()
					return nil
				}
				observability.Cache().OnCacheMiss(gctx, "artifact")
			}

			data, err := RenderFormat(d, format, opts)
			if err != nil {
				return err
			}
			if err := r.Cache.Set(gctx, key, data, cache.TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(gctx, "artifact", len(data))
			}

			mu.Lock()
			artifacts[format] = data
			allCached = false
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}
	return artifacts, diagramHash, allCached, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, d graph.Diagram, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func posetSize(p *poset.Poset) int {
	if p == nil {
		return 0
	}
	return len(p.Distinct())
}
