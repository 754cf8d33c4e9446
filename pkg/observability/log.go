package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level.
// It implements PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks creates hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnBuildStart(_ context.Context, source string) {
	h.Logger.Debug("build start", "source", source)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, source string, elementCount int, d time.Duration, err error) {
	h.done("build", err, "source", source, "elements", elementCount, "duration", d)
}

func (h *LogHooks) OnDiagramStart(_ context.Context, elementCount int) {
	h.Logger.Debug("diagram start", "elements", elementCount)
}

func (h *LogHooks) OnDiagramComplete(_ context.Context, nodeCount, edgeCount int, d time.Duration, err error) {
	h.done("diagram", err, "nodes", nodeCount, "edges", edgeCount, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, layout string, nodeCount int) {
	h.Logger.Debug("layout start", "layout", layout, "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, layout string, d time.Duration, err error) {
	h.done("layout", err, "layout", layout, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", err, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.Logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

func (h *LogHooks) done(stage string, err error, kv ...any) {
	if err != nil {
		h.Logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(stage+" done", kv...)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
