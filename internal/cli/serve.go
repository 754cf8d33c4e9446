package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hasse/pkg/api"
	"github.com/matzehuels/hasse/pkg/cache"
	"github.com/matzehuels/hasse/pkg/observability"
	"github.com/matzehuels/hasse/pkg/pipeline"
)

// redisKeyPrefix scopes cache keys when a shared Redis is used.
const redisKeyPrefix = "hasse:"

// serveFlags holds flags for the serve command.
type serveFlags struct {
	addr        string
	redisURL    string
	noCache     bool
	maxElements int
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	flags := serveFlags{
		addr:        c.Config.Addr,
		redisURL:    c.Config.RedisURL,
		maxElements: c.Config.MaxElements,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram pipeline over HTTP",
		Long: `Serve the diagram pipeline as a JSON HTTP API.

Endpoints:
  GET  /healthz
  GET  /v1/examples
  POST /v1/posets/parse
  POST /v1/posets/divisibility
  POST /v1/diagrams
  POST /v1/layout

Results are cached in Redis when --redis-url is set, otherwise in the local
cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", flags.addr, "listen address")
	cmd.Flags().StringVar(&flags.redisURL, "redis-url", flags.redisURL, "redis URL for the shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&flags.maxElements, "max-elements", flags.maxElements, "maximum elements per request (negative disables the cap)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	logger := loggerFromContext(ctx)

	hooks := observability.NewLogHooks(logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	runner, err := c.newServeRunner(ctx, flags)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := api.New(runner, logger, api.Config{MaxElements: flags.maxElements})
	printInfo("Listening on %s", flags.addr)
	return srv.ListenAndServe(ctx, flags.addr)
}

// newServeRunner picks the server's cache backend: Redis when a URL is
// configured, the local file cache otherwise.
func (c *CLI) newServeRunner(ctx context.Context, flags serveFlags) (*pipeline.Runner, error) {
	if flags.noCache || flags.redisURL == "" {
		return c.newRunner(flags.noCache)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: flags.redisURL})
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix)
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}
