// Package api exposes the hasse pipeline as an HTTP JSON API.
//
// # Endpoints
//
//	GET  /healthz                  liveness and build information
//	GET  /v1/examples              bundled example posets
//	POST /v1/posets/parse          {elements, relations} → poset
//	POST /v1/posets/divisibility   {numbers} → poset
//	POST /v1/diagrams              pipeline options → laid-out diagram and stats
//	POST /v1/layout                {diagram, layout, level_height} → diagram
//
// # Errors
//
// Failures are reported as
//
//	{"error": {"code": "UNKNOWN_ELEMENT", "message": "..."}}
//
// with the code taken from pkg/errors. Input errors map to 4xx statuses
// (422 for cyclic relations, 404 for unknown examples, 413 for oversized
// input); everything else is a 500.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed; otherwise a random UUID is generated. The ID is attached to every
// log line of the request.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	srv := api.New(runner, logger, api.Config{})
//	err := srv.ListenAndServe(ctx, ":8080")
package api
