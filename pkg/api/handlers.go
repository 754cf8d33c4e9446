package api

import (
	"net/http"

	"github.com/matzehuels/hasse/pkg/buildinfo"
	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/graph"
	"github.com/matzehuels/hasse/pkg/pipeline"
	"github.com/matzehuels/hasse/pkg/poset"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

// ExamplesResponse is returned by GET /v1/examples.
type ExamplesResponse struct {
	Examples []poset.Example `json:"examples"`
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ExamplesResponse{Examples: poset.Examples()})
}

// ParseRequest is the body of POST /v1/posets/parse.
type ParseRequest struct {
	Elements  string `json:"elements"`
	Relations string `json:"relations"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	s.respondPoset(w, r, func() (*poset.Poset, error) {
		return poset.ParseInput(req.Elements, req.Relations)
	})
}

// DivisibilityRequest is the body of POST /v1/posets/divisibility.
type DivisibilityRequest struct {
	Numbers string `json:"numbers"`
}

func (s *Server) handleDivisibility(w http.ResponseWriter, r *http.Request) {
	var req DivisibilityRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	s.respondPoset(w, r, func() (*poset.Poset, error) {
		return poset.GenerateDivisibility(req.Numbers)
	})
}

func (s *Server) respondPoset(w http.ResponseWriter, r *http.Request, build func() (*poset.Poset, error)) {
	p, err := build()
	if err == nil {
		err = errors.ValidateElementCount(len(p.Distinct()), s.cfg.MaxElements)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DiagramResponse is returned by POST /v1/diagrams.
type DiagramResponse struct {
	ID        string             `json:"id"`
	Diagram   graph.Diagram      `json:"diagram"`
	Stats     pipeline.Stats     `json:"stats"`
	Cache     pipeline.CacheInfo `json:"cache"`
	Artifacts map[string][]byte  `json:"artifacts,omitempty"` // base64 in JSON
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decode(r, &opts); err != nil {
		writeError(w, r, err)
		return
	}
	if opts.MaxElements == 0 || opts.MaxElements > s.cfg.MaxElements || opts.MaxElements < 0 {
		opts.MaxElements = s.cfg.MaxElements
	}
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if !errors.IsInputError(err) {
			opts.Logger.Error("pipeline failed", "error", err)
		}
		writeError(w, r, err)
		return
	}

	// the diagram itself is the JSON rendering
	delete(result.Artifacts, pipeline.FormatJSON)
	result.Diagram.ID = result.ID
	writeJSON(w, http.StatusOK, DiagramResponse{
		ID:        result.ID,
		Diagram:   result.Diagram,
		Stats:     result.Stats,
		Cache:     result.CacheInfo,
		Artifacts: result.Artifacts,
	})
}

// LayoutRequest is the body of POST /v1/layout.
type LayoutRequest struct {
	Diagram graph.Diagram `json:"diagram"`
	Layout  string        `json:"layout"` // empty means hierarchical

	// LevelHeight is the vertical distance between levels. Zero or absent
	// selects pipeline.DefaultLevelHeight (100); a diagram with every node
	// at y=0 cannot be requested.
	LevelHeight float64 `json:"level_height"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := errors.ValidateElementCount(len(req.Diagram.Nodes), s.cfg.MaxElements); err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.Diagram.Nodes) > 0 {
		if _, err := graph.ToDAG(req.Diagram); err != nil {
			writeError(w, r, err)
			return
		}
	}

	d, err := pipeline.ComputeLayout(req.Diagram, req.Layout, req.LevelHeight)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
