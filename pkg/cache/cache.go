// Package cache provides the storage backends and key scheme used to reuse
// computed Hasse diagrams and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: JSON files under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by "hasse serve"
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// # Keys
//
// A [Keyer] derives keys from content hashes. Diagram keys hash the poset
// together with the options that influence the diagram; artifact keys hash
// the diagram together with the output format. Identical input therefore
// maps to the same key across processes and machines.
package cache

import (
	"context"
	"time"
)

// Cache TTLs.
const (
	// TTLDiagram is how long a computed diagram stays cached. Diagrams are
	// pure functions of their input, so this only bounds storage growth.
	TTLDiagram = 7 * 24 * time.Hour

	// TTLArtifact is how long a rendered artifact stays cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DiagramKeyOpts are the options that change a computed diagram.
type DiagramKeyOpts struct {
	Layout        string  `json:"layout"`
	LevelHeight   float64 `json:"level_height"`
	KeepRedundant bool    `json:"keep_redundant,omitempty"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	NodeRadius float64 `json:"node_radius,omitempty"`
	Margin     float64 `json:"margin,omitempty"`
	Detailed   bool    `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// DiagramKey returns the key of the diagram computed from the poset
	// with the given content hash.
	DiagramKey(posetHash string, opts DiagramKeyOpts) string

	// ArtifactKey returns the key of a rendering of the diagram with the
	// given content hash.
	ArtifactKey(diagramHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "prefix:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DiagramKey implements [Keyer].
func (DefaultKeyer) DiagramKey(posetHash string, opts DiagramKeyOpts) string {
	return hashKey("diagram", posetHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(diagramHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", diagramHash, opts)
}
