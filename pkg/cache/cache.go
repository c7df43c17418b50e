// Package cache provides caching for embedding and rendering results.
//
// Computing a planar or simultaneous embedding is pure and deterministic,
// so results can be cached indefinitely under a hash of the input graph.
// The package offers several backends behind a common interface:
//
//   - FileCache: JSON files on disk, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - MongoCache: persistent cache with server-side expiry
//   - NullCache: disables caching
//
// Keys are built by a Keyer from content hashes of the input graphs, so
// two requests for the same graph (in any vertex labeling that serializes
// identically) share an entry.
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; expired or corrupt entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources (connections, file handles).
	Close() error
}

// Cache lifetimes per result type. Embeddings are pure functions of their
// input, so the TTLs only bound cache growth, not staleness.
const (
	TTLEmbedding = 30 * 24 * time.Hour
	TTLSefe      = 30 * 24 * time.Hour
	TTLRender    = 7 * 24 * time.Hour
)

// RenderKeyOpts captures the options that make rendered artifacts distinct
// for the same input graph.
type RenderKeyOpts struct {
	Format  string `json:"format"`  // "dot", "svg", "png"
	Colored bool   `json:"colored"` // simultaneous embedding with edge colors
}

// Keyer generates cache keys for the different result types.
// Hashes passed in are content hashes of canonical graph serializations
// (see Hash).
type Keyer interface {
	// EmbeddingKey generates a key for a cached planar embedding.
	EmbeddingKey(graphHash string) string

	// SefeKey generates a key for a cached simultaneous embedding of the
	// graph pair identified by the two hashes.
	SefeKey(redHash, blueHash string) string

	// RenderKey generates a key for a rendered artifact.
	RenderKey(graphHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// EmbeddingKey generates a key for a cached planar embedding.
func (k *DefaultKeyer) EmbeddingKey(graphHash string) string {
	return "embed:" + graphHash
}

// SefeKey generates a key for a cached simultaneous embedding.
// The pair is order-sensitive: the first graph owns the red edges.
func (k *DefaultKeyer) SefeKey(redHash, blueHash string) string {
	return hashKey("sefe", redHash, blueHash)
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return hashKey("render", graphHash, opts)
}
