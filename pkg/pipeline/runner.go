package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/planarkit/planarkit/pkg/cache"
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/graphio"
	"github.com/planarkit/planarkit/pkg/planar"
	"github.com/planarkit/planarkit/pkg/render/dot"
	"github.com/planarkit/planarkit/pkg/sefe"
)

// Runner executes embed and render stages with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one instance.
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

// graphHash is the content hash the cache keys are built from. Two graphs
// with the same edge set in the same insertion order hash identically.
func graphHash(g *graph.Graph) string {
	return cache.Hash(graphio.CanonicalBytes(g))
}

// EmbedWithCacheInfo computes a planar embedding of g with caching and
// reports whether the result was a cache hit. A non-planar input is an
// error with code NOT_PLANAR, never a cached verdict.
func (r *Runner) EmbedWithCacheInfo(ctx context.Context, g *graph.Graph) (*planar.Embedding, bool, error) {
	key := r.Keyer.EmbeddingKey(graphHash(g))

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		cached, err := graphio.ReadAdjacencyJSON(bytes.NewReader(data))
		if err == nil {
			return &planar.Embedding{Graph: cached}, true, nil
		}
		// Corrupt entry, fall through to recompute.
	}

	start := time.Now()
	emb, err := planar.Embed(g)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("computed embedding",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))

	var buf bytes.Buffer
	if err := graphio.WriteAdjacencyJSON(emb.Graph, &buf); err == nil {
		_ = r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLEmbedding)
	}
	return emb, false, nil
}

// Embed is a convenience wrapper that calls EmbedWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Embed(ctx context.Context, g *graph.Graph) (*planar.Embedding, error) {
	emb, _, err := r.EmbedWithCacheInfo(ctx, g)
	return emb, err
}

// TestPlanar reports whether g is planar, mapping the embedder's
// NOT_PLANAR error to a negative verdict.
func (r *Runner) TestPlanar(ctx context.Context, g *graph.Graph) (bool, error) {
	_, _, err := r.EmbedWithCacheInfo(ctx, g)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotPlanar) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SefeWithCacheInfo computes a simultaneous embedding of the pair with
// caching and reports whether the result was a cache hit. The pair is
// order-sensitive: the first graph owns the red edges.
func (r *Runner) SefeWithCacheInfo(ctx context.Context, red, blue *graph.Graph) (*sefe.Embedding, bool, error) {
	key := r.Keyer.SefeKey(graphHash(red), graphHash(blue))

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		cached, err := graphio.ReadColoredJSON(bytes.NewReader(data))
		if err == nil {
			return cached, true, nil
		}
	}

	start := time.Now()
	emb, err := sefe.EmbedGraphs(red, blue)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("computed simultaneous embedding",
		"vertices", red.VertexCount(),
		"red_edges", red.EdgeCount(),
		"blue_edges", blue.EdgeCount(),
		"duration", time.Since(start))

	var buf bytes.Buffer
	if err := graphio.WriteColoredJSON(emb, &buf); err == nil {
		_ = r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLSefe)
	}
	return emb, false, nil
}

// Sefe is a convenience wrapper that calls SefeWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Sefe(ctx context.Context, red, blue *graph.Graph) (*sefe.Embedding, error) {
	emb, _, err := r.SefeWithCacheInfo(ctx, red, blue)
	return emb, err
}

// TestSefe reports whether the pair admits a simultaneous embedding,
// mapping the embedder's NO_SEFE error to a negative verdict. Precondition
// violations remain errors.
func (r *Runner) TestSefe(ctx context.Context, red, blue *graph.Graph) (bool, error) {
	_, _, err := r.SefeWithCacheInfo(ctx, red, blue)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNoSefe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RenderWithCacheInfo embeds g and renders the embedding in the requested
// format, with caching, and reports whether the artifact was a cache hit.
// The embed stage runs through EmbedWithCacheInfo, so a render miss can
// still reuse a cached embedding.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	key := r.Keyer.RenderKey(graphHash(g), cache.RenderKeyOpts{Format: opts.Format, Colored: false})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	emb, _, err := r.EmbedWithCacheInfo(ctx, g)
	if err != nil {
		return nil, false, err
	}
	data, err := renderDOT(dot.EmbeddingToDOT(emb, dotOptions(opts)), opts.Format)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, data, cache.TTLRender)
	return data, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts RenderOptions) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return data, err
}

// RenderSefeWithCacheInfo embeds the pair simultaneously and renders the
// colored embedding, with caching. The cache key covers both inputs and
// the render options.
func (r *Runner) RenderSefeWithCacheInfo(ctx context.Context, red, blue *graph.Graph, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	pairHash := cache.Hash(append(graphio.CanonicalBytes(red), graphio.CanonicalBytes(blue)...))
	key := r.Keyer.RenderKey(pairHash, cache.RenderKeyOpts{Format: opts.Format, Colored: true})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	emb, _, err := r.SefeWithCacheInfo(ctx, red, blue)
	if err != nil {
		return nil, false, err
	}
	data, err := renderDOT(dot.SefeToDOT(emb, dotOptions(opts)), opts.Format)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, data, cache.TTLRender)
	return data, false, nil
}

// RenderSefe is a convenience wrapper that calls RenderSefeWithCacheInfo
// and discards the cache hit info.
func (r *Runner) RenderSefe(ctx context.Context, red, blue *graph.Graph, opts RenderOptions) ([]byte, error) {
	data, _, err := r.RenderSefeWithCacheInfo(ctx, red, blue, opts)
	return data, err
}

func dotOptions(opts RenderOptions) dot.Options {
	return dot.Options{Name: opts.Name, ShowOrder: opts.ShowOrder}
}

func renderDOT(src string, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(src), nil
	case FormatSVG:
		data, err := dot.RenderSVG(src)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return data, nil
	case FormatPNG:
		data, err := dot.RenderPNG(src)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
		}
		return data, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown render format %q", format)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
