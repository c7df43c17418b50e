// Package pipeline runs the embed and render stages with caching.
//
// The CLI and the HTTP server both funnel their work through a Runner, so
// cache keys, serialization and logging behave identically no matter which
// entry point a graph arrives through. Embedding results are cached under
// a content hash of the input's canonical text form; rendered artifacts
// under the same hash plus the render options.
//
// Create a Runner and run a stage:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//	emb, err := runner.Embed(ctx, g)
//	svg, err := runner.Render(ctx, g, pipeline.RenderOptions{Format: "svg"})
//
// The ...WithCacheInfo variants additionally report whether the result
// came out of the cache.
package pipeline

import (
	"github.com/planarkit/planarkit/pkg/errors"
)

// Render output formats accepted by [RenderOptions].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// RenderOptions selects the output format and DOT emission details for the
// render stage.
type RenderOptions struct {
	// Format is the artifact format: "dot", "svg" or "png".
	Format string

	// Name is the DOT graph name. Defaults to "G".
	Name string

	// ShowOrder adds per-vertex cyclic order comments to the DOT output.
	ShowOrder bool
}

// Validate checks that the options name a known format.
func (o RenderOptions) Validate() error {
	switch o.Format {
	case FormatDOT, FormatSVG, FormatPNG:
		return nil
	case "":
		return errors.New(errors.ErrCodeInvalidInput, "render format is required")
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown render format %q, want dot, svg or png", o.Format)
	}
}
