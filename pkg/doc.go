// Package pkg provides the core libraries for Planarkit.
//
// # Overview
//
// Planarkit tests graphs for planarity, computes combinatorial embeddings,
// and solves simultaneous embedding with fixed edges (SEFE) for graph pairs.
// The pkg directory is organized into four main areas:
//
//  1. [graph] - Graph structures ([graph.Graph], [graph.SubGraph])
//  2. Algorithms - [bicomp], [planar], [sefe]
//  3. I/O and rendering - [graphio], [render/dot]
//  4. Infrastructure - [pipeline], [cache], [errors], [buildinfo]
//
// # Architecture
//
// The typical data flow through Planarkit:
//
//	Graph file (text or JSON)
//	         ↓
//	    [graphio] package (parse + validate)
//	         ↓
//	    [bicomp] package (biconnected decomposition)
//	         ↓
//	    [planar] / [sefe] packages (embed or reject)
//	         ↓
//	    [render/dot] package (Graphviz output)
//	         ↓
//	    JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Test planarity and compute an embedding:
//
//	import (
//	    "github.com/planarkit/planarkit/pkg/graph"
//	    "github.com/planarkit/planarkit/pkg/planar"
//	)
//
//	g := graph.New(4)
//	g.Connect(0, 1)
//	g.Connect(1, 2)
//	g.Connect(2, 0)
//	g.Connect(2, 3)
//
//	emb, err := planar.Embed(g)
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeNotPlanar) distinguishes a
//	    // non-planar verdict from a malformed input.
//	}
//	faces := emb.Faces()
//
// # Main Packages
//
// ## Graph Structures
//
// [graph] - Undirected simple graphs on a fixed vertex set, with
// insertion-ordered adjacency. The adjacency order doubles as the rotation
// system of an embedding. [graph.SubGraph] maps a local graph into a parent.
//
// ## Algorithms
//
// [bicomp] - Biconnected decomposition via the classic DFS lowpoint
// algorithm. Yields components and cut vertices.
//
// [planar] - Planarity testing and embedding via cycle-and-segment
// recursion. A graph is embedded component by component; interlacement
// between segments decides which side of the cycle each one takes.
//
// [sefe] - Simultaneous embedding with fixed edges for graph pairs whose
// shared edges form one biconnected subgraph. Produces a bicolored rotation
// system whose red and blue projections are planar.
//
// ## I/O and Rendering
//
// [graphio] - Text and JSON graph formats, adjacency JSON for embeddings,
// colored JSON for simultaneous embeddings, and canonical bytes for hashing.
//
// [render/dot] - Graphviz DOT generation and SVG/PNG rasterization for
// embeddings and simultaneous embeddings.
//
// ## Infrastructure
//
// [pipeline] - The embed and render pipeline used by CLI and server.
// Wraps the algorithms with caching and logging so all entry points behave
// identically.
//
// [cache] - Result caching with file, Redis, MongoDB, and null backends,
// plus content hashing and cache keys.
//
// [errors] - Coded errors that separate user-facing messages from wrapped
// causes. Verdict codes (not planar, no simultaneous embedding) let callers
// distinguish outcomes from failures.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/planar/...     # Specific package
//
// [graph]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/graph
// [bicomp]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/bicomp
// [planar]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/planar
// [sefe]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/sefe
// [graphio]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/graphio
// [render/dot]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/planarkit/planarkit/pkg/buildinfo
package pkg
