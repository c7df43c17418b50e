package planar

import (
	"github.com/planarkit/planarkit/pkg/bicomp"
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/observability"
)

// Embedding is a graph with the same vertex and edge set as its input whose
// per-vertex neighbor order is the cyclic order of incident edges in a
// planar drawing.
type Embedding struct {
	*graph.Graph
}

// Embed computes a combinatorial embedding of g, or reports that none
// exists. The input must be simple, undirected and connected; a
// disconnected graph is rejected with an INVALID_INPUT error. Non-planarity
// is an expected outcome and is reported with a NOT_PLANAR error that
// callers can test with errors.Is.
//
// The embedding returned depends on the insertion order of the input's
// adjacency lists; for a fixed input the result is deterministic.
func Embed(g *graph.Graph) (*Embedding, error) {
	if !g.IsConnected() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph must be connected")
	}
	if g.VertexCount() < 4 {
		return &Embedding{copyEdges(g)}, nil
	}
	if g.EdgeCount() > 3*g.VertexCount()-6 {
		return nil, errors.New(errors.ErrCodeNotPlanar,
			"%d edges exceed the planar bound for %d vertices", g.EdgeCount(), g.VertexCount())
	}
	dec := bicomp.Decompose(g)
	embeddings := make([]*graph.Graph, 0, len(dec.Components()))
	for _, comp := range dec.Components() {
		emb, ok := embedComponent(comp)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotPlanar, "interlacement graph is not bipartite")
		}
		embeddings = append(embeddings, emb)
	}
	return &Embedding{mergeComponents(g, dec.Components(), embeddings)}, nil
}

// copyEdges reproduces g edge by edge. With fewer than four vertices any
// neighbor order is a planar embedding.
func copyEdges(g *graph.Graph) *graph.Graph {
	out := graph.New(g.VertexCount())
	for v := range g.VertexCount() {
		for _, w := range g.Neighbors(v) {
			if v < w {
				out.Connect(v, w)
			}
		}
	}
	return out
}

// mergeComponents overlays the per-component embeddings onto the original
// vertex indices. A cut vertex receives the concatenation of its
// per-component orderings; the interleaving between components at a cut
// vertex does not affect planarity.
func mergeComponents(g *graph.Graph, components []*graph.SubGraph, embeddings []*graph.Graph) *graph.Graph {
	adj := make([][]int, g.VertexCount())
	for i, comp := range components {
		emb := embeddings[i]
		for v := range emb.VertexCount() {
			orig := comp.MustOriginal(v)
			for _, w := range emb.Neighbors(v) {
				adj[orig] = append(adj[orig], comp.MustOriginal(w))
			}
		}
	}
	return graph.FromAdjacency(adj)
}

// embedComponent embeds one biconnected component. ok=false means the
// component, and with it the whole graph, is not planar.
func embedComponent(comp *graph.SubGraph) (*graph.Graph, bool) {
	if comp.VertexCount() < 3 {
		// A single vertex or a single edge has no cycle to recurse on.
		return copyEdges(comp.Graph), true
	}
	return embedWithCycle(comp, NewCycle(comp))
}

func embedWithCycle(comp *graph.SubGraph, cycle *Cycle) (*graph.Graph, bool) {
	segments := SegmentsOf(comp, cycle)
	observability.Embedder().OnRecursion(comp.VertexCount(), cycle.Len(), len(segments))
	if len(segments) == 0 {
		// The component is exactly a cycle.
		return copyEdges(comp.Graph), true
	}
	if len(segments) == 1 {
		segment := segments[0]
		if segment.IsPath() {
			return embedPathSegment(comp, cycle), true
		}
		// The chosen cycle induces a single non-path segment: enlarge it
		// until it separates the component into at least two segments or
		// the single segment becomes a path.
		makeCycleGood(cycle, segment)
		observability.Embedder().OnCycleRotation(cycle.Len())
		return embedWithCycle(comp, cycle)
	}
	parts, ok := Interlacement(cycle, segments).Bipartition()
	observability.Embedder().OnBipartition(len(segments), ok)
	if !ok {
		return nil, false
	}
	embeddings := make([]*graph.Graph, len(segments))
	for i, segment := range segments {
		emb, ok := embedComponent(segment.Sub())
		if !ok {
			return nil, false
		}
		embeddings[i] = emb
	}
	return mergeSegments(comp, cycle, segments, embeddings, parts), true
}

// makeCycleGood rotates the cycle using a path through the single segment's
// interior. The first two attachments along the cycle become the path
// endpoints; a third attachment, when present, is passed down so the
// rotation keeps it on the new cycle.
func makeCycleGood(cycle *Cycle, segment *Segment) {
	attachedAt := make([]bool, cycle.Len())
	for _, a := range segment.Attachments() {
		p, _ := cycle.PositionOf(segment.ComponentVertex(a))
		attachedAt[p] = true
	}
	var endpoints [2]int
	found := 0
	include := -1
	for i := range cycle.Len() {
		if !attachedAt[i] {
			continue
		}
		// Segment-local index i is the cycle vertex at position i.
		if found < 2 {
			endpoints[found] = i
			found++
		} else {
			include = i
		}
		if found == 2 && include != -1 {
			break
		}
	}
	path := segment.PathBetweenAttachments(endpoints[0], endpoints[1])
	componentPath := make([]int, len(path))
	for i, v := range path {
		componentPath[i] = segment.ComponentVertex(v)
	}
	componentInclude := -1
	if include != -1 {
		componentInclude = segment.ComponentVertex(include)
	}
	cycle.RotateWithPath(componentPath, componentInclude)
}

// embedPathSegment handles the base case of a component that is a cycle
// plus a single path segment: vertices of degree two keep their adjacency
// order, and each of the two degree-three attachments is ordered
// [next on cycle, path, prev on cycle], placing the path on one side.
func embedPathSegment(comp *graph.SubGraph, cycle *Cycle) *graph.Graph {
	adj := make([][]int, comp.VertexCount())
	for v := range comp.VertexCount() {
		neighbors := comp.Neighbors(v)
		if len(neighbors) == 2 {
			adj[v] = append(adj[v], neighbors[0], neighbors[1])
			continue
		}
		var order [3]int
		for _, w := range neighbors {
			switch {
			case cycle.Next(v) == w:
				order[0] = w
			case cycle.Prev(v) == w:
				order[2] = w
			default:
				order[1] = w
			}
		}
		adj[v] = append(adj[v], order[0], order[1], order[2])
	}
	return graph.FromAdjacency(adj)
}
