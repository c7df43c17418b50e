package sefe

import (
	"slices"

	"github.com/planarkit/planarkit/pkg/bicomp"
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/observability"
	"github.com/planarkit/planarkit/pkg/planar"
)

// Embedding is a bicolored graph whose per-vertex arc order is the cyclic
// order of incident edges in a simultaneous drawing: the red and blue
// projections are planar embeddings that coincide on the black edges.
type Embedding struct {
	*Bicolored
}

// RedView projects the embedding to the first input graph: black and red
// arcs in embedding order.
func (e *Embedding) RedView() *planar.Embedding {
	return &planar.Embedding{Graph: graph.FromAdjacency(e.project(Red))}
}

// BlueView projects the embedding to the second input graph: black and
// blue arcs in embedding order.
func (e *Embedding) BlueView() *planar.Embedding {
	return &planar.Embedding{Graph: graph.FromAdjacency(e.project(Blue))}
}

// TestSefe reports whether the two graphs admit a simultaneous embedding
// with fixed edges. Preconditions: equal vertex counts and a biconnected
// intersection graph; violations are reported as INVALID_INPUT errors. A
// negative verdict is an expected outcome, not an error.
func TestSefe(red, blue *graph.Graph) (bool, error) {
	b, err := FromGraphs(red, blue)
	if err != nil {
		return false, err
	}
	if err := checkIntersection(b); err != nil {
		return false, err
	}
	_, ok := embedBicolored(b)
	return ok, nil
}

// Embed computes a simultaneous embedding of the bicolored graph, or
// reports that none exists with a NO_SEFE error that callers can test with
// errors.Is. The embedding depends on the insertion order of the input's
// arc lists; for a fixed input the result is deterministic.
func Embed(b *Bicolored) (*Embedding, error) {
	if err := checkIntersection(b); err != nil {
		return nil, err
	}
	emb, ok := embedBicolored(b)
	if !ok {
		return nil, errors.New(errors.ErrCodeNoSefe, "colored interlacement graph is not bipartite")
	}
	return &Embedding{emb}, nil
}

// EmbedGraphs fuses two graphs on the same vertex set and embeds them
// simultaneously.
func EmbedGraphs(red, blue *graph.Graph) (*Embedding, error) {
	b, err := FromGraphs(red, blue)
	if err != nil {
		return nil, err
	}
	return Embed(b)
}

// checkIntersection verifies that the black edges form one biconnected
// subgraph with at least three vertices. Vertices isolated in the
// intersection are allowed; they only carry red and blue edges and end up
// inside bridges.
func checkIntersection(b *Bicolored) error {
	dec := bicomp.Decompose(b.Intersection())
	core := 0
	for _, comp := range dec.Components() {
		if comp.EdgeCount() == 0 {
			continue
		}
		core++
		if comp.VertexCount() < 3 {
			return errors.New(errors.ErrCodeInvalidInput,
				"intersection component with %d vertices has no cycle", comp.VertexCount())
		}
	}
	if core != 1 {
		return errors.New(errors.ErrCodeInvalidInput,
			"intersection graph must be biconnected, found %d edge-bearing components", core)
	}
	return nil
}

// embedBicolored runs the recursion on a bicolored graph whose black edges
// contain a cycle. ok=false means the pair admits no simultaneous
// embedding.
func embedBicolored(b *Bicolored) (*Bicolored, bool) {
	return embedWithCycle(b, NewCycle(b))
}

func embedWithCycle(b *Bicolored, cycle *Cycle) (*Bicolored, bool) {
	segments := SegmentsOf(b, cycle)
	observability.Embedder().OnRecursion(b.VertexCount(), cycle.Len(), len(segments))
	if len(segments) == 0 {
		// The graph is exactly the black cycle.
		return copyArcs(b), true
	}
	if len(segments) == 1 {
		segment := segments[0]
		if segment.IsBlackPath() {
			return embedBlackPath(b, cycle), true
		}
		// The chosen cycle induces a single segment with black interior
		// structure: enlarge it through that structure until it separates
		// the graph into at least two segments or the single segment's
		// black part becomes a path.
		makeCycleGood(cycle, segment)
		observability.Embedder().OnCycleRotation(cycle.Len())
		return embedWithCycle(b, cycle)
	}
	parts, ok := Interlacement(cycle, segments).Bipartition()
	observability.Embedder().OnBipartition(len(segments), ok)
	if !ok {
		return nil, false
	}
	embeddings := make([]*Bicolored, len(segments))
	for i, segment := range segments {
		emb, ok := embedBicolored(segment.Sub())
		if !ok {
			return nil, false
		}
		embeddings[i] = emb
	}
	return mergeSegments(b, cycle, segments, embeddings, parts), true
}

func copyArcs(b *Bicolored) *Bicolored {
	adj := make([][]Arc, b.VertexCount())
	for v := range b.VertexCount() {
		adj[v] = slices.Clone(b.Arcs(v))
	}
	return fromArcs(adj)
}

// makeCycleGood rotates the cycle using a black path through the single
// segment's interior. The first two black attachments along the cycle
// become the path endpoints; the rotation keeps one further attachment on
// the new cycle, preferring a non-black one since only black attachments
// can anchor future rotations.
func makeCycleGood(cycle *Cycle, segment *Segment) {
	var endpoints [2]int
	found := 0
	include := -1
	spareBlack := -1
	for p := range cycle.Len() {
		// Segment-local index p is the cycle vertex at position p.
		switch c := segment.AttachmentColor(p); {
		case c == None:
		case c == Black:
			if found < 2 {
				endpoints[found] = p
				found++
			} else if spareBlack == -1 {
				spareBlack = p
			}
		case include == -1:
			include = p
		}
	}
	if include == -1 {
		include = spareBlack
	}
	path := segment.BlackPathBetweenAttachments(endpoints[0], endpoints[1])
	parentPath := make([]int, len(path))
	for i, v := range path {
		parentPath[i] = segment.ParentVertex(v)
	}
	parentInclude := -1
	if include != -1 {
		parentInclude = segment.ParentVertex(include)
	}
	cycle.RotateWithPath(parentPath, parentInclude)
}

// embedBlackPath handles the base case of a single segment whose black
// edges form a path: the whole segment is drawn on one side of the cycle.
// Vertices off the cycle and cycle vertices of degree two keep their arc
// order; every other cycle vertex is ordered [next on cycle, segment arcs,
// prev on cycle].
func embedBlackPath(b *Bicolored, cycle *Cycle) *Bicolored {
	adj := make([][]Arc, b.VertexCount())
	for v := range b.VertexCount() {
		arcs := b.Arcs(v)
		if !cycle.Contains(v) || len(arcs) == 2 {
			adj[v] = slices.Clone(arcs)
			continue
		}
		next := cycle.Next(v)
		prev := cycle.Prev(v)
		ordered := make([]Arc, 0, len(arcs))
		ordered = append(ordered, Arc{To: next, Color: Black})
		for _, a := range arcs {
			if a.To != next && a.To != prev {
				ordered = append(ordered, a)
			}
		}
		ordered = append(ordered, Arc{To: prev, Color: Black})
		adj[v] = ordered
	}
	return fromArcs(adj)
}
