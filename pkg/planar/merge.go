package planar

import (
	"slices"

	"github.com/planarkit/planarkit/pkg/graph"
)

// segmentExtents holds, per segment, the minimum and maximum attachment
// position on the cycle. Attachment local indices equal cycle positions.
type segmentExtents struct {
	min []int
	max []int
}

func computeExtents(segments []*Segment) segmentExtents {
	e := segmentExtents{min: make([]int, len(segments)), max: make([]int, len(segments))}
	for i, segment := range segments {
		min := segment.Sub().VertexCount()
		max := 0
		for _, a := range segment.Attachments() {
			if a < min {
				min = a
			}
			if a > max {
				max = a
			}
		}
		e.min[i] = min
		e.max[i] = max
	}
	return e
}

// compatibility reports, per segment, whether its embedding's handedness
// agrees with the cycle's clockwise orientation. It inspects the embedding
// at one attachment a: the embedding is compatible iff the neighbor
// following next(a) in the cyclic order around a is not prev(a).
func compatibility(cycle *Cycle, segments []*Segment, embeddings []*graph.Graph) []bool {
	compatible := make([]bool, len(segments))
	for i, segment := range segments {
		a := segment.Attachments()[0]
		componentVertex := segment.ComponentVertex(a)
		next := cycle.Next(componentVertex)
		prev := cycle.Prev(componentVertex)
		neighbors := embeddings[i].Neighbors(a)
		position := -1
		for j, w := range neighbors {
			if segment.ComponentVertex(w) == next {
				position = j
				break
			}
		}
		after := neighbors[(position+1)%len(neighbors)]
		compatible[i] = segment.ComponentVertex(after) != prev
	}
	return compatible
}

// orderAround sorts the segments attached at cycle position p into the
// clockwise order in which they leave the vertex on one side of the cycle.
// Segments whose maximum attachment is p come first, in descending order of
// minimum attachment, then the segment strictly straddling p, then the
// segments whose minimum attachment is p in descending order of maximum
// attachment. Extremum ties are broken by attachment count, placing a
// three-attachment segment inside a two-attachment one, and finally by
// segment index. The comparison is a stable lexicographic order.
func orderAround(p int, attached []int, segments []*Segment, extents segmentExtents) []int {
	var minSegments, maxSegments, middle []int
	for _, i := range attached {
		switch {
		case extents.min[i] == p:
			minSegments = append(minSegments, i)
		case extents.max[i] == p:
			maxSegments = append(maxSegments, i)
		default:
			middle = append(middle, i)
		}
	}
	slices.SortStableFunc(maxSegments, func(a, b int) int {
		if c := extents.min[b] - extents.min[a]; c != 0 {
			return c
		}
		if c := len(segments[b].Attachments()) - len(segments[a].Attachments()); c != 0 {
			return c
		}
		return b - a
	})
	slices.SortStableFunc(minSegments, func(a, b int) int {
		if c := extents.max[b] - extents.max[a]; c != 0 {
			return c
		}
		if c := len(segments[a].Attachments()) - len(segments[b].Attachments()); c != 0 {
			return c
		}
		return a - b
	})
	order := make([]int, 0, len(attached))
	order = append(order, maxSegments...)
	order = append(order, middle...)
	order = append(order, minSegments...)
	return order
}

// mergeSegments weaves the per-segment embeddings into one embedding of the
// component. For every cycle vertex the output order is: the next cycle
// vertex, the middle edges of the inside segments (inside order reversed,
// since inside segments are drawn with opposite handedness), the previous
// cycle vertex, then the middle edges of the outside segments. Outside
// segments use flipped compatibility. Non-cycle vertices copy their
// segment embedding order, forward or reversed per compatibility.
func mergeSegments(comp *graph.SubGraph, cycle *Cycle, segments []*Segment,
	embeddings []*graph.Graph, parts []int) *graph.Graph {

	extents := computeExtents(segments)
	compatible := compatibility(cycle, segments, embeddings)
	effective := func(i int) bool {
		if parts[i] == 1 {
			return !compatible[i]
		}
		return compatible[i]
	}
	adj := make([][]int, comp.VertexCount())

	for p := range cycle.Len() {
		var inside, outside []int
		for i, segment := range segments {
			if segment.IsAttachment(p) {
				if parts[i] == 0 {
					inside = append(inside, i)
				} else {
					outside = append(outside, i)
				}
			}
		}
		v := cycle.At(p)
		insideOrder := orderAround(p, inside, segments, extents)
		slices.Reverse(insideOrder)
		outsideOrder := orderAround(p, outside, segments, extents)

		adj[v] = append(adj[v], cycle.Next(v))
		for _, i := range insideOrder {
			addMiddleEdges(segments[i], embeddings[i], p, cycle, effective(i), adj)
		}
		adj[v] = append(adj[v], cycle.Prev(v))
		for _, i := range outsideOrder {
			addMiddleEdges(segments[i], embeddings[i], p, cycle, effective(i), adj)
		}
	}

	for i, segment := range segments {
		emb := embeddings[i]
		for v := range segment.Sub().VertexCount() {
			if segment.OnCycle(v) {
				continue
			}
			componentVertex := segment.ComponentVertex(v)
			neighbors := emb.Neighbors(v)
			mapped := make([]int, len(neighbors))
			for j, w := range neighbors {
				mapped[j] = segment.ComponentVertex(w)
			}
			if !effective(i) {
				slices.Reverse(mapped)
			}
			adj[componentVertex] = append(adj[componentVertex], mapped...)
		}
	}
	return graph.FromAdjacency(adj)
}

// addMiddleEdges emits, around the cycle vertex at position p, the segment
// edges that are not cycle edges. The scan through the embedding's neighbor
// order starts just after the first occurrence of the previous or next
// cycle vertex, so the collected middle neighbors appear in the rotation
// the sub-embedding chose; compatibility decides whether that rotation is
// used forward or reversed.
func addMiddleEdges(segment *Segment, emb *graph.Graph, p int, cycle *Cycle,
	compatible bool, adj [][]int) {

	v := cycle.At(p)
	prev := cycle.Prev(v)
	next := cycle.Next(v)
	neighbors := emb.Neighbors(p)
	start := -1
	for j, w := range neighbors {
		componentNeighbor := segment.ComponentVertex(w)
		if componentNeighbor == prev || componentNeighbor == next {
			start = j
			break
		}
	}
	var middle []int
	for j := 1; j < len(neighbors); j++ {
		w := neighbors[(start+j)%len(neighbors)]
		componentNeighbor := segment.ComponentVertex(w)
		if componentNeighbor == prev || componentNeighbor == next {
			continue
		}
		middle = append(middle, componentNeighbor)
	}
	if !compatible {
		slices.Reverse(middle)
	}
	adj[v] = append(adj[v], middle...)
}
