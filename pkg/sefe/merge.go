package sefe

import "slices"

// segmentExtents holds, per segment, the minimum and maximum attachment
// position on the cycle, overall and per color. Attachment local indices
// equal cycle positions. A segment without attachments of a color inherits
// the overall extents for it, so that color never distinguishes it.
type segmentExtents struct {
	min, max         []int
	redMin, redMax   []int
	blueMin, blueMax []int
}

func computeExtents(segments []*Segment) segmentExtents {
	n := len(segments)
	e := segmentExtents{
		min: make([]int, n), max: make([]int, n),
		redMin: make([]int, n), redMax: make([]int, n),
		blueMin: make([]int, n), blueMax: make([]int, n),
	}
	for i, segment := range segments {
		min, max := segment.Sub().VertexCount(), 0
		redMin, redMax := -1, -1
		blueMin, blueMax := -1, -1
		for _, a := range segment.Attachments() {
			if a < min {
				min = a
			}
			if a > max {
				max = a
			}
			color := segment.AttachmentColor(a)
			if color.covers(Red) {
				if redMin == -1 || a < redMin {
					redMin = a
				}
				if a > redMax {
					redMax = a
				}
			}
			if color.covers(Blue) {
				if blueMin == -1 || a < blueMin {
					blueMin = a
				}
				if a > blueMax {
					blueMax = a
				}
			}
		}
		if redMin == -1 {
			redMin, redMax = min, max
		}
		if blueMin == -1 {
			blueMin, blueMax = min, max
		}
		e.min[i], e.max[i] = min, max
		e.redMin[i], e.redMax[i] = redMin, redMax
		e.blueMin[i], e.blueMax[i] = blueMin, blueMax
	}
	return e
}

// compatibility reports, per segment, whether its embedding's handedness
// agrees with the cycle's clockwise orientation. It inspects the embedding
// at one attachment a: the embedding is compatible iff the arc following
// next(a) in the cyclic order around a does not lead to prev(a).
func compatibility(cycle *Cycle, segments []*Segment, embeddings []*Bicolored) []bool {
	compatible := make([]bool, len(segments))
	for i, segment := range segments {
		a := segment.Attachments()[0]
		parentVertex := segment.ParentVertex(a)
		next := cycle.Next(parentVertex)
		prev := cycle.Prev(parentVertex)
		arcs := embeddings[i].Arcs(a)
		position := -1
		for j, arc := range arcs {
			if segment.ParentVertex(arc.To) == next {
				position = j
				break
			}
		}
		after := arcs[(position+1)%len(arcs)]
		compatible[i] = segment.ParentVertex(after.To) != prev
	}
	return compatible
}

// orderAround sorts the segments attached at cycle position p into the
// clockwise order in which they leave the vertex on one side of the cycle.
// Segments whose maximum attachment is p come first, then the segment
// strictly straddling p, then the segments whose minimum attachment is p.
// Within each group segments are compared by their red extents first, blue
// extents second, in descending order of the opposite extremum, and
// finally by segment index with the sign flipped between the two groups.
func orderAround(p int, attached []int, extents segmentExtents) []int {
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
		if c := extents.redMin[b] - extents.redMin[a]; c != 0 {
			return c
		}
		if c := extents.blueMin[b] - extents.blueMin[a]; c != 0 {
			return c
		}
		return b - a
	})
	slices.SortStableFunc(minSegments, func(a, b int) int {
		if c := extents.redMax[b] - extents.redMax[a]; c != 0 {
			return c
		}
		if c := extents.blueMax[b] - extents.blueMax[a]; c != 0 {
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

// mergeSegments weaves the per-segment bicolored embeddings into one
// embedding of the graph. For every cycle vertex the output order is: the
// next cycle vertex, the middle arcs of the inside segments (inside order
// reversed, since inside segments are drawn with opposite handedness), the
// previous cycle vertex, then the middle arcs of the outside segments.
// Outside segments use flipped compatibility. Non-cycle vertices copy
// their segment embedding order, forward or reversed per compatibility.
// Every emitted arc keeps its color, black for the cycle arcs.
func mergeSegments(b *Bicolored, cycle *Cycle, segments []*Segment,
	embeddings []*Bicolored, parts []int) *Bicolored {

	extents := computeExtents(segments)
	compatible := compatibility(cycle, segments, embeddings)
	effective := func(i int) bool {
		if parts[i] == 1 {
			return !compatible[i]
		}
		return compatible[i]
	}
	adj := make([][]Arc, b.VertexCount())

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
		insideOrder := orderAround(p, inside, extents)
		slices.Reverse(insideOrder)
		outsideOrder := orderAround(p, outside, extents)

		adj[v] = append(adj[v], Arc{To: cycle.Next(v), Color: Black})
		for _, i := range insideOrder {
			addMiddleArcs(segments[i], embeddings[i], p, cycle, effective(i), adj)
		}
		adj[v] = append(adj[v], Arc{To: cycle.Prev(v), Color: Black})
		for _, i := range outsideOrder {
			addMiddleArcs(segments[i], embeddings[i], p, cycle, effective(i), adj)
		}
	}

	for i, segment := range segments {
		emb := embeddings[i]
		for v := range segment.Sub().VertexCount() {
			if segment.OnCycle(v) {
				continue
			}
			parentVertex := segment.ParentVertex(v)
			arcs := emb.Arcs(v)
			mapped := make([]Arc, len(arcs))
			for j, arc := range arcs {
				mapped[j] = Arc{To: segment.ParentVertex(arc.To), Color: arc.Color}
			}
			if !effective(i) {
				slices.Reverse(mapped)
			}
			adj[parentVertex] = append(adj[parentVertex], mapped...)
		}
	}
	return fromArcs(adj)
}

// addMiddleArcs emits, around the cycle vertex at position p, the segment
// arcs that are not cycle arcs. The scan through the embedding's arc order
// starts just after the first occurrence of the previous or next cycle
// vertex, so the collected middle arcs appear in the rotation the
// sub-embedding chose; compatibility decides whether that rotation is used
// forward or reversed.
func addMiddleArcs(segment *Segment, emb *Bicolored, p int, cycle *Cycle,
	compatible bool, adj [][]Arc) {

	v := cycle.At(p)
	prev := cycle.Prev(v)
	next := cycle.Next(v)
	arcs := emb.Arcs(p)
	start := -1
	for j, arc := range arcs {
		parentNeighbor := segment.ParentVertex(arc.To)
		if parentNeighbor == prev || parentNeighbor == next {
			start = j
			break
		}
	}
	var middle []Arc
	for j := 1; j < len(arcs); j++ {
		arc := arcs[(start+j)%len(arcs)]
		parentNeighbor := segment.ParentVertex(arc.To)
		if parentNeighbor == prev || parentNeighbor == next {
			continue
		}
		middle = append(middle, Arc{To: parentNeighbor, Color: arc.Color})
	}
	if !compatible {
		slices.Reverse(middle)
	}
	adj[v] = append(adj[v], middle...)
}
