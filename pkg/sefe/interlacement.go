package sefe

import "github.com/planarkit/planarkit/pkg/graph"

// Interlacement builds the conflict graph of the segments of a black
// cycle: one node per segment, one edge per pair of segments that cannot
// share a side of the cycle in at least one color projection. Two segments
// conflict iff their red attachments interlace or their blue attachments
// interlace; black and red-and-blue attachments count for both colors. The
// pair is drawable at this level iff the result is bipartite.
func Interlacement(cycle *Cycle, segments []*Segment) *graph.Graph {
	g := graph.New(len(segments))
	red := make([]int, cycle.Graph().VertexCount())
	blue := make([]int, cycle.Graph().VertexCount())
	for i := 0; i < len(segments)-1; i++ {
		redTotal := coloredCycleLabels(cycle, segments[i], Red, red)
		blueTotal := coloredCycleLabels(cycle, segments[i], Blue, blue)
		for j := i + 1; j < len(segments); j++ {
			if interlace(segments[j], Red, red, redTotal) ||
				interlace(segments[j], Blue, blue, blueTotal) {
				g.Connect(i, j)
			}
		}
	}
	return g
}

// coloredCycleLabels walks the cycle once from position 0 and labels every
// cycle vertex relative to the attachments of segment reachable by edges
// of the given plain color: the k-th such attachment encountered gets the
// even label 2k, and every vertex in the gap after it gets the odd label
// 2k+1. Vertices before the first attachment close the circle and share
// the last gap's label. Labels are indexed by parent-graph vertex; the
// count of attachments of the color is returned.
func coloredCycleLabels(cycle *Cycle, segment *Segment, color Color, labels []int) int {
	attached := make([]bool, cycle.Graph().VertexCount())
	total := 0
	for _, a := range segment.Attachments() {
		if segment.AttachmentColor(a).covers(color) {
			attached[segment.ParentVertex(a)] = true
			total++
		}
	}
	found := 0
	for i := range cycle.Len() {
		v := cycle.At(i)
		switch {
		case attached[v]:
			labels[v] = 2 * found
			found++
		case found == 0:
			labels[v] = 2*total - 1
		default:
			labels[v] = 2*found - 1
		}
	}
	return total
}

// interlace runs the circular sliding-window test in one color: the
// attachments of other covering the color do not conflict with the labeled
// segment iff some window of three consecutive labels, advanced two at a
// time, covers all of them. A segment with fewer than two attachments of
// the color can always be separated, so it never conflicts in that color.
func interlace(other *Segment, color Color, labels []int, attachments int) bool {
	if attachments < 2 {
		return false
	}
	size := 2 * attachments
	window := make([]int, size)
	covered := 0
	for _, a := range other.Attachments() {
		if other.AttachmentColor(a).covers(color) {
			window[labels[other.ParentVertex(a)]] = 1
			covered++
		}
	}
	if covered < 2 {
		return false
	}
	sum := 0
	for _, w := range window {
		sum += w
	}
	part := window[0] + window[1] + window[2]
	for k := 0; k <= size-2; k += 2 {
		if part == sum {
			return false
		}
		part += window[(3+k)%size] + window[(4+k)%size]
		part -= window[k] + window[(1+k)%size]
	}
	return true
}
