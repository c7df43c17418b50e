package planar

import "github.com/planarkit/planarkit/pkg/graph"

// Interlacement builds the conflict graph of the segments of a cycle: one
// node per segment, one edge per pair of segments that cannot be drawn on
// the same side of the cycle without a crossing. The component is planar at
// this level iff the result is bipartite.
func Interlacement(cycle *Cycle, segments []*Segment) *graph.Graph {
	g := graph.New(len(segments))
	labels := make([]int, cycle.ComponentSize())
	for i := 0; i < len(segments)-1; i++ {
		cycleLabels(cycle, segments[i], labels)
		total := len(segments[i].Attachments())
		for j := i + 1; j < len(segments); j++ {
			if interlace(cycle, segments[j], labels, total) {
				g.Connect(i, j)
			}
		}
	}
	return g
}

// cycleLabels walks the cycle once from position 0 and labels every cycle
// vertex relative to the attachments of segment: the k-th attachment
// encountered gets the even label 2k, and every vertex in the gap after it
// gets the odd label 2k+1. Vertices before the first attachment close the
// circle and share the last gap's label. Labels are indexed by
// component-local vertex.
func cycleLabels(cycle *Cycle, segment *Segment, labels []int) {
	attached := make([]bool, cycle.ComponentSize())
	for _, a := range segment.Attachments() {
		attached[segment.ComponentVertex(a)] = true
	}
	total := len(segment.Attachments())
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
}

// interlace runs the circular sliding-window test: the attachments of other
// do not conflict with the labeled segment iff some window of three
// consecutive labels, advanced two at a time, covers all of other's
// attachment labels.
func interlace(cycle *Cycle, other *Segment, labels []int, attachments int) bool {
	size := 2 * attachments
	window := make([]int, size)
	for _, a := range other.Attachments() {
		window[labels[other.ComponentVertex(a)]] = 1
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
