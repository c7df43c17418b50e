package planar

import "github.com/planarkit/planarkit/pkg/graph"

// Segment is a bridge or chord of a cycle, materialized as its own
// biconnected graph: the cycle vertices occupy local indices 0..|C|-1 in
// cycle order, internal bridge vertices follow, and the cycle edges are
// included so the segment can be recursed on directly. Attachments are the
// local vertices at which the segment meets the cycle.
type Segment struct {
	sub          *graph.SubGraph
	comp         *graph.SubGraph
	cycle        *Cycle
	attachments  []int
	isAttachment []bool
}

// Sub returns the segment's graph. Local vertex originals resolve to
// component-local indices.
func (s *Segment) Sub() *graph.SubGraph {
	return s.sub
}

// Cycle returns the cycle this segment was taken around.
func (s *Segment) Cycle() *Cycle {
	return s.cycle
}

// ComponentVertex resolves a segment-local vertex to its component-local
// index.
func (s *Segment) ComponentVertex(v int) int {
	return s.sub.MustOriginal(v)
}

// Attachments returns the segment-local attachment vertices in discovery
// order. Every local attachment index is below the cycle length and equals
// the vertex's cycle position.
func (s *Segment) Attachments() []int {
	return s.attachments
}

// IsAttachment reports whether segment-local vertex v is an attachment.
func (s *Segment) IsAttachment(v int) bool {
	return s.isAttachment[v]
}

// OnCycle reports whether segment-local vertex v is a cycle vertex.
func (s *Segment) OnCycle(v int) bool {
	return v < s.cycle.Len()
}

// IsPath reports whether the segment is a simple path between two
// attachments, i.e. every non-attachment vertex has degree at most two.
func (s *Segment) IsPath() bool {
	for v := range s.sub.VertexCount() {
		if s.isAttachment[v] {
			continue
		}
		if s.sub.Degree(v) > 2 {
			return false
		}
	}
	return true
}

// PathBetweenAttachments runs a BFS from one attachment to another, never
// crossing an edge whose endpoints both lie on the cycle, and returns the
// segment-local path including both endpoints.
func (s *Segment) PathBetweenAttachments(start, end int) []int {
	prev := make([]int, s.sub.VertexCount())
	for i := range prev {
		prev[i] = -1
	}
	queue := []int{start}
	for len(queue) > 0 && prev[end] == -1 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range s.sub.Neighbors(v) {
			if s.OnCycle(v) && s.OnCycle(w) {
				continue
			}
			if prev[w] == -1 {
				prev[w] = v
				queue = append(queue, w)
				if w == end {
					break
				}
			}
		}
	}
	var path []int
	for crawl := end; crawl != start; crawl = prev[crawl] {
		path = append(path, crawl)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *Segment) addAttachment(v int) {
	if s.isAttachment[v] {
		return
	}
	s.isAttachment[v] = true
	s.attachments = append(s.attachments, v)
}

// SegmentsOf enumerates the segments of cycle inside its component: one
// bridge per connected component of the graph minus the cycle vertices,
// plus one chord segment per non-cycle edge joining two cycle vertices.
func SegmentsOf(comp *graph.SubGraph, cycle *Cycle) []*Segment {
	f := &segmentFinder{comp: comp, cycle: cycle}
	f.findBridges()
	f.findChords()
	return f.segments
}

type segmentFinder struct {
	comp     *graph.SubGraph
	cycle    *Cycle
	segments []*Segment
}

func (f *segmentFinder) findBridges() {
	n := f.comp.VertexCount()
	visited := make([]bool, n)
	for v := range n {
		if f.cycle.Contains(v) {
			visited[v] = true
		}
	}
	for v := range n {
		if visited[v] {
			continue
		}
		var nodes []int
		var edges [][2]int
		f.dfsCollect(v, visited, &nodes, &edges)
		f.segments = append(f.segments, f.buildBridge(nodes, edges))
	}
}

// dfsCollect gathers the vertices of one bridge and all its edges. Edges
// landing on the cycle are always recorded; internal edges once, from the
// lower-indexed endpoint.
func (f *segmentFinder) dfsCollect(v int, visited []bool, nodes *[]int, edges *[][2]int) {
	*nodes = append(*nodes, v)
	visited[v] = true
	for _, w := range f.comp.Neighbors(v) {
		if f.cycle.Contains(w) {
			*edges = append(*edges, [2]int{v, w})
			continue
		}
		if v < w {
			*edges = append(*edges, [2]int{v, w})
		}
		if !visited[w] {
			f.dfsCollect(w, visited, nodes, edges)
		}
	}
}

func (f *segmentFinder) findChords() {
	for i := range f.cycle.Len() {
		v := f.cycle.At(i)
		for _, w := range f.comp.Neighbors(v) {
			if v < w {
				continue
			}
			if f.cycle.Contains(w) && w != f.cycle.Prev(v) && w != f.cycle.Next(v) {
				f.segments = append(f.segments, f.buildChord(v, w))
			}
		}
	}
}

// newSegment creates a segment skeleton whose first |C| local vertices are
// the cycle vertices in cycle order.
func (f *segmentFinder) newSegment(n int) *Segment {
	s := &Segment{
		sub:          graph.NewSub(n, f.comp.Graph),
		comp:         f.comp,
		cycle:        f.cycle,
		isAttachment: make([]bool, n),
	}
	for i := range f.cycle.Len() {
		s.sub.SetOriginal(i, f.cycle.At(i))
	}
	return s
}

func (f *segmentFinder) buildBridge(nodes []int, edges [][2]int) *Segment {
	k := f.cycle.Len()
	s := f.newSegment(k + len(nodes))
	toLocal := make([]int, f.comp.VertexCount())
	for i := range k {
		toLocal[f.cycle.At(i)] = i
	}
	for i, v := range nodes {
		toLocal[v] = k + i
		s.sub.SetOriginal(k+i, v)
	}
	for _, e := range edges {
		from, to := toLocal[e[0]], toLocal[e[1]]
		s.sub.Connect(from, to)
		if f.cycle.Contains(e[0]) {
			s.addAttachment(from)
		}
		if f.cycle.Contains(e[1]) {
			s.addAttachment(to)
		}
	}
	f.addCycleEdges(s)
	return s
}

func (f *segmentFinder) buildChord(a, b int) *Segment {
	k := f.cycle.Len()
	s := f.newSegment(k)
	f.addCycleEdges(s)
	posA, _ := f.cycle.PositionOf(a)
	posB, _ := f.cycle.PositionOf(b)
	s.sub.Connect(posA, posB)
	s.addAttachment(posA)
	s.addAttachment(posB)
	return s
}

func (f *segmentFinder) addCycleEdges(s *Segment) {
	k := f.cycle.Len()
	for i := range k - 1 {
		s.sub.Connect(i, i+1)
	}
	s.sub.Connect(0, k-1)
}
