package sefe

// Segment is a bridge or chord of a black cycle, materialized as its own
// bicolored graph: the cycle vertices occupy local indices 0..|C|-1 in
// cycle order, internal bridge vertices follow, and the black cycle edges
// are included so the segment can be recursed on directly. Attachments are
// the local cycle vertices at which segment edges meet the cycle; each
// attachment carries the color of the edges reaching it.
type Segment struct {
	sub         *Bicolored
	parent      *Bicolored
	cycle       *Cycle
	orig        []int
	attachments []int
	attachColor []Color
}

// Sub returns the segment's bicolored graph.
func (s *Segment) Sub() *Bicolored {
	return s.sub
}

// Cycle returns the cycle this segment was taken around.
func (s *Segment) Cycle() *Cycle {
	return s.cycle
}

// ParentVertex resolves a segment-local vertex to its index in the parent
// graph.
func (s *Segment) ParentVertex(v int) int {
	return s.orig[v]
}

// Attachments returns the segment-local attachment vertices in discovery
// order. Every local attachment index is below the cycle length and equals
// the vertex's cycle position.
func (s *Segment) Attachments() []int {
	return s.attachments
}

// AttachmentColor returns the merged color of attachment v: the plain
// color when only one color reaches it, RedAndBlue when both do, Black
// when any black edge does, and None when v is not an attachment.
func (s *Segment) AttachmentColor(v int) Color {
	return s.attachColor[v]
}

// IsAttachment reports whether segment-local vertex v is an attachment.
func (s *Segment) IsAttachment(v int) bool {
	return s.attachColor[v] != None
}

// OnCycle reports whether segment-local vertex v is a cycle vertex.
func (s *Segment) OnCycle(v int) bool {
	return v < s.cycle.Len()
}

// IsBlackPath reports whether the segment's black edges form a simple path
// between two attachments. Attachments may carry up to three black edges,
// two from the cycle and one from the path; every other vertex at most
// two.
func (s *Segment) IsBlackPath() bool {
	for v := range s.sub.VertexCount() {
		limit := 2
		if s.IsAttachment(v) {
			limit = 3
		}
		if s.sub.BlackDegree(v) > limit {
			return false
		}
	}
	return true
}

// BlackPathBetweenAttachments runs a BFS from one attachment to another
// using only black edges, never crossing an edge whose endpoints both lie
// on the cycle, and returns the segment-local path including both
// endpoints.
func (s *Segment) BlackPathBetweenAttachments(start, end int) []int {
	prev := make([]int, s.sub.VertexCount())
	for i := range prev {
		prev[i] = -1
	}
	queue := []int{start}
	for len(queue) > 0 && prev[end] == -1 {
		v := queue[0]
		queue = queue[1:]
		for _, a := range s.sub.Arcs(v) {
			if a.Color != Black {
				continue
			}
			if s.OnCycle(v) && s.OnCycle(a.To) {
				continue
			}
			if prev[a.To] == -1 {
				prev[a.To] = v
				queue = append(queue, a.To)
				if a.To == end {
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

// addAttachment records v as an attachment reached by an edge of the given
// color. Black absorbs everything; red and blue edges reaching the same
// vertex combine to RedAndBlue.
func (s *Segment) addAttachment(v int, color Color) {
	switch current := s.attachColor[v]; {
	case current == None:
		s.attachments = append(s.attachments, v)
		s.attachColor[v] = color
	case current == Black || current == color:
	case color == Black:
		s.attachColor[v] = Black
	default:
		s.attachColor[v] = RedAndBlue
	}
}

// SegmentsOf enumerates the segments of cycle inside its graph: one bridge
// per connected component of the graph minus the cycle vertices, plus one
// chord segment per non-cycle edge joining two cycle vertices. Chords may
// carry any color; bridges may mix colors freely.
func SegmentsOf(b *Bicolored, cycle *Cycle) []*Segment {
	f := &segmentFinder{b: b, cycle: cycle}
	f.findBridges()
	f.findChords()
	return f.segments
}

type segmentFinder struct {
	b        *Bicolored
	cycle    *Cycle
	segments []*Segment
}

func (f *segmentFinder) findBridges() {
	n := f.b.VertexCount()
	visited := make([]bool, n)
	for v := range n {
		if f.cycle.Contains(v) || f.b.Degree(v) == 0 {
			visited[v] = true
		}
	}
	for v := range n {
		if visited[v] {
			continue
		}
		var nodes []int
		var edges []coloredEdge
		f.dfsCollect(v, visited, &nodes, &edges)
		f.segments = append(f.segments, f.buildBridge(nodes, edges))
	}
}

type coloredEdge struct {
	from, to int
	color    Color
}

// dfsCollect gathers the vertices of one bridge and all its edges. Edges
// landing on the cycle are always recorded; internal edges once, from the
// lower-indexed endpoint.
func (f *segmentFinder) dfsCollect(v int, visited []bool, nodes *[]int, edges *[]coloredEdge) {
	*nodes = append(*nodes, v)
	visited[v] = true
	for _, a := range f.b.Arcs(v) {
		if f.cycle.Contains(a.To) {
			*edges = append(*edges, coloredEdge{v, a.To, a.Color})
			continue
		}
		if v < a.To {
			*edges = append(*edges, coloredEdge{v, a.To, a.Color})
		}
		if !visited[a.To] {
			f.dfsCollect(a.To, visited, nodes, edges)
		}
	}
}

func (f *segmentFinder) findChords() {
	for i := range f.cycle.Len() {
		v := f.cycle.At(i)
		for _, a := range f.b.Arcs(v) {
			if v < a.To {
				continue
			}
			if f.cycle.Contains(a.To) && a.To != f.cycle.Prev(v) && a.To != f.cycle.Next(v) {
				f.segments = append(f.segments, f.buildChord(v, a.To, a.Color))
			}
		}
	}
}

// newSegment creates a segment skeleton whose first |C| local vertices are
// the cycle vertices in cycle order.
func (f *segmentFinder) newSegment(n int) *Segment {
	s := &Segment{
		sub:         NewBicolored(n),
		parent:      f.b,
		cycle:       f.cycle,
		orig:        make([]int, n),
		attachColor: make([]Color, n),
	}
	for i := range f.cycle.Len() {
		s.orig[i] = f.cycle.At(i)
	}
	return s
}

func (f *segmentFinder) buildBridge(nodes []int, edges []coloredEdge) *Segment {
	k := f.cycle.Len()
	s := f.newSegment(k + len(nodes))
	toLocal := make([]int, f.b.VertexCount())
	for i := range k {
		toLocal[f.cycle.At(i)] = i
	}
	for i, v := range nodes {
		toLocal[v] = k + i
		s.orig[k+i] = v
	}
	for _, e := range edges {
		from, to := toLocal[e.from], toLocal[e.to]
		s.sub.Connect(from, to, e.color)
		if f.cycle.Contains(e.from) {
			s.addAttachment(from, e.color)
		}
		if f.cycle.Contains(e.to) {
			s.addAttachment(to, e.color)
		}
	}
	f.addCycleEdges(s)
	return s
}

func (f *segmentFinder) buildChord(a, b int, color Color) *Segment {
	k := f.cycle.Len()
	s := f.newSegment(k)
	f.addCycleEdges(s)
	posA, _ := f.cycle.PositionOf(a)
	posB, _ := f.cycle.PositionOf(b)
	s.sub.Connect(posA, posB, color)
	s.addAttachment(posA, color)
	s.addAttachment(posB, color)
	return s
}

func (f *segmentFinder) addCycleEdges(s *Segment) {
	k := f.cycle.Len()
	for i := range k - 1 {
		s.sub.Connect(i, i+1, Black)
	}
	s.sub.Connect(0, k-1, Black)
}
