// Package planar implements the Auslander-Parter planarity tester and
// embedder.
//
// The algorithm decomposes a graph into biconnected components and, inside
// each component, recurses over a cycle, the segments (bridges and chords)
// of that cycle, and the interlacement graph of those segments. A component
// is planar iff the interlacement graph is bipartite at every recursion
// level; the bipartition names which segments are drawn inside and outside
// the cycle, and the per-segment embeddings are merged into a single cyclic
// neighbor order per vertex.
package planar

import "github.com/planarkit/planarkit/pkg/graph"

// Cycle is an oriented simple cycle inside a biconnected component,
// represented by component-local vertex indices in cycle order. The
// orientation defines inside and outside. Position lookups are constant
// time through an index map with -1 marking vertices off the cycle.
type Cycle struct {
	comp  *graph.SubGraph
	nodes []int
	pos   []int
}

// NewCycle finds an initial simple cycle in a biconnected component with at
// least three vertices. A DFS from vertex 0 records visited vertices until
// it meets a back edge; the prefix before the repeated vertex is stripped.
// The embedder may later enlarge the cycle with RotateWithPath.
func NewCycle(comp *graph.SubGraph) *Cycle {
	n := comp.VertexCount()
	c := &Cycle{comp: comp, pos: make([]int, n)}
	visited := make([]bool, n)
	c.dfsBuild(0, visited, -1)
	c.stripPrefix()
	c.reindex()
	return c
}

func (c *Cycle) dfsBuild(v int, visited []bool, prev int) {
	c.nodes = append(c.nodes, v)
	visited[v] = true
	for _, w := range c.comp.Neighbors(v) {
		if w == prev {
			continue
		}
		if !visited[w] {
			c.dfsBuild(w, visited, v)
			break
		}
		// Back edge: w closes the cycle and appears twice in the list.
		c.nodes = append(c.nodes, w)
		return
	}
}

// stripPrefix drops the leading vertices that do not participate in the
// cycle. The closing vertex is present twice: once somewhere in the prefix
// and once at the end.
func (c *Cycle) stripPrefix() {
	closing := c.nodes[len(c.nodes)-1]
	kept := c.nodes[:0:0]
	found := false
	for _, v := range c.nodes {
		if found {
			kept = append(kept, v)
		} else if v == closing {
			found = true
		}
	}
	c.nodes = kept
}

func (c *Cycle) reindex() {
	for i := range c.pos {
		c.pos[i] = -1
	}
	for i, v := range c.nodes {
		c.pos[v] = i
	}
}

// Component returns the biconnected component the cycle lives in.
func (c *Cycle) Component() *graph.SubGraph {
	return c.comp
}

// ComponentSize returns the vertex count of the underlying component.
func (c *Cycle) ComponentSize() int {
	return c.comp.VertexCount()
}

// Len returns the number of vertices on the cycle.
func (c *Cycle) Len() int {
	return len(c.nodes)
}

// At returns the vertex at the given cycle position.
func (c *Cycle) At(position int) int {
	return c.nodes[position]
}

// Contains reports whether v lies on the cycle.
func (c *Cycle) Contains(v int) bool {
	return c.pos[v] != -1
}

// PositionOf returns the cycle position of v, or ok=false when v is not on
// the cycle.
func (c *Cycle) PositionOf(v int) (int, bool) {
	p := c.pos[v]
	if p == -1 {
		return 0, false
	}
	return p, true
}

// Prev returns the vertex preceding v on the cycle. v must be on the cycle.
func (c *Cycle) Prev(v int) int {
	p := c.pos[v]
	if p == 0 {
		return c.nodes[len(c.nodes)-1]
	}
	return c.nodes[p-1]
}

// Next returns the vertex following v on the cycle. v must be on the cycle.
func (c *Cycle) Next(v int) int {
	p := c.pos[v]
	if p == len(c.nodes)-1 {
		return c.nodes[0]
	}
	return c.nodes[p+1]
}

// Reverse flips the cycle's orientation in place.
func (c *Cycle) Reverse() {
	for i, j := 0, len(c.nodes)-1; i < j; i, j = i+1, j-1 {
		c.nodes[i], c.nodes[j] = c.nodes[j], c.nodes[i]
	}
	c.reindex()
}

// RotateWithPath replaces one of the two cycle arcs between the endpoints
// of path with the path itself. Both endpoints must lie on the cycle; the
// path becomes a contiguous arc of the new cycle and the kept arc retains
// its orientation, so substituting a sub-arc of the cycle leaves the cycle
// unchanged. When include is a vertex (>= 0) it is guaranteed to survive
// the substitution: if it lies on the replaced arc the cycle is reversed
// first, which swaps the kept arc.
func (c *Cycle) RotateWithPath(path []int, include int) {
	rotated := make([]int, len(path), len(c.nodes)+len(path))
	copy(rotated, path)
	first := path[0]
	last := path[len(path)-1]
	i := (c.pos[last] + 1) % len(c.nodes)
	found := include < 0 || include == first || include == last
	for c.nodes[i] != first {
		rotated = append(rotated, c.nodes[i])
		if c.nodes[i] == include {
			found = true
		}
		i = (i + 1) % len(c.nodes)
	}
	if !found {
		c.Reverse()
		c.RotateWithPath(path, include)
		return
	}
	c.nodes = rotated
	c.reindex()
}
