package sefe

// Cycle is an oriented simple cycle through black edges of a bicolored
// graph. Red and blue edges never lie on the cycle, so both color
// projections share it. Position lookups are constant time through an
// index map with -1 marking vertices off the cycle.
type Cycle struct {
	b     *Bicolored
	nodes []int
	pos   []int
}

// NewCycle finds an initial simple cycle using only black edges. The DFS
// starts at the first vertex with positive black degree and records
// vertices until a black back edge closes the cycle; the prefix before the
// repeated vertex is stripped. The bicolored embedder may later enlarge
// the cycle with RotateWithPath.
func NewCycle(b *Bicolored) *Cycle {
	n := b.VertexCount()
	c := &Cycle{b: b, pos: make([]int, n)}
	start := 0
	for v := range n {
		if b.BlackDegree(v) > 0 {
			start = v
			break
		}
	}
	visited := make([]bool, n)
	c.dfsBuild(start, visited, -1)
	c.stripPrefix()
	c.reindex()
	return c
}

func (c *Cycle) dfsBuild(v int, visited []bool, prev int) {
	c.nodes = append(c.nodes, v)
	visited[v] = true
	for _, a := range c.b.Arcs(v) {
		if a.Color != Black || a.To == prev {
			continue
		}
		if !visited[a.To] {
			c.dfsBuild(a.To, visited, v)
			break
		}
		// Black back edge: a.To closes the cycle and appears twice.
		c.nodes = append(c.nodes, a.To)
		return
	}
}

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

// Graph returns the bicolored graph the cycle lives in.
func (c *Cycle) Graph() *Bicolored {
	return c.b
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
// of path with the path itself. The path must consist of black edges with
// both endpoints on the cycle. When include is a vertex (>= 0) it is
// guaranteed to survive the substitution: if it lies on the replaced arc
// the cycle is reversed first, which swaps the kept arc.
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
