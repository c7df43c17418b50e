// Package bicomp splits an undirected graph into its biconnected components
// and reports its cut vertices.
//
// The decomposition is a single depth-first traversal maintaining discovery
// ids and low points. Each DFS branch carries its own stack of vertices and
// edges; when a branch closes under a subtree root whose low point does not
// reach above the current vertex, the stacked vertices and edges form one
// biconnected component. Every edge of the input graph ends up in exactly
// one component, and every cut vertex belongs to at least two.
package bicomp

import "github.com/planarkit/planarkit/pkg/graph"

// Decomposition holds the biconnected components of a graph, each as a
// subgraph with a back-map to the original vertices, plus the cut vertices.
type Decomposition struct {
	components  []*graph.SubGraph
	cutVertices []int
	isCut       []bool
}

// Components returns the biconnected components in the order their subtree
// roots closed during DFS. The order is deterministic for a given adjacency
// ordering but is not part of the contract.
func (d *Decomposition) Components() []*graph.SubGraph {
	return d.components
}

// CutVertices returns the cut vertices of the original graph in increasing
// index order.
func (d *Decomposition) CutVertices() []int {
	return d.cutVertices
}

// IsCutVertex reports whether v is a cut vertex of the original graph.
func (d *Decomposition) IsCutVertex(v int) bool {
	return d.isCut[v]
}

// Decompose computes the biconnected components and cut vertices of g.
// An isolated vertex becomes a trivial component of size 1.
func Decompose(g *graph.Graph) *Decomposition {
	n := g.VertexCount()
	dec := &decomposer{
		g:      g,
		id:     make([]int, n),
		low:    make([]int, n),
		parent: make([]int, n),
		isCut:  make([]bool, n),
	}
	for i := range n {
		dec.id[i] = -1
		dec.low[i] = -1
		dec.parent[i] = -1
	}
	for i := range n {
		if dec.id[i] == -1 {
			var nodes []int
			var edges [][2]int
			dec.dfs(i, &nodes, &edges)
		}
	}
	out := &Decomposition{components: dec.components, isCut: dec.isCut}
	for v := range n {
		if dec.isCut[v] {
			out.cutVertices = append(out.cutVertices, v)
		}
	}
	return out
}

type decomposer struct {
	g          *graph.Graph
	id         []int
	low        []int
	parent     []int
	nextID     int
	isCut      []bool
	components []*graph.SubGraph
}

func (d *decomposer) dfs(v int, nodes *[]int, edges *[][2]int) {
	d.id[v] = d.nextID
	d.low[v] = d.nextID
	d.nextID++
	children := 0
	for _, w := range d.g.Neighbors(v) {
		if d.parent[v] == w {
			continue
		}
		if d.id[w] == -1 {
			children++
			d.parent[w] = v
			branchNodes := []int{w}
			branchEdges := [][2]int{{v, w}}
			d.dfs(w, &branchNodes, &branchEdges)
			if d.low[w] < d.low[v] {
				d.low[v] = d.low[w]
			}
			if d.low[w] >= d.id[v] {
				// The branch closes here: its stack plus v is one component.
				branchNodes = append(branchNodes, v)
				d.components = append(d.components, d.buildComponent(branchNodes, branchEdges))
				if d.parent[v] != -1 {
					d.isCut[v] = true
				}
			} else {
				*nodes = append(*nodes, branchNodes...)
				*edges = append(*edges, branchEdges...)
			}
		} else if d.id[w] < d.id[v] {
			// Back edge to an ancestor.
			*edges = append(*edges, [2]int{v, w})
			if d.id[w] < d.low[v] {
				d.low[v] = d.id[w]
			}
		}
	}
	if d.parent[v] == -1 {
		if children >= 2 {
			d.isCut[v] = true
		} else if children == 0 {
			comp := graph.NewSub(1, d.g)
			comp.SetOriginal(0, v)
			d.components = append(d.components, comp)
		}
	}
}

// buildComponent renumbers the stacked vertices 0..k-1 and re-adds the
// stacked edges under the new numbering. Every edge endpoint is guaranteed
// to be in the vertex list.
func (d *decomposer) buildComponent(nodes []int, edges [][2]int) *graph.SubGraph {
	comp := graph.NewSub(len(nodes), d.g)
	oldToNew := make(map[int]int, len(nodes))
	for i, v := range nodes {
		oldToNew[v] = i
		comp.SetOriginal(i, v)
	}
	for _, e := range edges {
		comp.Connect(oldToNew[e[0]], oldToNew[e[1]])
	}
	return comp
}
