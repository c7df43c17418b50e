// Package graph provides the undirected graph model shared by the planarity
// and SEFE algorithms.
//
// A Graph is a fixed-size set of vertices 0..n-1 with an ordered adjacency
// list per vertex. The order in which edges are inserted is preserved: in a
// plain graph it carries no meaning, in an embedding it is the cyclic order
// of incident edges around the vertex. The same structure serves both roles.
//
// A SubGraph is a Graph plus an injection from its local vertices into the
// vertices of a parent graph. Biconnected components and segments are
// represented as subgraphs so that vertex identity survives the recursive
// decomposition.
package graph

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors returned by graph operations.
var (
	// ErrSelfLoop is returned when an edge would connect a vertex to itself.
	ErrSelfLoop = errors.New("self-loop edge")

	// ErrDuplicateEdge is returned when the edge is already present.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrVertexRange is returned when a vertex index is outside 0..n-1.
	ErrVertexRange = errors.New("vertex index out of range")

	// ErrSizeMismatch is returned when an operation requires two graphs on
	// the same vertex set but their sizes differ.
	ErrSizeMismatch = errors.New("graphs have different vertex counts")

	// ErrUnmappedVertex is returned when a subgraph vertex is resolved to
	// its original before the mapping has been set.
	ErrUnmappedVertex = errors.New("subgraph vertex has no original mapping")
)

// Graph is an undirected simple graph on vertices 0..n-1 with ordered
// adjacency lists.
type Graph struct {
	adj   [][]int
	edges int
}

// New creates a graph with n vertices and no edges.
func New(n int) *Graph {
	return &Graph{adj: make([][]int, n)}
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Neighbors returns the neighbors of v in insertion order. The returned
// slice is owned by the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// HasEdge reports whether the edge (u, v) is present. It scans the shorter
// of the two adjacency lists.
func (g *Graph) HasEdge(u, v int) bool {
	if len(g.adj[u]) > len(g.adj[v]) {
		u, v = v, u
	}
	return slices.Contains(g.adj[u], v)
}

// AddEdge inserts the undirected edge (u, v), appending each endpoint to the
// other's neighbor list. It rejects self-loops, duplicate edges, and vertex
// indices outside the graph.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return fmt.Errorf("edge (%d, %d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("edge (%d, %d): %w", u, v, ErrSelfLoop)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("edge (%d, %d): %w", u, v, ErrDuplicateEdge)
	}
	g.Connect(u, v)
	return nil
}

// Connect inserts the undirected edge (u, v) without validation. Callers
// must guarantee that the edge keeps the graph simple. The decomposition
// code uses this on edges already known to be valid.
func (g *Graph) Connect(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
}

// IsConnected reports whether every vertex is reachable from vertex 0.
// The empty graph and the single-vertex graph are connected.
func (g *Graph) IsConnected() bool {
	n := len(g.adj)
	if n <= 1 {
		return true
	}
	visited := make([]bool, n)
	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.adj[v] {
			if !visited[w] {
				visited[w] = true
				count++
				queue = append(queue, w)
			}
		}
	}
	return count == n
}

// Intersection returns a new graph on the same vertex set containing exactly
// the edges present in both g and other. It fails when the vertex counts
// differ.
func (g *Graph) Intersection(other *Graph) (*Graph, error) {
	if len(g.adj) != len(other.adj) {
		return nil, fmt.Errorf("intersection of %d and %d vertices: %w",
			len(g.adj), len(other.adj), ErrSizeMismatch)
	}
	out := New(len(g.adj))
	for u := range g.adj {
		for _, v := range g.adj[u] {
			if u < v && other.HasEdge(u, v) {
				out.Connect(u, v)
			}
		}
	}
	return out, nil
}

// Bipartition attempts to 2-color the graph so that every edge joins
// differently colored endpoints. It runs a BFS per connected component and
// returns the per-vertex color assignment {0, 1}, or ok=false at the first
// odd cycle found.
func (g *Graph) Bipartition() (colors []int, ok bool) {
	n := len(g.adj)
	colors = make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	for start := range g.adj {
		if colors[start] != -1 {
			continue
		}
		colors[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range g.adj[v] {
				if colors[w] == -1 {
					colors[w] = 1 - colors[v]
					queue = append(queue, w)
				} else if colors[w] == colors[v] {
					return nil, false
				}
			}
		}
	}
	return colors, true
}

// FromAdjacency wraps pre-built adjacency lists in a Graph, taking ownership
// of the slices. Every undirected edge must appear once in each endpoint's
// list; the edge count is half the total number of entries. The embedder
// uses this to assemble graphs whose neighbor order is chosen arc by arc.
func FromAdjacency(adj [][]int) *Graph {
	arcs := 0
	for _, neighbors := range adj {
		arcs += len(neighbors)
	}
	return &Graph{adj: adj, edges: arcs / 2}
}

// Edges returns every undirected edge once, as (u, v) pairs with u < v, in
// a deterministic order derived from the adjacency lists.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := range g.adj {
		for _, v := range g.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}
