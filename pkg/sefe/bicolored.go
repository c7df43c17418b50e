// Package sefe decides Simultaneous Embedding with Fixed Edges for a pair
// of graphs on a shared vertex set.
//
// The two inputs are fused into one bicolored graph: an edge present in
// both is BLACK, an edge of only the first input is RED, an edge of only
// the second is BLUE. The black edges form the intersection graph; when it
// is biconnected the Auslander-Parter recursion of the planar package
// applies with cycles restricted to black edges and the interlacement test
// run once per color. The merged result is a bicolored embedding whose red
// and blue projections are planar embeddings agreeing on the black edges.
package sefe

import (
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
)

// Color classifies edges and attachments of a bicolored graph. Edges are
// Red, Blue or Black; attachment vertices additionally use RedAndBlue when
// both plain colors reach them and None as the absent marker.
type Color uint8

const (
	None Color = iota
	Red
	Blue
	Black
	RedAndBlue
)

func (c Color) String() string {
	switch c {
	case None:
		return "none"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Black:
		return "black"
	case RedAndBlue:
		return "red-and-blue"
	}
	return "invalid"
}

// covers reports whether an attachment of color c is reachable by edges of
// the plain color q. Black and RedAndBlue attachments count for both.
func (c Color) covers(q Color) bool {
	return c == q || c == Black || c == RedAndBlue
}

// Arc is one directed half of a colored undirected edge.
type Arc struct {
	To    int
	Color Color
}

// Bicolored is an undirected simple graph whose edges carry a color. Like
// the plain graph, per-vertex arc order is insertion order and doubles as
// the cyclic order in a bicolored embedding.
type Bicolored struct {
	adj      [][]Arc
	blackDeg []int
	edges    int
}

// NewBicolored creates a bicolored graph with n vertices and no edges.
func NewBicolored(n int) *Bicolored {
	return &Bicolored{adj: make([][]Arc, n), blackDeg: make([]int, n)}
}

// FromGraphs fuses two graphs on the same vertex set into a bicolored
// graph. Edges are visited in increasing (u, v) order, so the result is
// deterministic regardless of the inputs' adjacency orderings.
func FromGraphs(red, blue *graph.Graph) (*Bicolored, error) {
	if red.VertexCount() != blue.VertexCount() {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"graphs have %d and %d vertices, want equal", red.VertexCount(), blue.VertexCount())
	}
	b := NewBicolored(red.VertexCount())
	for u := range red.VertexCount() {
		for v := u + 1; v < red.VertexCount(); v++ {
			inRed := red.HasEdge(u, v)
			inBlue := blue.HasEdge(u, v)
			switch {
			case inRed && inBlue:
				b.Connect(u, v, Black)
			case inRed:
				b.Connect(u, v, Red)
			case inBlue:
				b.Connect(u, v, Blue)
			}
		}
	}
	return b, nil
}

// FromArcs builds a bicolored graph from explicit per-vertex arc lists,
// preserving their order. Every arc must point into range and have its
// mirror arc of the same color at the other endpoint. This is the entry
// point for deserialized embeddings, where arc order is the payload.
func FromArcs(adj [][]Arc) (*Bicolored, error) {
	n := len(adj)
	type half struct {
		u, v  int
		color Color
	}
	seen := make(map[half]int)
	for u, list := range adj {
		for _, a := range list {
			if a.To < 0 || a.To >= n {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"vertex %d: arc to %d out of range [0, %d)", u, a.To, n)
			}
			if u == a.To {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"vertex %d: self-loop", u)
			}
			if a.Color != Red && a.Color != Blue && a.Color != Black {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"vertex %d: invalid arc color %d", u, a.Color)
			}
			if u < a.To {
				seen[half{u, a.To, a.Color}]++
			} else {
				seen[half{a.To, u, a.Color}]--
			}
		}
	}
	for h, count := range seen {
		if count != 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"edge (%d, %d) %s is missing its mirror arc", h.u, h.v, h.color)
		}
	}
	return fromArcs(adj), nil
}

// fromArcs wraps pre-built arc lists, taking ownership of the slices. The
// merge step uses this to assemble embeddings arc by arc.
func fromArcs(adj [][]Arc) *Bicolored {
	b := &Bicolored{adj: adj, blackDeg: make([]int, len(adj))}
	arcs := 0
	for v, list := range adj {
		arcs += len(list)
		for _, a := range list {
			if a.Color == Black {
				b.blackDeg[v]++
			}
		}
	}
	b.edges = arcs / 2
	return b
}

// VertexCount returns the number of vertices.
func (b *Bicolored) VertexCount() int {
	return len(b.adj)
}

// EdgeCount returns the number of undirected colored edges.
func (b *Bicolored) EdgeCount() int {
	return b.edges
}

// Degree returns the number of incident edges of any color.
func (b *Bicolored) Degree(v int) int {
	return len(b.adj[v])
}

// BlackDegree returns the number of incident black edges.
func (b *Bicolored) BlackDegree(v int) int {
	return b.blackDeg[v]
}

// Arcs returns the colored arcs leaving v in insertion order. The slice is
// owned by the graph and must not be modified.
func (b *Bicolored) Arcs(v int) []Arc {
	return b.adj[v]
}

// Connect inserts the undirected edge (u, v) with the given color. Callers
// must keep the graph simple.
func (b *Bicolored) Connect(u, v int, color Color) {
	b.adj[u] = append(b.adj[u], Arc{To: v, Color: color})
	b.adj[v] = append(b.adj[v], Arc{To: u, Color: color})
	if color == Black {
		b.blackDeg[u]++
		b.blackDeg[v]++
	}
	b.edges++
}

// Intersection returns the black subgraph on the same vertex set.
func (b *Bicolored) Intersection() *graph.Graph {
	out := graph.New(len(b.adj))
	for u := range b.adj {
		for _, a := range b.adj[u] {
			if a.Color == Black && u < a.To {
				out.Connect(u, a.To)
			}
		}
	}
	return out
}

// project returns the adjacency lists restricted to black edges plus the
// given plain color, preserving arc order.
func (b *Bicolored) project(keep Color) [][]int {
	adj := make([][]int, len(b.adj))
	for v, list := range b.adj {
		for _, a := range list {
			if a.Color == Black || a.Color == keep {
				adj[v] = append(adj[v], a.To)
			}
		}
	}
	return adj
}
