package graph

import "fmt"

// SubGraph is a graph whose vertices map injectively into the vertices of a
// parent graph. The mapping is a lookup relation, not ownership: the parent
// must outlive the subgraph.
type SubGraph struct {
	*Graph
	parent *Graph
	orig   []int
}

// NewSub creates a subgraph with n local vertices over the given parent.
// Every local vertex starts unmapped; builders assign originals with
// SetOriginal before the subgraph is handed out.
func NewSub(n int, parent *Graph) *SubGraph {
	orig := make([]int, n)
	for i := range orig {
		orig[i] = -1
	}
	return &SubGraph{Graph: New(n), parent: parent, orig: orig}
}

// Parent returns the graph this subgraph maps into.
func (s *SubGraph) Parent() *Graph {
	return s.parent
}

// SetOriginal records that local vertex v corresponds to parent vertex p.
func (s *SubGraph) SetOriginal(v, p int) {
	s.orig[v] = p
}

// Original resolves local vertex v to its parent vertex. Reading a mapping
// that was never written is a bug in the decomposition and surfaces as
// ErrUnmappedVertex.
func (s *SubGraph) Original(v int) (int, error) {
	p := s.orig[v]
	if p == -1 {
		return 0, fmt.Errorf("local vertex %d: %w", v, ErrUnmappedVertex)
	}
	return p, nil
}

// MustOriginal resolves local vertex v to its parent vertex and panics when
// the mapping is absent. The recursion uses it where the mapping is
// guaranteed by construction.
func (s *SubGraph) MustOriginal(v int) int {
	p, err := s.Original(v)
	if err != nil {
		panic(err)
	}
	return p
}
