package graph

import (
	"errors"
	"testing"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *Graph {
	t.Helper()
	g := New(n)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddEdgeValidation(t *testing.T) {
	tests := []struct {
		name    string
		setup   [][2]int
		u, v    int
		wantErr error
	}{
		{"self loop", nil, 1, 1, ErrSelfLoop},
		{"duplicate", [][2]int{{0, 1}}, 0, 1, ErrDuplicateEdge},
		{"duplicate reversed", [][2]int{{0, 1}}, 1, 0, ErrDuplicateEdge},
		{"out of range high", nil, 0, 3, ErrVertexRange},
		{"out of range negative", nil, -1, 0, ErrVertexRange},
		{"valid", nil, 0, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, 3, tt.setup)
			err := g.AddEdge(tt.u, tt.v)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEdge(%d, %d) = %v, want %v", tt.u, tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestAddEdgeAppendsBothEndpoints(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {2, 1}})
	if got := g.EdgeCount(); got != 3 {
		t.Fatalf("EdgeCount() = %d, want 3", got)
	}
	wantAdj := [][]int{{1, 2}, {0, 2}, {0, 1}, {}}
	for v, want := range wantAdj {
		got := g.Neighbors(v)
		if len(got) != len(want) {
			t.Fatalf("Neighbors(%d) = %v, want %v", v, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Neighbors(%d)[%d] = %d, want %d", v, i, got[i], want[i])
			}
		}
	}
}

func TestHasEdge(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}})
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Error("HasEdge(0, 1) should hold in both directions")
	}
	if g.HasEdge(0, 3) {
		t.Error("HasEdge(0, 3) should not hold")
	}
}

func TestIsConnected(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"empty", 0, nil, true},
		{"single vertex", 1, nil, true},
		{"path", 3, [][2]int{{0, 1}, {1, 2}}, true},
		{"two components", 4, [][2]int{{0, 1}, {2, 3}}, false},
		{"isolated vertex", 3, [][2]int{{0, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.n, tt.edges)
			if got := g.IsConnected(); got != tt.want {
				t.Errorf("IsConnected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBipartition(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"even cycle", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, true},
		{"odd cycle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, false},
		{"two components one odd", 7, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}, {5, 6}}, false},
		{"edgeless", 3, nil, true},
		{"star", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.n, tt.edges)
			colors, ok := g.Bipartition()
			if ok != tt.want {
				t.Fatalf("Bipartition() ok = %v, want %v", ok, tt.want)
			}
			if !ok {
				return
			}
			if len(colors) != tt.n {
				t.Fatalf("Bipartition() returned %d colors, want %d", len(colors), tt.n)
			}
			for _, e := range tt.edges {
				if colors[e[0]] == colors[e[1]] {
					t.Errorf("edge (%d, %d): both endpoints colored %d", e[0], e[1], colors[e[0]])
				}
			}
		})
	}
}

func TestIntersection(t *testing.T) {
	g1 := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}})
	g2 := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}})
	got, err := g1.Intersection(g2)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if got.EdgeCount() != 3 {
		t.Fatalf("intersection has %d edges, want 3", got.EdgeCount())
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if !got.HasEdge(e[0], e[1]) {
			t.Errorf("intersection missing edge (%d, %d)", e[0], e[1])
		}
	}
	if got.HasEdge(0, 3) || got.HasEdge(1, 3) {
		t.Error("intersection contains an edge present in only one graph")
	}
}

func TestIntersectionSizeMismatch(t *testing.T) {
	g1 := New(3)
	g2 := New(4)
	if _, err := g1.Intersection(g2); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Intersection = %v, want ErrSizeMismatch", err)
	}
}

func TestSubGraphOriginals(t *testing.T) {
	parent := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}})
	sub := NewSub(2, parent)
	sub.SetOriginal(0, 3)
	if got, err := sub.Original(0); err != nil || got != 3 {
		t.Fatalf("Original(0) = %d, %v, want 3, nil", got, err)
	}
	if _, err := sub.Original(1); !errors.Is(err, ErrUnmappedVertex) {
		t.Fatalf("Original(1) = %v, want ErrUnmappedVertex", err)
	}
	if sub.Parent() != parent {
		t.Error("Parent() does not return the parent graph")
	}
}

func TestEdgesEnumeration(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{2, 3}, {0, 1}, {1, 3}})
	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("Edges() returned %d pairs, want 3", len(edges))
	}
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Errorf("edge %v not normalized to u < v", e)
		}
		if !g.HasEdge(e[0], e[1]) {
			t.Errorf("edge %v not present in graph", e)
		}
	}
}
