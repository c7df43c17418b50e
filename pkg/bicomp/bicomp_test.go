package bicomp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planarkit/planarkit/pkg/graph"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// componentEdgeSets resolves every component edge back to original vertex
// pairs, normalized to u < v.
func componentEdgeSets(t *testing.T, d *Decomposition) []map[[2]int]int {
	t.Helper()
	out := make([]map[[2]int]int, 0, len(d.Components()))
	for _, comp := range d.Components() {
		edges := map[[2]int]int{}
		for _, e := range comp.Edges() {
			u, err := comp.Original(e[0])
			require.NoError(t, err)
			v, err := comp.Original(e[1])
			require.NoError(t, err)
			if u > v {
				u, v = v, u
			}
			edges[[2]int{u, v}]++
		}
		out = append(out, edges)
	}
	return out
}

func TestDecomposeTriangleWithPendant(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	d := Decompose(g)

	require.Len(t, d.Components(), 2)
	require.Equal(t, []int{2}, d.CutVertices())
	require.True(t, d.IsCutVertex(2))
	require.False(t, d.IsCutVertex(0))

	sizes := map[int]int{}
	for _, comp := range d.Components() {
		sizes[comp.VertexCount()]++
	}
	require.Equal(t, map[int]int{2: 1, 3: 1}, sizes)
}

func TestDecomposeEveryEdgeInExactlyOneComponent(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"k4", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{"path", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{"two triangles sharing a vertex", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}},
		{"theta", 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.n, tt.edges)
			d := Decompose(g)

			seen := map[[2]int]int{}
			for _, edges := range componentEdgeSets(t, d) {
				for e, count := range edges {
					seen[e] += count
				}
			}
			require.Len(t, seen, len(tt.edges))
			for _, e := range tt.edges {
				u, v := e[0], e[1]
				if u > v {
					u, v = v, u
				}
				require.Equal(t, 1, seen[[2]int{u, v}], "edge (%d, %d)", u, v)
			}
		})
	}
}

func TestDecomposePathGraph(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	d := Decompose(g)

	require.Len(t, d.Components(), 3)
	require.Equal(t, []int{1, 2}, d.CutVertices())
	for _, comp := range d.Components() {
		require.Equal(t, 2, comp.VertexCount())
		require.Equal(t, 1, comp.EdgeCount())
	}
}

func TestDecomposeBiconnectedGraphIsSingleComponent(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	d := Decompose(g)

	require.Len(t, d.Components(), 1)
	require.Empty(t, d.CutVertices())
	require.Equal(t, 4, d.Components()[0].VertexCount())
	require.Equal(t, 6, d.Components()[0].EdgeCount())
}

func TestDecomposeIsolatedVertex(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{1, 2}})
	d := Decompose(g)

	require.Len(t, d.Components(), 2)
	var trivial *graph.SubGraph
	for _, comp := range d.Components() {
		if comp.VertexCount() == 1 {
			trivial = comp
		}
	}
	require.NotNil(t, trivial)
	orig, err := trivial.Original(0)
	require.NoError(t, err)
	require.Equal(t, 0, orig)
}

func TestDecomposeCutVerticesBelongToMultipleComponents(t *testing.T) {
	g := buildGraph(t, 7, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3},
		{3, 4}, {4, 5}, {5, 3},
		{5, 6},
	})
	d := Decompose(g)

	membership := map[int]int{}
	for _, comp := range d.Components() {
		for v := range comp.VertexCount() {
			orig, err := comp.Original(v)
			require.NoError(t, err)
			membership[orig]++
		}
	}
	for _, cv := range d.CutVertices() {
		require.GreaterOrEqual(t, membership[cv], 2, "cut vertex %d", cv)
	}
	require.Equal(t, []int{2, 3, 5}, d.CutVertices())
}
