package sefe

import (
	"testing"

	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/stretchr/testify/require"
)

func completeGraph(n int) *graph.Graph {
	g := graph.New(n)
	for u := range n {
		for v := u + 1; v < n; v++ {
			g.Connect(u, v)
		}
	}
	return g
}

func cycleGraph(n int, extra [][2]int) *graph.Graph {
	g := graph.New(n)
	for i := range n {
		g.Connect(i, (i+1)%n)
	}
	for _, e := range extra {
		g.Connect(e[0], e[1])
	}
	return g
}

func TestTestSefeOuterPendants(t *testing.T) {
	// Both graphs share a triangle; each hangs its own edge on vertex 3.
	// The intersection leaves vertex 3 isolated, which is fine: only the
	// edge-bearing part must be biconnected.
	red := graph.New(4)
	red.Connect(0, 1)
	red.Connect(1, 2)
	red.Connect(2, 0)
	red.Connect(0, 3)
	blue := graph.New(4)
	blue.Connect(0, 1)
	blue.Connect(1, 2)
	blue.Connect(2, 0)
	blue.Connect(1, 3)

	ok, err := TestSefe(red, blue)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTestSefeIdenticalGraphsMatchPlanarity(t *testing.T) {
	ok, err := TestSefe(completeGraph(4), completeGraph(4))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = TestSefe(completeGraph(5), completeGraph(5))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTestSefeSplitDiagonals(t *testing.T) {
	// All three hexagon diagonals together form K3,3. Splitting them
	// between the two graphs makes each projection planar.
	red := cycleGraph(6, [][2]int{{0, 3}, {1, 4}})
	blue := cycleGraph(6, [][2]int{{2, 5}})
	ok, err := TestSefe(red, blue)
	require.NoError(t, err)
	require.True(t, ok)

	shared := cycleGraph(6, [][2]int{{0, 3}, {1, 4}, {2, 5}})
	ok, err = TestSefe(shared, shared)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTestSefeRejectsSizeMismatch(t *testing.T) {
	_, err := TestSefe(completeGraph(4), completeGraph(5))
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestTestSefeRejectsSplitIntersection(t *testing.T) {
	// The shared edges form two disjoint triangles.
	g := graph.New(6)
	g.Connect(0, 1)
	g.Connect(1, 2)
	g.Connect(2, 0)
	g.Connect(3, 4)
	g.Connect(4, 5)
	g.Connect(5, 3)
	_, err := TestSefe(g, g)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestTestSefeRejectsEmptyIntersection(t *testing.T) {
	red := graph.New(3)
	red.Connect(0, 1)
	blue := graph.New(3)
	blue.Connect(1, 2)
	_, err := TestSefe(red, blue)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestEmbedOuterPendants(t *testing.T) {
	red := graph.New(4)
	red.Connect(0, 1)
	red.Connect(1, 2)
	red.Connect(2, 0)
	red.Connect(0, 3)
	blue := graph.New(4)
	blue.Connect(0, 1)
	blue.Connect(1, 2)
	blue.Connect(2, 0)
	blue.Connect(1, 3)

	emb, err := EmbedGraphs(red, blue)
	require.NoError(t, err)

	// The whole pendant bridge lands on one side of the triangle.
	require.Equal(t, []Arc{{1, Black}, {3, Red}, {2, Black}}, emb.Arcs(0))
	require.Equal(t, []Arc{{2, Black}, {3, Blue}, {0, Black}}, emb.Arcs(1))
	require.Equal(t, []Arc{{0, Black}, {1, Black}}, emb.Arcs(2))
	require.Equal(t, []Arc{{0, Red}, {1, Blue}}, emb.Arcs(3))

	redView := emb.RedView()
	require.True(t, redView.CheckEuler())
	require.Equal(t, 2, redView.CountFaces())

	blueView := emb.BlueView()
	require.True(t, blueView.CheckEuler())
	require.Equal(t, 2, blueView.CountFaces())
}

func TestEmbedGraphsK4(t *testing.T) {
	emb, err := EmbedGraphs(completeGraph(4), completeGraph(4))
	require.NoError(t, err)

	for v := range emb.VertexCount() {
		for _, a := range emb.Arcs(v) {
			require.Equal(t, Black, a.Color)
		}
	}
	redView := emb.RedView()
	require.True(t, redView.CheckEuler())
	require.Equal(t, 4, redView.CountFaces())

	blueView := emb.BlueView()
	require.True(t, blueView.CheckEuler())
	require.Equal(t, 4, blueView.CountFaces())
}

func TestEmbedSplitDiagonals(t *testing.T) {
	red := cycleGraph(6, [][2]int{{0, 3}, {1, 4}})
	blue := cycleGraph(6, [][2]int{{2, 5}})

	emb, err := EmbedGraphs(red, blue)
	require.NoError(t, err)

	redView := emb.RedView()
	require.Equal(t, 8, redView.EdgeCount())
	require.True(t, redView.CheckEuler())
	require.Equal(t, 4, redView.CountFaces())

	blueView := emb.BlueView()
	require.Equal(t, 7, blueView.EdgeCount())
	require.True(t, blueView.CheckEuler())
	require.Equal(t, 3, blueView.CountFaces())
}

func TestEmbedReportsNoSefe(t *testing.T) {
	b, err := FromGraphs(completeGraph(5), completeGraph(5))
	require.NoError(t, err)
	_, err = Embed(b)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeNoSefe))
}

func TestEmbedGraphsIsDeterministic(t *testing.T) {
	red := cycleGraph(6, [][2]int{{0, 3}, {1, 4}})
	blue := cycleGraph(6, [][2]int{{2, 5}})

	first, err := EmbedGraphs(red, blue)
	require.NoError(t, err)
	second, err := EmbedGraphs(red, blue)
	require.NoError(t, err)

	for v := range first.VertexCount() {
		require.Equal(t, first.Arcs(v), second.Arcs(v))
	}
}
