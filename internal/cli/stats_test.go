package cli

import (
	"testing"

	"github.com/planarkit/planarkit/pkg/bicomp"
	"github.com/planarkit/planarkit/pkg/graph"
)

func TestComponentSummary(t *testing.T) {
	// Two triangles sharing vertex 2: two biconnected components, one cut vertex.
	g := graph.New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}} {
		g.Connect(e[0], e[1])
	}
	dec := bicomp.Decompose(g)

	got := componentSummary(dec.Components())
	want := "2 components (sizes 3, 3)"
	if got != want {
		t.Errorf("componentSummary() = %q, want %q", got, want)
	}

	if got := cutVertexSummary(dec.CutVertices()); got != "1 (2)" {
		t.Errorf("cutVertexSummary() = %q, want %q", got, "1 (2)")
	}
}

func TestComponentSummaryEmpty(t *testing.T) {
	if got := componentSummary(nil); got != "0 components" {
		t.Errorf("componentSummary(nil) = %q", got)
	}
	if got := cutVertexSummary(nil); got != "none" {
		t.Errorf("cutVertexSummary(nil) = %q", got)
	}
}

func TestFaceWalk(t *testing.T) {
	if got := faceWalk([]int{0, 1, 2}); got != "0 → 1 → 2 → 0" {
		t.Errorf("faceWalk() = %q", got)
	}
	if got := faceWalk(nil); got != "(outer face of an edgeless graph)" {
		t.Errorf("faceWalk(nil) = %q", got)
	}
}
