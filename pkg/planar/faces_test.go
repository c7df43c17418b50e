package planar

import (
	"testing"

	"github.com/planarkit/planarkit/pkg/graph"
)

func TestCountFacesEdgeless(t *testing.T) {
	emb := &Embedding{graph.New(1)}
	if got := emb.CountFaces(); got != 1 {
		t.Errorf("CountFaces() = %d, want 1", got)
	}
}

func TestCountFacesTriangle(t *testing.T) {
	emb := &Embedding{graph.FromAdjacency([][]int{
		{1, 2},
		{2, 0},
		{0, 1},
	})}
	if got := emb.CountFaces(); got != 2 {
		t.Errorf("CountFaces() = %d, want 2", got)
	}
	if !emb.CheckEuler() {
		t.Error("CheckEuler() = false, want true")
	}
}

func TestCountFacesPath(t *testing.T) {
	// A tree has a single face: the walk traverses every edge twice.
	emb := &Embedding{graph.FromAdjacency([][]int{
		{1},
		{0, 2},
		{1},
	})}
	if got := emb.CountFaces(); got != 1 {
		t.Errorf("CountFaces() = %d, want 1", got)
	}
	if !emb.CheckEuler() {
		t.Error("CheckEuler() = false, want true")
	}
}

func TestFacesWalks(t *testing.T) {
	emb := &Embedding{graph.FromAdjacency([][]int{
		{1, 2},
		{2, 0},
		{0, 1},
	})}

	faces := emb.Faces()
	if len(faces) != 2 {
		t.Fatalf("Faces() returned %d walks, want 2", len(faces))
	}

	// Every directed edge lies on exactly one face, so the walk lengths
	// sum to twice the edge count.
	total := 0
	for _, walk := range faces {
		if len(walk) != 3 {
			t.Errorf("face walk %v has length %d, want 3", walk, len(walk))
		}
		total += len(walk)
	}
	if total != 2*emb.EdgeCount() {
		t.Errorf("walk lengths sum to %d, want %d", total, 2*emb.EdgeCount())
	}
}

func TestFacesTreeWalk(t *testing.T) {
	// The single face of a tree walks every edge twice.
	emb := &Embedding{graph.FromAdjacency([][]int{
		{1},
		{0, 2},
		{1},
	})}
	faces := emb.Faces()
	if len(faces) != 1 {
		t.Fatalf("Faces() returned %d walks, want 1", len(faces))
	}
	if len(faces[0]) != 2*emb.EdgeCount() {
		t.Errorf("tree face walk has length %d, want %d", len(faces[0]), 2*emb.EdgeCount())
	}
}

func TestFacesEdgeless(t *testing.T) {
	emb := &Embedding{graph.New(3)}
	faces := emb.Faces()
	if len(faces) != 1 || len(faces[0]) != 0 {
		t.Errorf("Faces() = %v, want one empty walk", faces)
	}
}

func TestCountFacesK4Rotations(t *testing.T) {
	// A planar rotation system for K4 has four faces; swapping two neighbors
	// at a single vertex ruins planarity and Euler's formula with it.
	planar := &Embedding{graph.FromAdjacency([][]int{
		{1, 2, 3},
		{2, 0, 3},
		{0, 1, 3},
		{0, 2, 1},
	})}
	if got := planar.CountFaces(); got != 4 {
		t.Errorf("CountFaces() = %d, want 4", got)
	}
	if !planar.CheckEuler() {
		t.Error("CheckEuler() = false, want true")
	}

	twisted := &Embedding{graph.FromAdjacency([][]int{
		{1, 2, 3},
		{2, 0, 3},
		{0, 1, 3},
		{0, 1, 2},
	})}
	if twisted.CheckEuler() {
		t.Error("CheckEuler() on a twisted rotation system = true, want false")
	}
}
