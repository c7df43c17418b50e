package dot

import (
	"strings"
	"testing"

	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/planar"
	"github.com/planarkit/planarkit/pkg/sefe"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(3)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	out := ToDOT(triangle(t), Options{})

	if !strings.Contains(out, "graph G") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(out, "0 -- 1") {
		t.Error("ToDOT() output missing edge 0 -- 1")
	}
	if strings.Contains(out, "->") {
		t.Error("ToDOT() must emit undirected edges")
	}
}

func TestToDOT_Name(t *testing.T) {
	out := ToDOT(triangle(t), Options{Name: "triangle"})
	if !strings.Contains(out, "graph triangle") {
		t.Error("ToDOT() ignored the graph name")
	}
}

func TestEmbeddingToDOT_ShowOrder(t *testing.T) {
	emb, err := planar.Embed(triangle(t))
	if err != nil {
		t.Fatalf("Embed() error: %v", err)
	}

	out := EmbeddingToDOT(emb, Options{ShowOrder: true})

	if !strings.Contains(out, "// 0:") {
		t.Error("EmbeddingToDOT() missing neighbor order comment")
	}
	if strings.Count(out, " -- ") != 3 {
		t.Errorf("EmbeddingToDOT() emitted %d edges, want 3", strings.Count(out, " -- "))
	}
}

func TestSefeToDOT_Colors(t *testing.T) {
	red := graph.New(4)
	blue := graph.New(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		if err := red.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
		if err := blue.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := red.AddEdge(0, 3); err != nil {
		t.Fatal(err)
	}
	if err := blue.AddEdge(1, 3); err != nil {
		t.Fatal(err)
	}

	emb, err := sefe.EmbedGraphs(red, blue)
	if err != nil {
		t.Fatalf("EmbedGraphs() error: %v", err)
	}

	out := SefeToDOT(emb, Options{})

	if !strings.Contains(out, "color=crimson") {
		t.Error("SefeToDOT() missing red edge color")
	}
	if !strings.Contains(out, "color=steelblue") {
		t.Error("SefeToDOT() missing blue edge color")
	}
	if !strings.Contains(out, "penwidth=2") {
		t.Error("SefeToDOT() shared edges should be bold")
	}
}
