package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/planarkit/planarkit/pkg/graph"
)

// jsonGraph is the wire form of a plain graph: vertex count plus an edge
// list. Reading inserts edges in list order; writing lists them in the
// order of [graph.Graph.Edges], so a round trip keeps the edge set but not
// necessarily each vertex's neighbor order.
type jsonGraph struct {
	N     int        `json:"n"`
	Edges []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// jsonEmbedding is the wire form of an embedding: the per-vertex neighbor
// sequences in cyclic order. A plain graph can be encoded the same way,
// its order just carries no meaning.
type jsonEmbedding struct {
	N         int     `json:"n"`
	Adjacency [][]int `json:"adjacency"`
}

// ReadJSON decodes a JSON graph from r.
//
// The input must be an object with an "n" field and an "edges" array:
//
//	{"n": 4, "edges": [{"from": 0, "to": 1}, {"from": 1, "to": 2}]}
//
// Edges are inserted in array order and validated like text-format edges.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data jsonGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.N < 0 {
		return nil, fmt.Errorf("invalid vertex count %d", data.N)
	}
	g := graph.New(data.N)
	for i, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return g, nil
}

// WriteJSON encodes g as a JSON graph and writes it to w. Edges appear
// once each, in the order of [graph.Graph.Edges].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := jsonGraph{N: g.VertexCount(), Edges: []jsonEdge{}}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, jsonEdge{From: e[0], To: e[1]})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportJSON reads a JSON graph file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes g to a JSON graph file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// WriteAdjacencyJSON encodes g as a JSON embedding: the full neighbor
// sequence of every vertex, in order. This is the output form for
// embeddings, where the sequence is the cyclic order of incident edges.
func WriteAdjacencyJSON(g *graph.Graph, w io.Writer) error {
	out := jsonEmbedding{N: g.VertexCount(), Adjacency: make([][]int, g.VertexCount())}
	for v := range out.Adjacency {
		neighbors := g.Neighbors(v)
		out.Adjacency[v] = make([]int, len(neighbors))
		copy(out.Adjacency[v], neighbors)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadAdjacencyJSON decodes a JSON embedding from r. Every neighbor index
// is range-checked; the deeper symmetry of the lists (each edge present at
// both endpoints) is the producer's responsibility.
func ReadAdjacencyJSON(r io.Reader) (*graph.Graph, error) {
	var data jsonEmbedding
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.N < 0 || len(data.Adjacency) != data.N {
		return nil, fmt.Errorf("adjacency has %d rows, want %d", len(data.Adjacency), data.N)
	}
	arcs := 0
	for v, neighbors := range data.Adjacency {
		for _, w := range neighbors {
			if w < 0 || w >= data.N {
				return nil, fmt.Errorf("vertex %d: %w", v, graph.ErrVertexRange)
			}
			arcs++
		}
	}
	if arcs%2 != 0 {
		return nil, fmt.Errorf("odd number of arcs %d, lists are not symmetric", arcs)
	}
	return graph.FromAdjacency(data.Adjacency), nil
}

// CanonicalBytes serializes g in the text format, the stable byte form
// used to derive cache keys. Two graphs with the same edge set in the same
// insertion order serialize identically.
func CanonicalBytes(g *graph.Graph) []byte {
	var buf bytes.Buffer
	_ = WriteText(g, &buf)
	return buf.Bytes()
}
