package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/planarkit/planarkit/pkg/sefe"
)

// jsonColored is the wire form of a simultaneous embedding: the per-vertex
// arc lists in cyclic order, each arc carrying its edge color.
type jsonColored struct {
	N    int            `json:"n"`
	Arcs [][]jsonColArc `json:"arcs"`
}

type jsonColArc struct {
	To    int    `json:"to"`
	Color string `json:"color"`
}

var colorNames = map[sefe.Color]string{
	sefe.Red:   "red",
	sefe.Blue:  "blue",
	sefe.Black: "black",
}

var colorValues = map[string]sefe.Color{
	"red":   sefe.Red,
	"blue":  sefe.Blue,
	"black": sefe.Black,
}

// WriteColoredJSON encodes a simultaneous embedding as JSON: one ordered
// arc list per vertex, colors spelled out as "red", "blue" and "black".
func WriteColoredJSON(e *sefe.Embedding, w io.Writer) error {
	out := jsonColored{N: e.VertexCount(), Arcs: make([][]jsonColArc, e.VertexCount())}
	for v := range out.Arcs {
		arcs := e.Arcs(v)
		out.Arcs[v] = make([]jsonColArc, len(arcs))
		for i, a := range arcs {
			out.Arcs[v][i] = jsonColArc{To: a.To, Color: colorNames[a.Color]}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadColoredJSON decodes a simultaneous embedding from r. Arc order is
// preserved; ranges, colors and arc symmetry are validated.
func ReadColoredJSON(r io.Reader) (*sefe.Embedding, error) {
	var data jsonColored
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.N < 0 || len(data.Arcs) != data.N {
		return nil, fmt.Errorf("arcs has %d rows, want %d", len(data.Arcs), data.N)
	}
	adj := make([][]sefe.Arc, data.N)
	for v, arcs := range data.Arcs {
		adj[v] = make([]sefe.Arc, len(arcs))
		for i, a := range arcs {
			color, ok := colorValues[a.Color]
			if !ok {
				return nil, fmt.Errorf("vertex %d: unknown color %q", v, a.Color)
			}
			adj[v][i] = sefe.Arc{To: a.To, Color: color}
		}
	}
	b, err := sefe.FromArcs(adj)
	if err != nil {
		return nil, err
	}
	return &sefe.Embedding{Bicolored: b}, nil
}
