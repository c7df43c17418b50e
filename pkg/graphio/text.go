package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/planarkit/planarkit/pkg/graph"
)

// ReadText decodes a text-format graph from r.
//
// The first significant line must hold the vertex count, every following
// line one edge as "u v". Comments start with "//" and run to the end of
// the line. ReadText returns an error for a malformed header, a malformed
// edge line, or an edge rejected by the graph (self-loop, duplicate, or
// out-of-range vertex), naming the offending line.
func ReadText(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var g *graph.Graph
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if g == nil {
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: want vertex count, got %q", lineno, line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: invalid vertex count %q", lineno, fields[0])
			}
			g = graph.New(n)
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want edge \"u v\", got %q", lineno, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex %q", lineno, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex %q", lineno, fields[1])
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("empty input: missing vertex count")
	}
	return g, nil
}

// ImportText reads a text-format graph file at path.
// The error wraps the underlying cause with the file path for context.
func ImportText(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadText(f)
}

// ImportTextPair reads two text-format graph files that must describe
// graphs on the same vertex set, as required by the simultaneous
// embedding operations.
func ImportTextPair(redPath, bluePath string) (*graph.Graph, *graph.Graph, error) {
	red, err := ImportText(redPath)
	if err != nil {
		return nil, nil, err
	}
	blue, err := ImportText(bluePath)
	if err != nil {
		return nil, nil, err
	}
	if red.VertexCount() != blue.VertexCount() {
		return nil, nil, fmt.Errorf("%s has %d vertices, %s has %d: %w",
			redPath, red.VertexCount(), bluePath, blue.VertexCount(), graph.ErrSizeMismatch)
	}
	return red, blue, nil
}

// WriteText encodes g in the text format and writes it to w.
// Edges appear once each, in the deterministic order of [graph.Graph.Edges].
func WriteText(g *graph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportText writes g to a text-format file at path.
func ExportText(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteText(g, f)
}
