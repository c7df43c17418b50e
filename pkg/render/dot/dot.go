// Package dot converts graphs and embeddings to Graphviz DOT and renders
// them to SVG or PNG.
//
// DOT itself has no notion of a combinatorial embedding, so the cyclic
// neighbor order of an embedding is emitted both as comment lines and as
// the order of the edge statements; Graphviz chooses the geometry.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/planar"
	"github.com/planarkit/planarkit/pkg/sefe"
)

// Options configures DOT emission.
type Options struct {
	// Name is the DOT graph name. Defaults to "G".
	Name string

	// ShowOrder adds a comment per vertex listing its neighbor sequence.
	// Meaningful for embeddings, where the sequence is the cyclic order
	// of incident edges.
	ShowOrder bool
}

func (o Options) name() string {
	if o.Name == "" {
		return "G"
	}
	return o.Name
}

func header(buf *bytes.Buffer, name string) {
	fmt.Fprintf(buf, "graph %s {\n", name)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
}

// ToDOT converts an undirected graph to DOT. Every vertex becomes a node,
// every edge one "--" statement in the order of [graph.Graph.Edges].
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	header(&buf, opts.name())
	for v := range g.VertexCount() {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}
	buf.WriteString("}\n")
	return buf.String()
}

// EmbeddingToDOT converts an embedding to DOT. Edge statements follow the
// embedding's neighbor sequences vertex by vertex, and with ShowOrder each
// vertex is preceded by its full cyclic order.
func EmbeddingToDOT(e *planar.Embedding, opts Options) string {
	var buf bytes.Buffer
	header(&buf, opts.name())
	for v := range e.VertexCount() {
		if opts.ShowOrder {
			fmt.Fprintf(&buf, "  // %d: %s\n", v, joinInts(e.Neighbors(v)))
		}
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	buf.WriteString("\n")
	for v := range e.VertexCount() {
		for _, w := range e.Neighbors(v) {
			if v < w {
				fmt.Fprintf(&buf, "  %d -- %d;\n", v, w)
			}
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// dotColors maps edge colors to Graphviz color names. Black edges are the
// shared ones, drawn heavier.
var dotColors = map[sefe.Color]string{
	sefe.Red:   "crimson",
	sefe.Blue:  "steelblue",
	sefe.Black: "black",
}

// SefeToDOT converts a simultaneous embedding to DOT with one colored
// "--" statement per edge. Shared edges are black and bold; edges of a
// single input keep that input's color.
func SefeToDOT(e *sefe.Embedding, opts Options) string {
	var buf bytes.Buffer
	header(&buf, opts.name())
	for v := range e.VertexCount() {
		if opts.ShowOrder {
			arcs := e.Arcs(v)
			parts := make([]string, len(arcs))
			for i, a := range arcs {
				parts[i] = fmt.Sprintf("%d(%s)", a.To, a.Color)
			}
			fmt.Fprintf(&buf, "  // %d: %s\n", v, strings.Join(parts, " "))
		}
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	buf.WriteString("\n")
	for v := range e.VertexCount() {
		for _, a := range e.Arcs(v) {
			if v >= a.To {
				continue
			}
			attrs := fmt.Sprintf("color=%s", dotColors[a.Color])
			if a.Color == sefe.Black {
				attrs += ", penwidth=2"
			}
			fmt.Fprintf(&buf, "  %d -- %d [%s];\n", v, a.To, attrs)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg element so the drawing starts at the
// origin and carries explicit pixel dimensions, which embeds cleanly in
// HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
