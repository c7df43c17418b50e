package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/planarkit/planarkit/pkg/bicomp"
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/planar"
)

// statsCommand creates the stats command for inspecting graph structure.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		interactive bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "stats [graph.txt]",
		Short: "Show structural statistics of a graph",
		Long: `Show structural statistics of a graph: vertex and edge counts, the
biconnected decomposition, and the planarity verdict with face count.

With --interactive a face browser opens after a positive verdict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args[0], interactive, noCache)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse faces interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, input string, interactive, noCache bool) error {
	g, err := loadGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	printKeyValue("Vertices", strconv.Itoa(g.VertexCount()))
	printKeyValue("Edges", strconv.Itoa(g.EdgeCount()))

	dec := bicomp.Decompose(g)
	printKeyValue("Biconnected", componentSummary(dec.Components()))
	printKeyValue("Cut vertices", cutVertexSummary(dec.CutVertices()))

	if !g.IsConnected() {
		printKeyValue("Connected", "no")
		printNewline()
		printDetail("Planarity applies per connected component; this graph has more than one.")
		return nil
	}
	printKeyValue("Connected", "yes")

	emb, err := c.computeEmbedding(ctx, g, noCache)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotPlanar) {
			printKeyValue("Planar", "no")
			printNewline()
			printDetail("%s", errors.UserMessage(err))
			return nil
		}
		return err
	}

	faces := emb.Faces()
	printKeyValue("Planar", "yes")
	printKeyValue("Faces", strconv.Itoa(len(faces)))

	if !interactive {
		printNewline()
		printNextStep("Browse faces", fmt.Sprintf("planarkit stats -i %s", input))
		return nil
	}

	p := tea.NewProgram(NewFaceListModel(faces))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("face browser: %w", err)
	}
	fm, ok := finalModel.(FaceListModel)
	if ok && fm.Selected != nil {
		printNewline()
		printKeyValue("Face", strconv.Itoa(fm.Selected.Index))
		printKeyValue("Walk", faceWalk(fm.Selected.Face))
	}
	return nil
}

// computeEmbedding runs the embedding through the cached pipeline.
func (c *CLI) computeEmbedding(ctx context.Context, g *graph.Graph, noCache bool) (*planar.Embedding, error) {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	return runner.Embed(ctx, g)
}

// componentSummary formats the biconnected component count with a size
// breakdown, largest first.
func componentSummary(comps []*graph.SubGraph) string {
	if len(comps) == 0 {
		return "0 components"
	}
	sizes := make([]int, len(comps))
	for i, comp := range comps {
		sizes[i] = comp.VertexCount()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return fmt.Sprintf("%d components (sizes %s)", len(comps), strings.Join(parts, ", "))
}

// cutVertexSummary formats the cut vertex list, or "none".
func cutVertexSummary(cuts []int) string {
	if len(cuts) == 0 {
		return "none"
	}
	sorted := append([]int(nil), cuts...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%d (%s)", len(sorted), strings.Join(parts, ", "))
}

// faceWalk formats a face as its closed vertex walk.
func faceWalk(face []int) string {
	if len(face) == 0 {
		return "(outer face of an edgeless graph)"
	}
	parts := make([]string, 0, len(face)+1)
	for _, v := range face {
		parts = append(parts, strconv.Itoa(v))
	}
	parts = append(parts, strconv.Itoa(face[0]))
	return strings.Join(parts, " → ")
}
