package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graphio"
)

// embedCommand creates the embed command for computing planar embeddings.
func (c *CLI) embedCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "embed [graph.txt]",
		Short: "Compute a planar embedding of a graph",
		Long: `Compute a combinatorial embedding of a graph, or report that none exists.

The input is a graph file in the text format (vertex count, then one edge
per line) or the JSON format (selected by a .json extension). On success
the embedding is written as adjacency JSON: the cyclic neighbor order of
every vertex.

A non-planar input is a verdict, not a failure: the command reports it and
exits with status 1.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEmbed(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.embedding.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runEmbed loads the graph, computes the embedding, and writes output.
func (c *CLI) runEmbed(ctx context.Context, input, output string, noCache bool) error {
	g, err := loadGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing embedding...")
	spinner.Start()

	emb, cacheHit, err := runner.EmbedWithCacheInfo(ctx, g)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotPlanar) {
			spinner.StopWithError("Graph is not planar")
			printDetail("%s", errors.UserMessage(err))
			os.Exit(1)
		}
		spinner.StopWithError("Embedding failed")
		return fmt.Errorf("compute embedding: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out := outputPath(output, input, ".embedding.json")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output %s: %w", out, err)
	}
	defer f.Close()
	if err := graphio.WriteAdjacencyJSON(emb.Graph, f); err != nil {
		return fmt.Errorf("write output %s: %w", out, err)
	}

	printSuccess("Graph is planar with %d faces", emb.CountFaces())
	printFile(out)
	printStats(g.VertexCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", "planarkit render "+input)

	return nil
}
