package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/pipeline"
)

// renderCommand creates the render command for drawing embeddings.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		format    string
		showOrder bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph.txt]",
		Short: "Render a planar embedding via Graphviz",
		Long: `Compute a planar embedding of a graph and render it via Graphviz.

The DOT output carries the combinatorial structure; SVG and PNG are drawn
from it. With --show-order the DOT output annotates each vertex with its
cyclic neighbor order.

A non-planar input is reported and exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, format, showOrder, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatSVG, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&showOrder, "show-order", false, "annotate DOT output with cyclic neighbor orders")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output, format string, showOrder, noCache bool) error {
	g, err := loadGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.RenderOptions{Format: format, ShowOrder: showOrder}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	data, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotPlanar) {
			spinner.StopWithError("Graph is not planar")
			printDetail("%s", errors.UserMessage(err))
			os.Exit(1)
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out := outputPath(output, input, "."+format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", out, err)
	}

	printSuccess("Render complete")
	printFile(out)
	printStats(g.VertexCount(), g.EdgeCount(), cacheHit)

	return nil
}
