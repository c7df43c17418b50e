package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graphio"
	"github.com/planarkit/planarkit/pkg/pipeline"
)

// sefeCommand creates the sefe command group for simultaneous embeddings.
func (c *CLI) sefeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sefe",
		Short: "Simultaneous embedding with fixed edges",
		Long: `Work with simultaneous embeddings of two graphs on a shared vertex set.

Both inputs must have the same vertex count, and the edges they share must
form one biconnected subgraph. Edges of only the first graph are red, edges
of only the second are blue, shared edges are black.`,
	}

	cmd.AddCommand(c.sefeTestCommand())
	cmd.AddCommand(c.sefeEmbedCommand())
	cmd.AddCommand(c.sefeRenderCommand())

	return cmd
}

// sefeTestCommand creates the "sefe test" subcommand.
func (c *CLI) sefeTestCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "test [red.txt] [blue.txt]",
		Short: "Test whether two graphs embed simultaneously",
		Long: `Test whether two graphs admit a simultaneous embedding with fixed edges.

A negative verdict is reported with exit status 1; malformed input also
exits with status 1 and an error message.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSefeTest(cmd.Context(), args[0], args[1], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runSefeTest(ctx context.Context, redPath, bluePath string, noCache bool) error {
	red, blue, err := loadGraphPair(redPath, bluePath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Testing simultaneous embeddability...")
	spinner.Start()

	verdict, err := runner.TestSefe(ctx, red, blue)
	if err != nil {
		spinner.StopWithError("Test failed")
		return err
	}

	if !verdict {
		spinner.StopWithError("No simultaneous embedding exists")
		os.Exit(1)
	}
	spinner.StopWithSuccess("The graphs embed simultaneously")
	printNextStep("Embed", fmt.Sprintf("planarkit sefe embed %s %s", redPath, bluePath))
	return nil
}

// sefeEmbedCommand creates the "sefe embed" subcommand.
func (c *CLI) sefeEmbedCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "embed [red.txt] [blue.txt]",
		Short: "Compute a simultaneous embedding of two graphs",
		Long: `Compute a simultaneous embedding with fixed edges of two graphs.

On success the embedding is written as colored JSON: the cyclic arc order
of every vertex, each arc tagged red, blue or black. The red projection
(black and red arcs) and the blue projection are planar embeddings of the
two inputs that agree on the shared edges.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSefeEmbed(cmd.Context(), args[0], args[1], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <red>.sefe.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runSefeEmbed(ctx context.Context, redPath, bluePath, output string, noCache bool) error {
	red, blue, err := loadGraphPair(redPath, bluePath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing simultaneous embedding...")
	spinner.Start()

	emb, cacheHit, err := runner.SefeWithCacheInfo(ctx, red, blue)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNoSefe) {
			spinner.StopWithError("No simultaneous embedding exists")
			printDetail("%s", errors.UserMessage(err))
			os.Exit(1)
		}
		spinner.StopWithError("Embedding failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out := outputPath(output, redPath, ".sefe.json")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output %s: %w", out, err)
	}
	defer f.Close()
	if err := graphio.WriteColoredJSON(emb, f); err != nil {
		return fmt.Errorf("write output %s: %w", out, err)
	}

	printSuccess("Simultaneous embedding found")
	printFile(out)
	printStats(emb.VertexCount(), emb.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", fmt.Sprintf("planarkit sefe render %s %s", redPath, bluePath))

	return nil
}

// sefeRenderCommand creates the "sefe render" subcommand.
func (c *CLI) sefeRenderCommand() *cobra.Command {
	var (
		output    string
		format    string
		showOrder bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "render [red.txt] [blue.txt]",
		Short: "Render a simultaneous embedding",
		Long: `Render a simultaneous embedding of two graphs via Graphviz.

Shared edges are drawn black and bold, edges of the first input red, edges
of the second blue.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSefeRender(cmd.Context(), args[0], args[1], output, format, showOrder, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <red>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatSVG, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&showOrder, "show-order", false, "annotate DOT output with cyclic arc orders")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runSefeRender(ctx context.Context, redPath, bluePath, output, format string, showOrder, noCache bool) error {
	red, blue, err := loadGraphPair(redPath, bluePath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.RenderOptions{Format: format, ShowOrder: showOrder}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	data, cacheHit, err := runner.RenderSefeWithCacheInfo(ctx, red, blue, opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNoSefe) {
			spinner.StopWithError("No simultaneous embedding exists")
			os.Exit(1)
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out := outputPath(output, redPath, "."+format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", out, err)
	}

	printSuccess("Render complete")
	printFile(out)
	printStats(red.VertexCount(), red.EdgeCount()+blue.EdgeCount(), cacheHit)

	return nil
}
