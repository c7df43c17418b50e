// Package cli implements the planarkit command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/planarkit/planarkit/pkg/buildinfo"
	"github.com/planarkit/planarkit/pkg/cache"
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/graphio"
	"github.com/planarkit/planarkit/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "planarkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "planarkit",
		Short:        "Planarkit tests planarity and computes combinatorial embeddings",
		Long:         `Planarkit is a CLI tool for planarity testing, combinatorial embedding, and simultaneous embedding with fixed edges, with Graphviz rendering of the results.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.embedCommand())
	root.AddCommand(c.sefeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/planarkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadGraph reads a graph file, picking the format by extension: ".json"
// is the JSON form, everything else the text form.
func loadGraph(path string) (*graph.Graph, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return graphio.ImportJSON(path)
	}
	return graphio.ImportText(path)
}

// loadGraphPair reads two graph files and checks they share a vertex count.
func loadGraphPair(redPath, bluePath string) (*graph.Graph, *graph.Graph, error) {
	red, err := loadGraph(redPath)
	if err != nil {
		return nil, nil, err
	}
	blue, err := loadGraph(bluePath)
	if err != nil {
		return nil, nil, err
	}
	if red.VertexCount() != blue.VertexCount() {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"%s has %d vertices, %s has %d, want equal",
			redPath, red.VertexCount(), bluePath, blue.VertexCount())
	}
	return red, blue, nil
}

// outputPath derives an output file name from the input when the user gave
// none: the input base with a new extension.
func outputPath(explicit, input, ext string) string {
	if explicit != "" {
		return explicit
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ext
}
