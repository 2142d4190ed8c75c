package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mklettner/dropzone/pkg/cache"
	"github.com/mklettner/dropzone/pkg/document"
	"github.com/mklettner/dropzone/pkg/treeviz"
)

// renderCacheTTL bounds how long rendered artifacts are kept around.
const renderCacheTTL = 7 * 24 * time.Hour

// treeCommand creates the tree command for rendering a document as a
// node-link diagram.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "tree <document.json>",
		Short: "Render a document as a node-link diagram",
		Long: `Render a document as a node-link diagram.

The tree command loads a document and renders its row/cell hierarchy as a
Graphviz diagram. Rows are yellow boxes, leaf cells are labelled with their
content, inline cells are dashed. Use --detailed to include inline sides
and capability flags in the labels.

Formats: dot (default), svg, png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], format, output, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <document>.<format>, - for stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include inline markers and flags in labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always re-render, skip the artifact cache")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, input, format, output string, detailed, noCache bool) error {
	doc, err := document.ReadDocumentFile(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	dot := treeviz.ToDOT(doc, treeviz.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		data, err = c.renderCached(ctx, dot, format, noCache)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want dot, svg, or png)", format)
	}

	if output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + "." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Rendered document tree")
	printFile(output)
	return nil
}

// renderCached runs the Graphviz render behind the artifact cache. Cache
// failures only cost a re-render, so they are logged and ignored.
func (c *CLI) renderCached(ctx context.Context, dot, format string, noCache bool) ([]byte, error) {
	store := c.renderCache(noCache)
	defer func() { _ = store.Close() }()

	key := cache.RenderKey(dot, format)
	if data, ok, err := store.Get(ctx, key); err != nil {
		c.Logger.Debug("cache read failed", "err", err)
	} else if ok {
		c.Logger.Debug("render cache hit", "format", format)
		return data, nil
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = treeviz.RenderSVG(dot)
	case "png":
		data, err = treeviz.RenderPNG(dot)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Set(ctx, key, data, renderCacheTTL); err != nil {
		c.Logger.Debug("cache write failed", "err", err)
	}
	return data, nil
}

func (c *CLI) renderCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(filepath.Join(base, "dropzone"))
	if err != nil {
		c.Logger.Debug("cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return store
}
