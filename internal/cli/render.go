package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creatorlab/canvas/pkg/pipeline"
	"github.com/creatorlab/canvas/pkg/sceneio"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path (derived from input when empty)
	format     string  // png or jpeg
	scale      float64 // output pixels per logical pixel
	quality    int     // jpeg quality
	background string  // background color override
	export     bool    // reload assets fresh instead of best-effort preview
	noCache    bool    // disable the asset/artifact cache
}

// renderCommand creates the render command: scene document in, image out.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene.json>",
		Short: "Render a scene document to an image",
		Long: `Render reads a scene document, fetches the assets it references, composes
placements and annotations in z-order, and writes the encoded image.

By default the render is a preview: assets come from the cache when
possible and a previously rendered artifact is reused. With --export every
asset is reloaded fresh before drawing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: scene name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png or jpeg (default from config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "render scale (default from config)")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "jpeg quality 1-100 (default from config)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color override (hex)")
	cmd.Flags().BoolVar(&opts.export, "export", false, "reload all assets fresh before rendering")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable asset and artifact caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, scenePath string, opts renderOpts) error {
	doc, err := sceneio.Load(scenePath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(cmd, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	popts := c.pipelineOptions(doc, opts)

	tracker := newProgress(c.Logger)
	spinner := newSpinner(cmd.Context(), "rendering "+filepath.Base(scenePath))
	spinner.Start()

	run := runner.Preview
	if opts.export {
		run = runner.Export
	}
	res, err := run(cmd.Context(), popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	tracker.done(fmt.Sprintf("Rendered %d placements, %d elements", res.Stats.PlacementCount, res.Stats.ElementCount))

	for _, id := range res.MissingAssets {
		printWarning("asset %s failed to load and was skipped", id)
	}

	out := opts.output
	if out == "" {
		base := strings.TrimSuffix(scenePath, filepath.Ext(scenePath))
		out = base + "." + res.Artifact.Format
	}
	if err := os.WriteFile(out, res.Artifact.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	printSuccess("Wrote %s", res.Artifact.Format)
	printFile(out)
	printArtifactStats(res.Artifact.Width, res.Artifact.Height, res.Artifact.FileSize, res.CacheInfo.ArtifactHit)
	return nil
}

// pipelineOptions merges config defaults with command-line overrides.
func (c *CLI) pipelineOptions(doc sceneio.Document, opts renderOpts) pipeline.Options {
	cfg := c.cfg.Render
	popts := pipeline.Options{
		Scene:      doc.Scene(),
		Assets:     doc.Assets,
		Format:     cfg.Format,
		Scale:      cfg.Scale,
		Quality:    cfg.Quality,
		Background: cfg.Background,
		Canvas:     c.cfg.Dimensions(doc.Context),
		Logger:     c.Logger,
	}
	if opts.format != "" {
		popts.Format = opts.format
	}
	if opts.scale != 0 {
		popts.Scale = opts.scale
	}
	if opts.quality != 0 {
		popts.Quality = opts.quality
	}
	if opts.background != "" {
		popts.Background = opts.background
	}
	return popts
}
