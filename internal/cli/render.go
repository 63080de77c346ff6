package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/picker"
)

const (
	defaultPreviewWidth = 48
	maxPreviewWidth     = 96
)

type renderOptions struct {
	output  string
	preview bool
	width   int
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Rasterise the hue ring",
		Long: `Rasterise the hue ring at full saturation and mid lightness.

The ring is written as a PNG with a transparent hole and exterior, or drawn
in the terminal with 24-bit colour half blocks.

Examples:
  # Write the default ring to a PNG
  huewheel render -o ring.png

  # Write a high density ring
  huewheel render --pixel-ratio 2 -o ring@2x.png

  # Preview the ring in the terminal
  huewheel render --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "PNG output file (default: stdout when not a terminal)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "draw the ring in the terminal")
	cmd.Flags().IntVar(&opts.width, "width", 0, "preview width in columns (default: fit terminal)")

	return cmd
}

func runRender(cmd *cobra.Command, global *globalOptions, opts *renderOptions) error {
	g, err := global.geometry(cmd)
	if err != nil {
		return err
	}

	p, err := picker.New(g, picker.WithLogger(global.logger(cmd)))
	if err != nil {
		return err
	}
	ring := p.Ring()

	out := cmd.OutOrStdout()
	preview := opts.preview || (opts.output == "" && colour.ColourEnabled(out))

	if preview {
		width := opts.width
		if width <= 0 {
			width = previewWidth()
		}
		fmt.Fprint(out, colour.RenderImage(ring.Thumbnail(width)))
		return nil
	}

	if opts.output == "" {
		return ring.EncodePNG(out)
	}

	f, err := os.Create(opts.output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := ring.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	global.infof(cmd, "Wrote %dx%d ring to %s", ring.Width(), ring.Height(), opts.output)
	return nil
}

// previewWidth fits the preview to the terminal, leaving a margin.
func previewWidth() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return defaultPreviewWidth
	}
	return max(8, min(cols-2, maxPreviewWidth))
}
