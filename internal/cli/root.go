// Package cli provides the command-line interface for huewheel.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/config"
	"github.com/jmylchreest/huewheel/internal/version"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose     bool
	quiet       bool
	noColour    bool
	size        float64
	innerRadius float64
	pixelRatio  float64
}

// NewRootCmd builds the huewheel command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "huewheel",
		Short: "A hue ring colour picker engine",
		Long: `huewheel drives a colour wheel picker from the terminal.

It rasterises the hue ring, decomposes colours into hue, saturation and
lightness, and replays clicks and slider movements against a picker so the
resulting colour notifications can be inspected.

Geometry defaults to a 300px ring with an 80px hole and can be set with
flags or the HUEWHEEL_SIZE, HUEWHEEL_INNER_RADIUS and HUEWHEEL_PIXEL_RATIO
environment variables.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			colour.DisableColourOutput = opts.noColour
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-color", false, "disable colour swatches and previews")
	rootCmd.PersistentFlags().Float64Var(&opts.size, "size", wheel.DefaultDisplaySize, "widget edge length in device-independent pixels")
	rootCmd.PersistentFlags().Float64Var(&opts.innerRadius, "inner-radius", wheel.DefaultInnerRadius, "ring hole radius in device-independent pixels, 0 for a full disc")
	rootCmd.PersistentFlags().Float64Var(&opts.pixelRatio, "pixel-ratio", wheel.DefaultPixelRatio, "device pixel ratio")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newPickCmd(opts))
	rootCmd.AddCommand(newReplayCmd(opts))

	return rootCmd
}

// geometry resolves the ring geometry from defaults, environment and the
// geometry flags the user actually set.
func (o *globalOptions) geometry(cmd *cobra.Command) (wheel.Geometry, error) {
	var overrides config.Overrides
	flags := cmd.Flags()
	if flags.Changed("size") {
		overrides.DisplaySize = &o.size
	}
	if flags.Changed("inner-radius") {
		overrides.InnerRadius = &o.innerRadius
	}
	if flags.Changed("pixel-ratio") {
		overrides.PixelRatio = &o.pixelRatio
	}

	g, err := config.NewBuilder().
		WithEnvConfig().
		WithOverrides(overrides).
		Build()
	if err != nil {
		return wheel.Geometry{}, fmt.Errorf("invalid geometry: %w", err)
	}
	return g, nil
}

// logger builds the command logger: debug output on stderr when verbose,
// silent otherwise.
func (o *globalOptions) logger(cmd *cobra.Command) hclog.Logger {
	if o.verbose && !o.quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huewheel",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huewheel",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// infof prints progress to stderr unless --quiet is set.
func (o *globalOptions) infof(cmd *cobra.Command, format string, args ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
