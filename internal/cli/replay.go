package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/session"
)

type replayOptions struct {
	format string
}

func newReplayCmd(global *globalOptions) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a scripted picker session",
		Long: `Replay a session script against a freshly mounted picker.

Scripts contain one command per line; blank lines and lines starting with
# or // are ignored. Scripts ending in .xz are decompressed on the fly.

  color #3366ff      mirror an external colour (never reported)
  click 290 150      click the ring at X,Y
  saturation 0.4     move the saturation slider
  lightness 0.25     move the lightness slider

Examples:
  huewheel replay session.txt
  huewheel replay --format json session.txt.xz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, global, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runReplay(cmd *cobra.Command, global *globalOptions, opts *replayOptions, path string) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.format)
	}

	steps, err := session.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}
	global.infof(cmd, "Replaying %d steps from %s", len(steps), path)

	return runSteps(cmd, global, steps, opts.format)
}
