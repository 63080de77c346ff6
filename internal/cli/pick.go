package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/session"
)

type pickOptions struct {
	colour     string
	clicks     pointList
	saturation float64
	lightness  float64
	format     string
}

// sessionReport is the JSON form of a pick or replay run.
type sessionReport struct {
	Notifications []picker.Notification `json:"notifications"`
	State         picker.State          `json:"state"`
}

func newPickCmd(global *globalOptions) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Apply a colour and interactions to a picker",
		Long: `Mount a picker, mirror an optional external colour, then apply ring clicks
and slider movements in that order. Every accepted interaction prints the
colour it reports; clicks off the ring are ignored.

Coordinates are device-independent pixels from the widget's top-left corner.

Examples:
  # Click the right side of the default ring (hue 180)
  huewheel pick --click 265,150

  # Start from a colour, then darken it
  huewheel pick --color '#3366ff' --lightness 0.3

  # Several clicks, reported as JSON
  huewheel pick --click 265,150 --click 150,35 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.colour, "color", "", "external colour to mirror before interacting (#rrggbb)")
	cmd.Flags().Var(&opts.clicks, "click", "ring click at X,Y (repeatable)")
	cmd.Flags().Float64Var(&opts.saturation, "saturation", 0, "move the saturation slider to this value (0-1)")
	cmd.Flags().Float64Var(&opts.lightness, "lightness", 0, "move the lightness slider to this value (0-1)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runPick(cmd *cobra.Command, global *globalOptions, opts *pickOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.format)
	}

	steps := make([]session.Step, 0, len(opts.clicks)+3)
	if opts.colour != "" {
		steps = append(steps, session.Step{Colour: opts.colour})
	}
	for _, pt := range opts.clicks {
		steps = append(steps, session.Step{Event: picker.Click{At: pt}})
	}
	if cmd.Flags().Changed("saturation") {
		steps = append(steps, session.Step{Event: picker.SetSaturation{Value: opts.saturation}})
	}
	if cmd.Flags().Changed("lightness") {
		steps = append(steps, session.Step{Event: picker.SetLightness{Value: opts.lightness}})
	}

	return runSteps(cmd, global, steps, opts.format)
}

// runSteps mounts a picker, replays steps and reports the outcome.
func runSteps(cmd *cobra.Command, global *globalOptions, steps []session.Step, format string) error {
	g, err := global.geometry(cmd)
	if err != nil {
		return err
	}

	var notes []picker.Notification
	p, err := picker.New(g,
		picker.WithLogger(global.logger(cmd)),
		picker.WithOnChange(func(n picker.Notification) {
			notes = append(notes, n)
		}),
	)
	if err != nil {
		return err
	}

	results := session.Run(p, steps)
	out := cmd.OutOrStdout()

	if format == "json" {
		report := sessionReport{Notifications: notes, State: p.State()}
		if report.Notifications == nil {
			report.Notifications = []picker.Notification{}
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, r := range results {
		writeResult(out, r)
	}
	writeState(out, p.State(), colour.ColourEnabled(out))
	return nil
}

func writeResult(w io.Writer, r session.Result) {
	prefix := ""
	if r.Step.Line > 0 {
		prefix = fmt.Sprintf("line %d: ", r.Step.Line)
	}
	switch {
	case r.Notification != nil:
		fmt.Fprintf(w, "%s%s -> %s\n", prefix, r.Step, r.Notification.Hex)
	case r.Step.Event == nil:
		fmt.Fprintf(w, "%s%s (synchronised, %s)\n", prefix, r.Step, r.State.Name)
	default:
		fmt.Fprintf(w, "%s%s ignored (off ring)\n", prefix, r.Step)
	}
}

func writeState(w io.Writer, st picker.State, preview bool) {
	rgb := colour.ParseHex(st.Hex)
	if preview {
		fmt.Fprintln(w, colour.FormatLabelled(rgb, st.Name, 8))
	} else {
		fmt.Fprintln(w, st.Label())
	}
	fmt.Fprintf(w, "hue %.2f  saturation %.2f  lightness %.2f\n", st.Hue, st.Saturation, st.Lightness)
	if st.Marker != nil {
		fmt.Fprintf(w, "marker %s\n", st.Marker)
	} else {
		fmt.Fprintln(w, "marker unset")
	}
}
