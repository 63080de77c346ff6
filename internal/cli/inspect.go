package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

const swatchWidth = 9

type inspectOptions struct {
	format string
}

// inspection is the decomposition of one colour.
type inspection struct {
	Input     string      `json:"input"`
	Canonical string      `json:"canonical"`
	RGB       colour.RGB  `json:"rgb"`
	HSL       colour.HSL  `json:"hsl"`
	Name      string      `json:"name"`
	RoundTrip string      `json:"round_trip"`
	Marker    wheel.Point `json:"marker"`
}

func newInspectCmd(global *globalOptions) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <hex>...",
		Short: "Decompose colours into hue, saturation and lightness",
		Long: `Decompose one or more hex colours the way the picker does when a colour is
supplied from outside: hue, saturation, lightness, colour name and the marker
position on the ring midline.

Accepted forms are #rrggbb and #rgb. Anything else decomposes as black.

Examples:
  huewheel inspect '#3366ff' '#f80'
  huewheel inspect --format json '#00ffff'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runInspect(cmd *cobra.Command, global *globalOptions, opts *inspectOptions, args []string) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.format)
	}

	g, err := global.geometry(cmd)
	if err != nil {
		return err
	}
	logger := global.logger(cmd)

	results := make([]inspection, 0, len(args))
	for _, hex := range args {
		if hex == "" {
			return fmt.Errorf("empty colour argument")
		}
		st := picker.Sync(g, picker.DefaultState(), hex)
		rgb := colour.ParseHex(hex)
		res := inspection{
			Input:     hex,
			Canonical: rgb.Hex(),
			RGB:       rgb,
			HSL:       st.HSL(),
			Name:      st.Name,
			RoundTrip: st.HSL().RGB().Hex(),
			Marker:    wheel.MarkerFor(g, st.Hue),
		}
		if len(hex) != 4 && len(hex) != 7 {
			logger.Warn("malformed colour decomposed as black", "input", hex)
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, inspectTable(results, colour.ColourEnabled(out)).Render())
	return nil
}

// inspectTable lays out results, leading with a labelled swatch per colour
// when preview is set.
func inspectTable(results []inspection, preview bool) *Table {
	headers := []string{"Input", "Hex", "Hue", "Sat", "Light", "Name", "Marker"}
	if preview {
		headers = append([]string{"Swatch"}, headers...)
	}
	table := NewTable(headers)
	for _, r := range results {
		row := []string{
			r.Input,
			r.Canonical,
			fmt.Sprintf("%.1f", r.HSL.H),
			fmt.Sprintf("%.3f", r.HSL.S),
			fmt.Sprintf("%.3f", r.HSL.L),
			r.Name,
			r.Marker.String(),
		}
		if preview {
			row = append([]string{colour.SwatchWithText(r.RGB, r.Canonical, swatchWidth)}, row...)
		}
		table.AddRow(row)
	}
	return table
}
