package picker

import (
	"math"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

// Sync mirrors an externally supplied colour into st.
//
// The hex is kept as supplied, the hue, saturation and lightness come from
// decomposing it, and the marker is placed on the ring midline. An empty hex
// means no external colour is known yet and leaves st untouched.
func Sync(g wheel.Geometry, st State, hex string) State {
	if hex == "" {
		return st
	}

	hsl := colour.HexToHSL(hex)
	st.Hue = hsl.H
	st.Saturation = hsl.S
	st.Lightness = hsl.L
	st.Hex = hex
	st.Name = colour.Name(hsl.H)
	return st.withMarker(wheel.MarkerFor(g, hsl.H))
}

// Interact applies a user event to st.
//
// Accepted events return the new state and a notification carrying the new
// hex. Clicks off the ring, slider values that are not numbers and unknown
// events return st unchanged and a nil notification.
func Interact(g wheel.Geometry, st State, ev Event) (State, *Notification) {
	switch e := ev.(type) {
	case Click:
		hue, ok := wheel.HueAt(g, e.At)
		if !ok {
			return st, nil
		}
		st.Hue = hue
		st = st.withMarker(e.At)

	case SetSaturation:
		if math.IsNaN(e.Value) {
			return st, nil
		}
		st.Saturation = clampUnit(e.Value)

	case SetLightness:
		if math.IsNaN(e.Value) {
			return st, nil
		}
		st.Lightness = clampUnit(e.Value)

	default:
		return st, nil
	}

	st = st.derive()
	return st, &Notification{Hex: st.Hex, Cause: ev.Kind()}
}

// clampUnit restricts v to the slider range [0, 1].
func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
