// Package picker keeps a colour wheel's selection in sync with an external
// colour value and with user edits.
//
// Two paths write the selection:
//
//   - Sync mirrors a colour supplied by the host. It never reports back.
//   - Interact applies a ring click or slider movement and returns a
//     Notification for the host.
//
// Both are pure functions over an immutable State. Picker wraps them for
// hosts that prefer a stateful object with a change callback.
package picker

import (
	"fmt"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

// State is a snapshot of the widget selection.
type State struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Hex        string  `json:"hex"`
	Name       string  `json:"name"`
	// Marker is nil until the first colour is known.
	Marker *wheel.Point `json:"marker,omitempty"`
}

// DefaultState is the selection of a freshly mounted widget: pure red
// controls with a black preview and no marker.
func DefaultState() State {
	return State{
		Hue:        0,
		Saturation: 1,
		Lightness:  0.5,
		Hex:        "#000000",
		Name:       colour.Name(0),
	}
}

// HSL returns the selection as an HSL triple.
func (s State) HSL() colour.HSL {
	return colour.HSL{H: s.Hue, S: s.Saturation, L: s.Lightness}
}

// Label is the caption shown under the preview, e.g. "Cyan - #00ffff".
func (s State) Label() string {
	return fmt.Sprintf("%s - %s", s.Name, s.Hex)
}

// withMarker returns a copy of s whose marker points at p.
func (s State) withMarker(p wheel.Point) State {
	s.Marker = &p
	return s
}

// derive recomputes the hex and name from hue, saturation and lightness.
func (s State) derive() State {
	s.Hex = colour.HSLToRGB(s.Hue/360, s.Saturation, s.Lightness).Hex()
	s.Name = colour.Name(s.Hue)
	return s
}

// Track is a slider background gradient.
type Track struct {
	From colour.RGB `json:"from"`
	To   colour.RGB `json:"to"`
}

// SaturationTrack runs from grey to the fully saturated current hue.
func (s State) SaturationTrack() Track {
	h := s.Hue / 360
	return Track{
		From: colour.HSLToRGB(h, 0, 0.5),
		To:   colour.HSLToRGB(h, 1, 0.5),
	}
}

// LightnessTrack runs from black to white.
func (s State) LightnessTrack() Track {
	return Track{
		From: colour.RGB{},
		To:   colour.RGB{R: 255, G: 255, B: 255},
	}
}
