package picker

import (
	"fmt"

	"github.com/jmylchreest/huewheel/internal/wheel"
)

// EventKind identifies the control that produced an event.
type EventKind string

const (
	KindClick      EventKind = "click"
	KindSaturation EventKind = "saturation"
	KindLightness  EventKind = "lightness"
)

// Event is a user interaction with the widget.
type Event interface {
	Kind() EventKind
	fmt.Stringer
}

// Click is a pointer press on the ring, in device-independent pixels
// relative to the widget's top-left corner.
type Click struct {
	At wheel.Point
}

// Kind implements Event.
func (Click) Kind() EventKind { return KindClick }

func (e Click) String() string { return fmt.Sprintf("click at %s", e.At) }

// SetSaturation is a saturation slider movement.
type SetSaturation struct {
	Value float64
}

// Kind implements Event.
func (SetSaturation) Kind() EventKind { return KindSaturation }

func (e SetSaturation) String() string { return fmt.Sprintf("saturation %.2f", e.Value) }

// SetLightness is a lightness slider movement.
type SetLightness struct {
	Value float64
}

// Kind implements Event.
func (SetLightness) Kind() EventKind { return KindLightness }

func (e SetLightness) String() string { return fmt.Sprintf("lightness %.2f", e.Value) }

// Notification reports a colour chosen by the user.
type Notification struct {
	Hex   string    `json:"hex"`
	Cause EventKind `json:"cause"`
}
