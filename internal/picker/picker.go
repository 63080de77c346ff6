package picker

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huewheel/internal/wheel"
)

// Picker is a mounted colour wheel: a fixed geometry, its ring raster and the
// current selection.
//
// A Picker is driven by a single event loop and is not safe for concurrent use.
type Picker struct {
	geom     wheel.Geometry
	ring     *wheel.PixelBuffer
	state    State
	onChange func(Notification)
	logger   hclog.Logger
	initial  string
}

// Option configures a Picker.
type Option func(*Picker)

// WithOnChange sets the callback invoked once per accepted user interaction.
func WithOnChange(fn func(Notification)) Option {
	return func(p *Picker) {
		p.onChange = fn
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Picker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInitialColour synchronises hex at mount time without notifying.
func WithInitialColour(hex string) Option {
	return func(p *Picker) {
		p.initial = hex
	}
}

// New mounts a picker: it validates g and rasterises the ring once.
func New(g wheel.Geometry, opts ...Option) (*Picker, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("failed to mount picker: %w", err)
	}

	p := &Picker{
		geom:   g,
		state:  DefaultState(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.ring = wheel.Rasterize(g)
	p.logger.Debug("mounted", "geometry", g.String(), "backing_size", p.ring.Width())

	if p.initial != "" {
		p.ApplyExternalColor(p.initial)
	}

	return p, nil
}

// Geometry returns the picker's fixed geometry.
func (p *Picker) Geometry() wheel.Geometry {
	return p.geom
}

// Ring returns the raster produced at mount. It must not be modified.
func (p *Picker) Ring() *wheel.PixelBuffer {
	return p.ring
}

// State returns the current selection.
func (p *Picker) State() State {
	return p.state
}

// ApplyExternalColor mirrors a host-supplied colour. It never calls the
// change callback, including when hex echoes a previous notification; in that
// case the click marker is replaced by the midline marker for the same hue.
func (p *Picker) ApplyExternalColor(hex string) State {
	if hex == "" {
		return p.state
	}
	p.state = Sync(p.geom, p.state, hex)
	p.logger.Debug("external colour applied", "hex", hex, "hue", p.state.Hue, "name", p.state.Name)
	return p.state
}

// ApplyUserInteraction applies ev and reports whether it was accepted.
// Accepted events invoke the change callback exactly once.
func (p *Picker) ApplyUserInteraction(ev Event) (State, bool) {
	st, note := p.Handle(ev)
	return st, note != nil
}

// Handle applies ev like ApplyUserInteraction and returns the notification
// that was passed to the change callback, or nil when ev was ignored.
func (p *Picker) Handle(ev Event) (State, *Notification) {
	next, note := Interact(p.geom, p.state, ev)
	if note == nil {
		p.logger.Trace("interaction ignored", "event", fmt.Sprint(ev))
		return p.state, nil
	}

	p.state = next
	p.logger.Debug("colour changed", "event", ev.String(), "hex", note.Hex, "name", next.Name)
	if p.onChange != nil {
		p.onChange(*note)
	}
	return p.state, note
}
