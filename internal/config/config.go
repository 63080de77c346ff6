// Package config resolves the wheel geometry from defaults, the environment
// and command-line overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/huewheel/internal/wheel"
)

// Environment variables read by WithEnvConfig.
const (
	EnvSize        = "HUEWHEEL_SIZE"
	EnvInnerRadius = "HUEWHEEL_INNER_RADIUS"
	EnvPixelRatio  = "HUEWHEEL_PIXEL_RATIO"
)

// Overrides holds explicitly set values; nil fields are ignored.
type Overrides struct {
	DisplaySize *float64
	InnerRadius *float64
	PixelRatio  *float64
}

// Builder provides a fluent interface for constructing a Geometry.
// Precedence, lowest first: defaults, environment, overrides.
type Builder struct {
	base      wheel.Geometry
	useEnv    bool
	lookupEnv func(string) (string, bool)
	overrides Overrides
}

// NewBuilder creates a builder seeded with the default geometry.
func NewBuilder() *Builder {
	return &Builder{
		base:      wheel.DefaultGeometry(),
		lookupEnv: os.LookupEnv,
	}
}

// WithEnvConfig loads configuration from environment variables.
// Reads HUEWHEEL_SIZE, HUEWHEEL_INNER_RADIUS and HUEWHEEL_PIXEL_RATIO.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup swaps the environment lookup (useful for testing).
func (b *Builder) WithLookup(fn func(string) (string, bool)) *Builder {
	b.lookupEnv = fn
	return b
}

// WithOverrides applies values that take precedence over everything else.
func (b *Builder) WithOverrides(o Overrides) *Builder {
	b.overrides = o
	return b
}

// Build resolves and validates the geometry.
func (b *Builder) Build() (wheel.Geometry, error) {
	g := b.base

	if b.useEnv {
		for _, v := range []struct {
			key string
			dst *float64
		}{
			{EnvSize, &g.DisplaySize},
			{EnvInnerRadius, &g.InnerRadius},
			{EnvPixelRatio, &g.PixelRatio},
		} {
			raw, ok := b.lookupEnv(v.key)
			if !ok || strings.TrimSpace(raw) == "" {
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return wheel.Geometry{}, fmt.Errorf("invalid %s %q: %w", v.key, raw, err)
			}
			*v.dst = f
		}
	}

	if b.overrides.DisplaySize != nil {
		g.DisplaySize = *b.overrides.DisplaySize
	}
	if b.overrides.InnerRadius != nil {
		g.InnerRadius = *b.overrides.InnerRadius
	}
	if b.overrides.PixelRatio != nil {
		g.PixelRatio = *b.overrides.PixelRatio
	}

	if err := g.Validate(); err != nil {
		return wheel.Geometry{}, err
	}
	return g, nil
}
