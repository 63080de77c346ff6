// Package wheel rasterises the hue ring and maps pointer positions onto it.
//
// All public coordinates are in device-independent pixels measured from the
// top-left corner of the square widget area. The backing raster is scaled by
// the geometry's pixel ratio.
package wheel

import (
	"errors"
	"fmt"
	"math"
)

// Stock widget layout.
const (
	DefaultDisplaySize = 300
	DefaultInnerRadius = 80
	DefaultPixelRatio  = 1

	// MaxBackingSize caps the edge of the backing raster in pixels.
	MaxBackingSize = 16384
)

// ErrInvalidGeometry is returned by Validate for unusable ring dimensions.
var ErrInvalidGeometry = errors.New("invalid wheel geometry")

// Geometry describes the fixed dimensions of a hue ring.
type Geometry struct {
	// DisplaySize is the edge length of the square widget area.
	DisplaySize float64 `json:"display_size"`
	// InnerRadius is the radius of the transparent hole.
	InnerRadius float64 `json:"inner_radius"`
	// PixelRatio scales device-independent pixels to backing pixels.
	PixelRatio float64 `json:"pixel_ratio"`
}

// DefaultGeometry returns the stock 300px ring with an 80px hole.
func DefaultGeometry() Geometry {
	return Geometry{
		DisplaySize: DefaultDisplaySize,
		InnerRadius: DefaultInnerRadius,
		PixelRatio:  DefaultPixelRatio,
	}
}

// Validate checks that the ring has a positive width, a usable pixel ratio
// and a backing raster no larger than MaxBackingSize on each edge.
func (g Geometry) Validate() error {
	if g.DisplaySize <= 0 || math.IsNaN(g.DisplaySize) || math.IsInf(g.DisplaySize, 0) {
		return fmt.Errorf("%w: display size must be positive, got %v", ErrInvalidGeometry, g.DisplaySize)
	}
	if g.PixelRatio <= 0 || math.IsNaN(g.PixelRatio) || math.IsInf(g.PixelRatio, 0) {
		return fmt.Errorf("%w: pixel ratio must be positive, got %v", ErrInvalidGeometry, g.PixelRatio)
	}
	if edge := g.DisplaySize * g.PixelRatio; edge > MaxBackingSize {
		return fmt.Errorf("%w: backing edge %v exceeds %d pixels", ErrInvalidGeometry, edge, MaxBackingSize)
	}
	// Zero is a full disc.
	if g.InnerRadius < 0 || math.IsNaN(g.InnerRadius) {
		return fmt.Errorf("%w: inner radius must not be negative, got %v", ErrInvalidGeometry, g.InnerRadius)
	}
	if g.InnerRadius >= g.OuterRadius() {
		return fmt.Errorf("%w: inner radius %v must be smaller than outer radius %v",
			ErrInvalidGeometry, g.InnerRadius, g.OuterRadius())
	}
	return nil
}

// OuterRadius is half the display size.
func (g Geometry) OuterRadius() float64 {
	return g.DisplaySize / 2
}

// MidlineRadius is the average of the inner and outer radius.
func (g Geometry) MidlineRadius() float64 {
	return (g.InnerRadius + g.OuterRadius()) / 2
}

// Center returns the centre of the widget area.
func (g Geometry) Center() Point {
	c := g.DisplaySize / 2
	return Point{X: c, Y: c}
}

// BackingSize is the edge length of the backing raster in pixels.
func (g Geometry) BackingSize() int {
	return int(math.Floor(g.DisplaySize * g.PixelRatio))
}

// String implements fmt.Stringer.
func (g Geometry) String() string {
	return fmt.Sprintf("%gpx ring (inner %gpx, ratio %g)", g.DisplaySize, g.InnerRadius, g.PixelRatio)
}

// Point is a position in device-independent pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
