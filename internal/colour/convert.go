// Package colour converts between hex strings, RGB triples and HSL triples.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return RGBToHex(rgb.R, rgb.G, rgb.B)
}

// HSL is a colour in HSL space.
// H is in degrees [0, 360), S and L are fractions [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGB converts the colour back to integer channels.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H/360, c.S, c.L)
}

// RGBToHex formats three channels as "#rrggbb" using lowercase digits.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex decodes "#rgb" or "#rrggbb". Shorthand digits are doubled.
// Strings of any other length decode to black; invalid digits decode to zero
// for the channel they appear in.
func ParseHex(hex string) RGB {
	switch len(hex) {
	case 4:
		return RGB{
			R: parseHexByte(hex[1:2] + hex[1:2]),
			G: parseHexByte(hex[2:3] + hex[2:3]),
			B: parseHexByte(hex[3:4] + hex[3:4]),
		}
	case 7:
		return RGB{
			R: parseHexByte(hex[1:3]),
			G: parseHexByte(hex[3:5]),
			B: parseHexByte(hex[5:7]),
		}
	default:
		return RGB{}
	}
}

// Normalise returns the canonical lowercase "#rrggbb" form of hex.
func Normalise(hex string) string {
	return ParseHex(hex).Hex()
}

// parseHexByte converts a two-character hex string to a byte.
func parseHexByte(s string) uint8 {
	var result uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint8
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0
		}
		result = result*16 + d
	}
	return result
}

// HexToHSL decomposes a hex colour into hue (degrees), saturation and lightness.
func HexToHSL(hex string) HSL {
	return RGBToHSL(ParseHex(hex))
}

// RGBToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta == 0 {
		// Achromatic.
		return HSL{H: 0, S: 0, L: l}
	}

	// Sector order matters when two channels share the maximum.
	var h float64
	switch {
	case maxVal == r:
		h = math.Mod((g-b)/delta, 6)
	case maxVal == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h *= 60
	if h < 0 {
		h += 360
	}

	return HSL{
		H: h,
		S: delta / (1 - math.Abs(2*l-1)),
		L: l,
	}
}

// HSLToRGB converts HSL to RGB colour space.
// h is a fraction of a full turn [0, 1), s is saturation (0-1), l is lightness (0-1).
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := toChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toChannel(hueToRGB(p, q, h+1.0/3)),
		G: toChannel(hueToRGB(p, q, h)),
		B: toChannel(hueToRGB(p, q, h-1.0/3)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion. t is a fraction of a turn.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// toChannel rounds a [0, 1] component to the nearest byte.
func toChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}
