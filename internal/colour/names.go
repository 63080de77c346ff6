package colour

// Name returns an approximate colour name for a hue in degrees.
// Ranges are inclusive at the low end and exclusive at the high end, and are
// checked in order; anything from 330 upwards wraps back to red.
func Name(hue float64) string {
	switch {
	case hue >= 0 && hue < 15:
		return "Red"
	case hue >= 15 && hue < 45:
		return "Orange"
	case hue >= 45 && hue < 75:
		return "Yellow"
	case hue >= 75 && hue < 150:
		return "Green"
	case hue >= 150 && hue < 195:
		return "Cyan"
	case hue >= 195 && hue < 255:
		return "Blue"
	case hue >= 255 && hue < 285:
		return "Purple"
	case hue >= 285 && hue < 330:
		return "Magenta"
	default:
		return "Red"
	}
}
