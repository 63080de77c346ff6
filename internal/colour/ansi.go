package colour

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8

	upperHalfBlock = "▀"
	lowerHalfBlock = "▄"
)

// DisableColourOutput turns off swatches and previews regardless of the
// destination; the CLI sets it from --no-color.
var DisableColourOutput = false

// ColourEnabled reports whether escape sequences should be written to w.
// Only terminals qualify; NO_COLOR disables output everywhere.
func ColourEnabled(w io.Writer) bool {
	if DisableColourOutput || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Swatch returns a solid block of the given colour, width characters wide.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with text centred over it.
// The text colour is black or white, whichever contrasts better.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fgColour := RGB{R: 255, G: 255, B: 255}
	if Luminance(c) > 0.5 {
		fgColour = RGB{}
	}

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg(c) + fg(fgColour) + displayText + ansiReset
}

// FormatLabelled formats a colour with a label and swatch.
func FormatLabelled(c RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(c, width), label, c.Hex())
}

// RenderImage draws img with upper half blocks, two pixel rows per text line.
// Fully transparent pixels are left as blank terminal cells.
func RenderImage(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := opaque(img, x, y)
			var low RGB
			var bottomOK bool
			if y+1 < b.Max.Y {
				low, bottomOK = opaque(img, x, y+1)
			}
			switch {
			case topOK && bottomOK:
				sb.WriteString(fg(top) + bg(low) + upperHalfBlock + ansiReset)
			case topOK:
				sb.WriteString(fg(top) + upperHalfBlock + ansiReset)
			case bottomOK:
				sb.WriteString(fg(low) + lowerHalfBlock + ansiReset)
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// opaque returns the colour at (x, y) and whether it is at least half opaque.
func opaque(img image.Image, x, y int) (RGB, bool) {
	r, g, b, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return RGB{}, false
	}
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, true
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
