package wheel

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// PixelBuffer is an owned, square RGBA raster.
// Rasterize is the only writer; callers must treat Data as read-only.
type PixelBuffer struct {
	size int
	data []uint8 // RGBA format, 4 bytes per pixel
}

// Rasterize draws the hue ring for g at full saturation and mid lightness.
// Pixels whose distance from the centre lies outside
// [InnerRadius*PixelRatio, BackingSize/2] stay fully transparent.
func Rasterize(g Geometry) *PixelBuffer {
	size := g.BackingSize()
	if size < 0 {
		size = 0
	}
	buf := &PixelBuffer{
		size: size,
		data: make([]uint8, size*size*4),
	}

	outer := float64(size) / 2
	inner := g.InnerRadius * g.PixelRatio

	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			dx := float64(i) - outer
			dy := float64(j) - outer
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < inner || dist > outer {
				continue
			}

			angle := math.Atan2(dy, dx)*(180/math.Pi) + 180
			rgb := colour.HSLToRGB(angle/360, 1, 0.5)

			idx := (j*size + i) * 4
			buf.data[idx+0] = rgb.R
			buf.data[idx+1] = rgb.G
			buf.data[idx+2] = rgb.B
			buf.data[idx+3] = 255
		}
	}

	return buf
}

// Width returns the width of the buffer.
func (p *PixelBuffer) Width() int {
	return p.size
}

// Height returns the height of the buffer.
func (p *PixelBuffer) Height() int {
	return p.size
}

// Data returns the raw pixel data (RGBA format).
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// RGBAAt returns the pixel at (x, y); out-of-range pixels are transparent.
func (p *PixelBuffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		return color.RGBA{}
	}
	i := (y*p.size + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.size, p.size)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage copies the buffer into an image.RGBA.
// Ring pixels are opaque and the rest are zero, so the data is already
// alpha-premultiplied.
func (p *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the buffer as a PNG image.
func (p *PixelBuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// Thumbnail resamples the buffer to an edge x edge image.
func (p *PixelBuffer) Thumbnail(edge int) *image.RGBA {
	if edge <= 0 {
		edge = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), draw.Src, nil)
	return dst
}
