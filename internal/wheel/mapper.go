package wheel

import "math"

// scaled returns p relative to the ring centre in backing pixels, plus its
// distance from the centre.
func (g Geometry) scaled(p Point) (x, y, dist float64) {
	c := g.DisplaySize / 2
	x = (p.X - c) * g.PixelRatio
	y = (p.Y - c) * g.PixelRatio
	return x, y, math.Sqrt(x*x + y*y)
}

// Contains reports whether p lies on the ring, edges included.
func Contains(g Geometry, p Point) bool {
	_, _, dist := g.scaled(p)
	return dist >= g.InnerRadius*g.PixelRatio && dist <= g.OuterRadius()*g.PixelRatio
}

// HueAt maps a pointer position to a hue in degrees [0, 360).
// It returns false when p is off the ring.
func HueAt(g Geometry, p Point) (float64, bool) {
	if !Contains(g, p) {
		return 0, false
	}
	x, y, _ := g.scaled(p)
	angle := math.Atan2(y, x)*(180/math.Pi) + 180
	// atan2 yields +π on the negative x axis, which lands exactly on 360.
	if angle >= 360 {
		angle -= 360
	}
	return angle, true
}

// MarkerFor places a marker for hue on the ring's midline.
// It inverts the angle transform used by HueAt, so HueAt(MarkerFor(h)) == h
// up to floating point error, but it does not recover the clicked point.
func MarkerFor(g Geometry, hue float64) Point {
	theta := (hue - 180) * math.Pi / 180
	c := g.Center()
	r := g.MidlineRadius()
	return Point{
		X: c.X + math.Cos(theta)*r,
		Y: c.Y + math.Sin(theta)*r,
	}
}
