package improc

import "image/color"

// SetRGB writes c into the pixel at (x, y), converting from the 8-bit
// domain. Single-channel images receive the red component. Coordinates
// outside the image are ignored so that shapes can be clipped cheaply.
func (m *Image[S]) SetRGB(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}

	var zero S
	p := m.Pixel(x, y)
	p[0] = zero.FromU8(c.R)
	if len(p) >= 3 {
		p[1] = zero.FromU8(c.G)
		p[2] = zero.FromU8(c.B)
	}
}

// DrawLine draws a one-pixel line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm. Parts outside the image are clipped.
func (m *Image[S]) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		m.SetRGB(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
