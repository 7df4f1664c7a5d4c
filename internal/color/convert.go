package color

import "math"

const inv255 = float32(1.0 / 255.0)

// ByteToFloat maps an 8-bit component [0,255] to [0,1].
func ByteToFloat(v uint8) float32 {
	return float32(v) * inv255
}

// FloatToByte maps a [0,1] component to [0,255] with rounding.
// Values outside [0,1] (and NaN) are clamped so that the 8-bit domain
// never wraps.
func FloatToByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// RGBToHSL converts an RGB triple to hue, saturation and lightness.
// Hue is normalized to [0,1) (degrees / 360).
//
// Achromatic colors (zero chroma) get hue 0 and saturation 0. Lightness 0
// or 1 makes the saturation denominator vanish; saturation is 0 there.
func RGBToHSL(r, g, b float32) (h, s, l float32) {
	lo := min3(r, g, b)
	hi := max3(r, g, b)
	c := hi - lo
	l = lo + c/2

	if c == 0 {
		return 0, 0, l
	}

	if d := min(l, 1-l); d > 0 {
		s = (hi - l) / d
	}

	switch hi {
	case r:
		h = 60 * ((g - b) / c)
	case g:
		h = 60 * (2 + (b-r)/c)
	default:
		h = 60 * (4 + (r-g)/c)
	}
	if h < 0 {
		h += 360
	}

	return h / 360, s, l
}

// HSLToRGB converts hue (in [0,1]), saturation and lightness back to RGB.
// Each of the six hue sectors has its own component ordering.
func HSLToRGB(h, s, l float32) (r, g, b float32) {
	h6 := h * 6
	c := (1 - abs(2*l-1)) * s
	x := c * (1 - abs(float32(math.Mod(float64(h6), 2))-1))
	m := l - c/2

	switch {
	case h6 <= 1:
		r, g, b = c, x, 0
	case h6 <= 2:
		r, g, b = x, c, 0
	case h6 <= 3:
		r, g, b = 0, c, x
	case h6 <= 4:
		r, g, b = 0, x, c
	case h6 <= 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
