package improc

import (
	"fmt"

	"github.com/gogpu/improc/internal/color"
)

// Grayscale converts the image to the Gray color space in place.
//
// RGB images keep three channels, each holding the BT.601 luma; call
// ToSingleChannel to collapse them. HSL images are replaced by their
// lightness channel as a single-channel image. Gray images are unchanged.
func (m *Image[S]) Grayscale() *Image[S] {
	switch m.color {
	case Gray:
		return m
	case RGB:
		return m.rgbToGray()
	case HSL:
		return m.hslToGray()
	default:
		panic(fmt.Errorf("%w: %v to Gray", ErrColorSpace, m.color))
	}
}

// HSL converts the image to the HSL color space in place. Gray images are
// treated as achromatic RGB (expanded to three channels when needed).
func (m *Image[S]) HSL() *Image[S] {
	switch m.color {
	case HSL:
		return m
	case RGB:
		return m.rgbToHSL()
	case Gray:
		if m.channels == 1 {
			*m = *m.ToThreeChannels()
		}
		m.color = RGB
		return m.rgbToHSL()
	default:
		panic(fmt.Errorf("%w: %v to HSL", ErrColorSpace, m.color))
	}
}

// RGB converts the image to the RGB color space in place.
//
// Gray images cannot be converted: the color information is gone. Use
// ToThreeChannels to replicate luminance, or FakeColor to pseudo-color it.
func (m *Image[S]) RGB() *Image[S] {
	switch m.color {
	case RGB:
		return m
	case HSL:
		return m.hslToRGB()
	default:
		panic(fmt.Errorf("%w: %v to RGB (use ToThreeChannels or FakeColor)", ErrColorSpace, m.color))
	}
}

// ToSingleChannel returns a one-channel copy holding the first channel of
// each pixel. The image must be tagged Gray.
func (m *Image[S]) ToSingleChannel() *Image[S] {
	m.requireColor(Gray)

	res := New[S](m.height, m.width, 1)
	for i := range res.data {
		res.data[i] = m.data[i*m.channels]
	}
	res.color = Gray
	return res
}

// ToThreeChannels returns a three-channel copy replicating the single
// channel of m. The color tag is kept.
func (m *Image[S]) ToThreeChannels() *Image[S] {
	m.requireChannels(1)

	res := New[S](m.height, m.width, 3)
	for i, v := range m.data {
		res.data[3*i] = v
		res.data[3*i+1] = v
		res.data[3*i+2] = v
	}
	res.color = m.color
	return res
}

func (m *Image[S]) rgbToGray() *Image[S] {
	m.requireChannels(3)

	var zero S
	m.ForEachPixel(func(p []S) {
		g := zero.FromF32(color.Luma(p[0].F32(), p[1].F32(), p[2].F32()))
		p[0], p[1], p[2] = g, g, g
	})
	m.color = Gray
	return m
}

func (m *Image[S]) rgbToHSL() *Image[S] {
	m.requireChannels(3)

	var zero S
	m.ForEachPixel(func(p []S) {
		h, s, l := color.RGBToHSL(p[0].F32(), p[1].F32(), p[2].F32())
		p[0], p[1], p[2] = zero.FromF32(h), zero.FromF32(s), zero.FromF32(l)
	})
	m.color = HSL
	return m
}

func (m *Image[S]) hslToRGB() *Image[S] {
	m.requireChannels(3)

	var zero S
	m.ForEachPixel(func(p []S) {
		r, g, b := color.HSLToRGB(p[0].F32(), p[1].F32(), p[2].F32())
		p[0], p[1], p[2] = zero.FromF32(r), zero.FromF32(g), zero.FromF32(b)
	})
	m.color = RGB
	return m
}

func (m *Image[S]) hslToGray() *Image[S] {
	m.requireChannels(3)

	res := New[S](m.height, m.width, 1)
	for i := range res.data {
		res.data[i] = m.data[3*i+2]
	}
	res.color = Gray
	*m = *res
	return m
}
