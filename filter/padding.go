package filter

import (
	"fmt"

	"github.com/gogpu/improc"
)

// Padding selects how a window samples beyond the image border.
type Padding uint8

const (
	// Zeros treats outside pixels as the encoding's minimum value.
	Zeros Padding = iota
	// Repeat clamps outside coordinates to the nearest edge pixel.
	Repeat
)

// String returns the padding name.
func (p Padding) String() string {
	switch p {
	case Zeros:
		return "Zeros"
	case Repeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Padding(%d)", uint8(p))
	}
}

// Window calls fn for every offset of the (2h+1)×(2w+1) window centered on
// pixel (x, y) of src, in row-major order. wx in [0, 2w] and wy in [0, 2h]
// are window-relative coordinates; px holds the sample's channels and must
// not be modified.
func Window[S improc.Sample[S]](src *improc.Image[S], x, y, h, w int, pad Padding, fn func(wx, wy int, px []S)) {
	var zero []S
	if pad == Zeros {
		zero = minPixel(src)
	}
	visit(src, x, y, h, w, pad, zero, fn)
}

func minPixel[S improc.Sample[S]](src *improc.Image[S]) []S {
	var s S
	px := make([]S, src.Channels())
	for i := range px {
		px[i] = s.Min()
	}
	return px
}

// visit is Window with the Zeros pixel supplied by the caller, so that
// whole-image filters allocate it once.
func visit[S improc.Sample[S]](src *improc.Image[S], x, y, h, w int, pad Padding, zero []S, fn func(wx, wy int, px []S)) {
	width, height := src.Width(), src.Height()
	for yy := y - h; yy <= y+h; yy++ {
		for xx := x - w; xx <= x+w; xx++ {
			wx, wy := xx-x+w, yy-y+h

			if xx >= 0 && yy >= 0 && xx < width && yy < height {
				fn(wx, wy, src.Pixel(xx, yy))
				continue
			}

			switch pad {
			case Repeat:
				fn(wx, wy, src.Pixel(clamp(xx, 0, width-1), clamp(yy, 0, height-1)))
			default:
				fn(wx, wy, zero)
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
