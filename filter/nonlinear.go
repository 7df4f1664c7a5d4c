package filter

import (
	"slices"

	"github.com/gogpu/improc"
)

// NonLinear replaces every sample of m by reduce applied to the samples of
// its (2h+1)×(2w+1) neighborhood in the same channel, in window order.
// reduce may reorder its argument; the slice is reused between calls.
func NonLinear[S improc.Sample[S]](m *improc.Image[S], h, w int, reduce func(samples []S) S, pad Padding) *improc.Image[S] {
	src := m.Clone()
	zero := minPixel(src)
	channels := m.Channels()
	n := (2*h + 1) * (2*w + 1)

	bufs := make([][]S, channels)
	for c := range bufs {
		bufs[c] = make([]S, 0, n)
	}

	for y := range m.Height() {
		for x := range m.Width() {
			for c := range bufs {
				bufs[c] = bufs[c][:0]
			}
			visit(src, x, y, h, w, pad, zero, func(_, _ int, px []S) {
				for c, v := range px {
					bufs[c] = append(bufs[c], v)
				}
			})

			out := m.Pixel(x, y)
			for c := range out {
				out[c] = reduce(bufs[c])
			}
		}
	}
	return m
}

// Median replaces every sample by the median of its (2n+1)×(2n+1)
// neighborhood. The window size is odd, so the median is a sample.
func Median[S improc.Sample[S]](m *improc.Image[S], n int, pad Padding) *improc.Image[S] {
	return NonLinear(m, n, n, median[S], pad)
}

func median[S improc.Sample[S]](samples []S) S {
	slices.SortFunc(samples, func(a, b S) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return samples[len(samples)/2]
}
