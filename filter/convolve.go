package filter

import (
	"fmt"

	"github.com/gogpu/improc"
)

// Convolve replaces every sample of m by the weighted sum of its
// (2h+1)×(2w+1) neighborhood in the same channel. kernel holds the weights
// in window row-major order and must have exactly (2h+1)(2w+1) entries.
//
// Sums are computed in the float domain from a snapshot of m and converted
// back to the image's encoding (U8 results are clamped and rounded).
func Convolve[S improc.Sample[S]](m *improc.Image[S], h, w int, kernel []float64, pad Padding) *improc.Image[S] {
	side := 2*w + 1
	if h < 0 || w < 0 || len(kernel) != (2*h+1)*side {
		panic(fmt.Errorf("%w: %d weights for a %dx%d window", improc.ErrKernelSize, len(kernel), 2*h+1, side))
	}

	src := m.Clone()
	zero := minPixel(src)
	acc := make([]float64, m.Channels())

	var s S
	for y := range m.Height() {
		for x := range m.Width() {
			clear(acc)
			visit(src, x, y, h, w, pad, zero, func(wx, wy int, px []S) {
				k := kernel[wy*side+wx]
				if k == 0 {
					return
				}
				for c, v := range px {
					acc[c] += float64(v.F32()) * k
				}
			})

			out := m.Pixel(x, y)
			for c := range out {
				out[c] = s.FromF32(float32(acc[c]))
			}
		}
	}
	return m
}

// Blur is a box blur: convolution with a uniform (2n+1)×(2n+1) kernel.
func Blur[S improc.Sample[S]](m *improc.Image[S], n int, pad Padding) *improc.Image[S] {
	return Convolve(m, n, n, BoxKernel(n), pad)
}

// GaussianBlur convolves m with the normalized (2n+1)×(2n+1) Gaussian kernel
// of the given sigma.
func GaussianBlur[S improc.Sample[S]](m *improc.Image[S], n int, sigma float64, pad Padding) *improc.Image[S] {
	return Convolve(m, n, n, CachedGaussianKernel(n, sigma), pad)
}
