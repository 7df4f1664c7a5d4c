package filter

import (
	"math"

	"github.com/gogpu/improc"
)

// Sobel kernels in window row-major order. sobelX responds to intensity
// increasing to the right, sobelY to intensity increasing downwards.
var (
	sobelX = []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
	sobelY = []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)

// Gradients returns the horizontal and vertical Sobel responses of m,
// computed per channel in the float domain with Repeat padding.
func Gradients[S improc.Sample[S]](m *improc.Image[S]) (gx, gy *improc.Image[improc.F32]) {
	gx = improc.ToF32(m)
	gy = gx.Clone()
	Convolve(gx, 1, 1, sobelX, Repeat)
	Convolve(gy, 1, 1, sobelY, Repeat)
	return gx, gy
}

// Sobel returns the gradient magnitude of m normalized to [0,1] by its
// maximum, as a single-channel Gray image. For multi-channel input the
// first channel's magnitude is kept.
func Sobel[S improc.Sample[S]](m *improc.Image[S]) *improc.Image[improc.F32] {
	gx, gy := Gradients(m)

	mag := gx.Data()
	for i, v := range gy.Data() {
		mag[i] = improc.F32(math.Sqrt(float64(mag[i]*mag[i] + v*v)))
	}
	improc.Normalize(gx)

	gx.SetColor(improc.Gray)
	if gx.Channels() > 1 {
		return gx.ToSingleChannel()
	}
	return gx
}
