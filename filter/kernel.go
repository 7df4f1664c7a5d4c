package filter

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/improc"
	"github.com/gogpu/improc/internal/cache"
)

// GaussianKernel returns the (2n+1)×(2n+1) Gaussian kernel in row-major
// order. Weights follow exp(-(i²+j²)/(2σ²))/(2πσ²) and are renormalized so
// that the discrete kernel sums to 1. A non-positive sigma yields the
// identity kernel.
func GaussianKernel(n int, sigma float64) []float64 {
	if sigma <= 0 {
		return IdentityKernel(n, n)
	}

	side := 2*n + 1
	kernel := make([]float64, side*side)
	s2 := sigma * sigma
	p := 1 / (2 * math.Pi * s2)

	for i := range side {
		for j := range side {
			di, dj := float64(i-n), float64(j-n)
			kernel[i*side+j] = p * math.Exp(-(di*di+dj*dj)/(2*s2))
		}
	}

	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// BoxKernel returns the uniform (2n+1)×(2n+1) kernel summing to 1.
func BoxKernel(n int) []float64 {
	side := 2*n + 1
	kernel := make([]float64, side*side)
	floats.AddConst(1/float64(len(kernel)), kernel)
	return kernel
}

// IdentityKernel returns the (2h+1)×(2w+1) kernel that leaves an image
// unchanged under convolution.
func IdentityKernel(h, w int) []float64 {
	kernel := make([]float64, (2*h+1)*(2*w+1))
	kernel[h*(2*w+1)+w] = 1
	return kernel
}

type gaussianKey struct {
	n     int
	sigma float64
}

var gaussianKernels = cache.New[gaussianKey, []float64](64)

// CachedGaussianKernel returns GaussianKernel(n, sigma), computing each
// distinct kernel once. The returned slice is shared and must not be
// modified.
func CachedGaussianKernel(n int, sigma float64) []float64 {
	return gaussianKernels.GetOrCreate(gaussianKey{n, sigma}, func() []float64 {
		improc.Logger().Debug("filter: gaussian kernel cache miss", "n", n, "sigma", sigma)
		return GaussianKernel(n, sigma)
	})
}
