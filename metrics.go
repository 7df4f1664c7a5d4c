package improc

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MSE returns the mean squared error between a and b, measured in the
// normalized float domain. The images must have the same shape.
func MSE[S Sample[S]](a, b *Image[S]) float64 {
	if !SameShape(a, b) {
		panic(fmt.Errorf("%w: MSE of %dx%dx%d and %dx%dx%d", ErrDimensions,
			a.height, a.width, a.channels, b.height, b.width, b.channels))
	}

	fa := make([]float64, len(a.data))
	fb := make([]float64, len(b.data))
	for i := range a.data {
		fa[i] = float64(a.data[i].F32())
		fb[i] = float64(b.data[i].F32())
	}

	d := floats.Distance(fa, fb, 2)
	return d * d / float64(len(fa))
}
