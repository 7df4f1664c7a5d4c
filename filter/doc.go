// Package filter implements windowed filters over improc images.
//
// Every filter is built on one primitive, Window, which visits the
// (2h+1)×(2w+1) neighborhood of a pixel in row-major order and resolves
// out-of-bounds offsets with a Padding policy:
//
//   - Zeros fabricates a pixel filled with the encoding's minimum
//   - Repeat clamps the coordinates to the nearest edge pixel
//
// Linear filters (Convolve, Blur, GaussianBlur) and rank filters
// (NonLinear, Median) read from a snapshot of the input and write into the
// input itself, so they can be chained:
//
//	filter.Median(img, 1, filter.Repeat)
//	filter.GaussianBlur(img, 2, 1.5, filter.Repeat)
//
// Gradients and Sobel return new float images and leave their input alone.
package filter
