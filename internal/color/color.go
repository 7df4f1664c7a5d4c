// Package color provides the scalar color math behind improc's color
// space engine. All functions operate on normalized float32 components in
// [0,1]; callers convert samples into that domain first.
package color

// Luma weights (ITU-R BT.601).
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns the BT.601 luma of an RGB triple.
func Luma(r, g, b float32) float32 {
	return LumaR*r + LumaG*g + LumaB*b
}

func min3(a, b, c float32) float32 {
	return min(a, b, c)
}

func max3(a, b, c float32) float32 {
	return max(a, b, c)
}
