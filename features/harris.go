package features

import (
	"github.com/gogpu/improc"
	"github.com/gogpu/improc/filter"
)

// HarrisConfig configures the Harris detector.
type HarrisConfig struct {
	// Threshold on the response normalized to [0,1].
	Threshold float64 `yaml:"threshold"`

	// K weighs the squared trace in R = det(M) - K·trace(M)².
	K float64 `yaml:"k"`

	// SuppressionRadius enables non-maximum suppression when positive.
	SuppressionRadius float64 `yaml:"suppression_radius"`
}

// DefaultHarrisConfig returns K = 0.05 with a moderate threshold.
func DefaultHarrisConfig() HarrisConfig {
	return HarrisConfig{
		Threshold:         0.1,
		K:                 0.05,
		SuppressionRadius: 3,
	}
}

// Harris detects corners by the Harris structure-tensor response. A
// keypoint is emitted at every pixel whose normalized response exceeds
// the threshold; its Score is the pixel's grayscale intensity (0..255).
// Suppression ranks candidates by their response, not by Score.
func Harris[S improc.Sample[S]](img *improc.Image[S], cfg HarrisConfig) []KeyPoint {
	g := grayU8(img)
	r := harrisResponse(g, cfg.K)

	var (
		kps  []KeyPoint
		resp []float64
	)
	for y := range g.Height() {
		for x := range g.Width() {
			if v := float64(r.At(x, y)); v > cfg.Threshold {
				kps = append(kps, newKeyPoint(x, y, int(g.At(x, y))))
				resp = append(resp, v)
			}
		}
	}
	improc.Logger().Debug("features: harris", "candidates", len(kps), "threshold", cfg.Threshold)

	if cfg.SuppressionRadius > 0 {
		kps = suppressBy(kps, cfg.SuppressionRadius, func(i int) float64 { return resp[i] })
	}
	return kps
}

// harrisResponse returns R = det(M) - k·trace(M)² per pixel, divided by
// its maximum. M is the Gaussian-weighted structure tensor of g.
func harrisResponse(g *improc.Image[improc.U8], k float64) *improc.Image[improc.F32] {
	ix, iy := filter.Gradients(g)

	ixx := ix.Clone()
	iyy := iy.Clone()
	ixy := ix.Clone()
	for i, dy := range iy.Data() {
		dx := ix.Data()[i]
		ixx.Data()[i] = dx * dx
		iyy.Data()[i] = dy * dy
		ixy.Data()[i] = dx * dy
	}

	for _, m := range []*improc.Image[improc.F32]{ixx, iyy, ixy} {
		filter.GaussianBlur(m, 1, 1, filter.Repeat)
	}

	r := ixx
	for i, a := range ixx.Data() {
		b, c := iyy.Data()[i], ixy.Data()[i]
		det := float64(a)*float64(b) - float64(c)*float64(c)
		trace := float64(a) + float64(b)
		r.Data()[i] = improc.F32(det - k*trace*trace)
	}
	if hi := improc.MaxValue(r); !(hi > 0) {
		improc.Logger().Warn("features: harris response has no positive value", "max", float32(hi))
	}
	improc.Normalize(r)
	return r
}
