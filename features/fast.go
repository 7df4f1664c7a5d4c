package features

import "github.com/gogpu/improc"

// FASTConfig configures the FAST detector.
type FASTConfig struct {
	// Threshold is the intensity difference (0..255) a circle pixel needs
	// to count as brighter or darker than the center.
	Threshold int `yaml:"threshold"`

	// Margin excludes pixels closer than Margin to the border. Values
	// below 3 are raised to 3, the circle radius.
	Margin int `yaml:"margin"`

	// SuppressionRadius enables non-maximum suppression when positive.
	SuppressionRadius float64 `yaml:"suppression_radius"`
}

// DefaultFASTConfig returns the configuration used by the CLI. The margin
// leaves room for a radius-16 orientation patch.
func DefaultFASTConfig() FASTConfig {
	return FASTConfig{
		Threshold:         20,
		Margin:            16,
		SuppressionRadius: 3,
	}
}

// circle is the radius-3 Bresenham circle, clockwise from the top.
var circle = [16][2]int{
	{0, -3}, {1, -3}, {2, -2}, {3, -1},
	{3, 0}, {3, 1}, {2, 2}, {1, 3},
	{0, 3}, {-1, 3}, {-2, 2}, {-3, 1},
	{-3, 0}, {-3, -1}, {-2, -2}, {-1, -3},
}

// minArc is the number of contiguous circle pixels that must all be
// brighter or all be darker than the center.
const minArc = 12

// FAST detects segment-test corners. Each keypoint's Score is the sum of
// center minus circle intensities.
func FAST[S improc.Sample[S]](img *improc.Image[S], cfg FASTConfig) []KeyPoint {
	kps := detectFAST(grayU8(img), cfg.Threshold, cfg.Margin)
	improc.Logger().Debug("features: fast", "candidates", len(kps), "threshold", cfg.Threshold)

	if cfg.SuppressionRadius > 0 {
		kps = Suppress(kps, cfg.SuppressionRadius)
	}
	return kps
}

// detectFAST runs the segment test over a single-channel image.
func detectFAST(g *improc.Image[improc.U8], t, margin int) []KeyPoint {
	margin = max(margin, 3)
	w, h := g.Width(), g.Height()
	data := g.Data()

	var offsets [16]int
	for i, o := range circle {
		offsets[i] = o[1]*w + o[0]
	}

	var kps []KeyPoint
	for y := margin; y < h-margin; y++ {
		for x := margin; x < w-margin; x++ {
			i := y*w + x
			p := int(data[i])
			up, down := p+t, p-t

			if !cardinalTest(data, i, &offsets, up, down) {
				continue
			}
			if longestArc(data, i, &offsets, up, down) < minArc {
				continue
			}
			kps = append(kps, newKeyPoint(x, y, fastScore(data, i, &offsets)))
		}
	}
	return kps
}

// cardinalTest requires three of the four compass pixels to be strictly
// brighter than up, or three strictly darker than down.
func cardinalTest(data []improc.U8, i int, offsets *[16]int, up, down int) bool {
	above, below := 0, 0
	for _, k := range [4]int{0, 4, 8, 12} {
		v := int(data[i+offsets[k]])
		if v > up {
			above++
		} else if v < down {
			below++
		}
	}
	return above >= 3 || below >= 3
}

const (
	similar = iota
	brighter
	darker
)

// longestArc returns the longest run of circle pixels that are all
// brighter or all darker, wrapping from the last pixel to the first.
func longestArc(data []improc.U8, i int, offsets *[16]int, up, down int) int {
	var class [16]uint8
	for k, o := range offsets {
		v := int(data[i+o])
		switch {
		case v > up:
			class[k] = brighter
		case v < down:
			class[k] = darker
		default:
			class[k] = similar
		}
	}

	best, run := 0, 0
	for k := range 2 * len(class) {
		c := class[k%len(class)]
		if c == similar || (run > 0 && c != class[(k-1)%len(class)]) {
			run = 0
		}
		if c != similar {
			run++
			best = max(best, run)
		}
	}
	return min(best, len(class))
}

func fastScore(data []improc.U8, i int, offsets *[16]int) int {
	p := int(data[i])
	score := 0
	for _, o := range offsets {
		score += p - int(data[i+o])
	}
	return score
}
