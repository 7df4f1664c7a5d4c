package features

import (
	"math"

	"github.com/gogpu/improc"
	"github.com/gogpu/improc/filter"
)

// orbMargin leaves room for the largest rotated pattern offset.
const orbMargin = 46

// ORBConfig configures the ORB detector.
type ORBConfig struct {
	// Levels is the number of pyramid levels, each half the size of the
	// previous one.
	Levels int `yaml:"levels"`

	// Threshold is the FAST intensity threshold.
	Threshold int `yaml:"threshold"`

	// Margin is the FAST border margin on every level. Values below the
	// default risk pattern samples being clamped at the border.
	Margin int `yaml:"margin"`

	// PatchRadius is the radius of the orientation patch.
	PatchRadius int `yaml:"patch_radius"`

	// SuppressionRadius enables non-maximum suppression across all levels
	// when positive. It is measured in base-image pixels.
	SuppressionRadius float64 `yaml:"suppression_radius"`
}

// DefaultORBConfig returns 4 levels, margin 46 and a radius-16 patch.
func DefaultORBConfig() ORBConfig {
	return ORBConfig{
		Levels:            4,
		Threshold:         20,
		Margin:            orbMargin,
		PatchRadius:       16,
		SuppressionRadius: 5,
	}
}

// ORB detects oriented FAST keypoints over an image pyramid and describes
// them with rotated BRIEF. Coordinates are returned in base-image pixels
// with Octave set to the source level.
func ORB[S improc.Sample[S]](img *improc.Image[S], cfg ORBConfig) []KeyPoint {
	level := grayU8(img)
	filter.GaussianBlur(level, 1, 1, filter.Repeat)

	half := halfWidths(cfg.PatchRadius)
	var kps []KeyPoint

	for octave := range cfg.Levels {
		if octave > 0 {
			level = halve(level)
			filter.GaussianBlur(level, 1, 1, filter.Repeat)
		}
		if level.Width() <= 2*cfg.Margin || level.Height() <= 2*cfg.Margin {
			log := improc.Logger().Debug
			if octave == 0 {
				log = improc.Logger().Warn
			}
			log("features: orb level too small", "octave", octave,
				"width", level.Width(), "height", level.Height(), "margin", cfg.Margin)
			break
		}

		found := detectFAST(level, cfg.Threshold, cfg.Margin)
		scale := math.Ldexp(1, octave)
		for _, kp := range found {
			x, y := int(kp.X), int(kp.Y)
			kp.Angle = orientation(level, x, y, half)
			kp.Descriptor = describe(level, x, y, kp.Angle, RotatedBRIEF)
			kp.X *= scale
			kp.Y *= scale
			kp.Octave = octave
			kps = append(kps, kp)
		}
		improc.Logger().Debug("features: orb level", "octave", octave,
			"width", level.Width(), "height", level.Height(), "keypoints", len(found))
	}

	if cfg.SuppressionRadius > 0 {
		kps = Suppress(kps, cfg.SuppressionRadius)
	}
	return kps
}

// halfWidths returns, for each row offset v in [0, r], the half-width of
// the circular patch of radius r at that row.
func halfWidths(r int) []int {
	if r <= 0 {
		return []int{0}
	}
	hw := make([]int, r+1)
	for v := range hw {
		c := min(max(float64(v)/float64(r), -1), 1)
		hw[v] = int(math.Round(float64(r) * math.Sin(math.Acos(c))))
	}
	return hw
}

// orientation returns the angle of the intensity centroid of the circular
// patch around (x, y), atan2(m01, m10). Pixels outside the image are
// skipped.
func orientation(g *improc.Image[improc.U8], x, y int, half []int) float64 {
	r := len(half) - 1
	w, h := g.Width(), g.Height()
	data := g.Data()

	var m10, m01 float64
	for v := -r; v <= r; v++ {
		yy := y + v
		if yy < 0 || yy >= h {
			continue
		}
		hw := half[abs(v)]
		var row float64
		for u := -hw; u <= hw; u++ {
			xx := x + u
			if xx < 0 || xx >= w {
				continue
			}
			i := float64(data[yy*w+xx])
			m10 += float64(u) * i
			row += i
		}
		m01 += float64(v) * row
	}
	return math.Atan2(m01, m10)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
