package features

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/improc"
	"github.com/gogpu/improc/filter"
	"github.com/gogpu/improc/internal/cache"
)

// pair is one binary test: the sample at (x1, y1) is compared with the
// sample at (x2, y2), both relative to the keypoint.
type pair struct {
	x1, y1, x2, y2 int
}

type patternKey struct {
	seed   uint64
	sigma  float64
	extent int
}

// Sampling pattern parameters. Offsets follow an isotropic Gaussian with
// sigma = patch size / 5 over a 64-pixel patch, clipped to ±extent so that
// any rotation stays within sqrt(2)·extent < orbMargin of the keypoint.
var defaultPattern = patternKey{
	seed:   0x0b1ef,
	sigma:  64.0 / 5,
	extent: 32,
}

var patterns = cache.New[patternKey, *[DescriptorBits]pair](4)

// briefPattern returns the shared sampling pattern.
func briefPattern() *[DescriptorBits]pair {
	return patterns.GetOrCreate(defaultPattern, func() *[DescriptorBits]pair {
		return newPattern(defaultPattern)
	})
}

func newPattern(k patternKey) *[DescriptorBits]pair {
	rng := rand.New(rand.NewPCG(k.seed, k.seed*0x9e3779b97f4a7c15))
	draw := func() int {
		v := int(math.Round(rng.NormFloat64() * k.sigma))
		return min(max(v, -k.extent), k.extent)
	}

	var p [DescriptorBits]pair
	for i := range p {
		p[i] = pair{x1: draw(), y1: draw(), x2: draw(), y2: draw()}
	}
	return &p
}

// rotateOffset rotates (x, y) by the angle with the given sine and cosine
// and rounds to the nearest pixel. Both outputs use the unrotated inputs.
func rotateOffset(x, y int, sin, cos float64) (int, int) {
	fx, fy := float64(x), float64(y)
	rx := fx*cos - fy*sin
	ry := fy*cos + fx*sin
	return int(math.Round(rx)), int(math.Round(ry))
}

// describe computes the descriptor of the keypoint at (x, y) of the
// single-channel image g, steering the pattern by angle. Samples beyond the
// border are clamped to the edge.
func describe(g *improc.Image[improc.U8], x, y int, angle float64, kind DescriptorKind) Descriptor {
	pat := briefPattern()
	sin, cos := math.Sincos(angle)
	steer := angle != 0

	d := Descriptor{Kind: kind}
	for i, p := range pat {
		x1, y1, x2, y2 := p.x1, p.y1, p.x2, p.y2
		if steer {
			x1, y1 = rotateOffset(x1, y1, sin, cos)
			x2, y2 = rotateOffset(x2, y2, sin, cos)
		}
		if sample(g, x+x1, y+y1) < sample(g, x+x2, y+y2) {
			d.SetBit(i)
		}
	}
	return d
}

func sample(g *improc.Image[improc.U8], x, y int) improc.U8 {
	x = min(max(x, 0), g.Width()-1)
	y = min(max(y, 0), g.Height()-1)
	return g.Data()[y*g.Width()+x]
}

// BRIEF returns copies of kps carrying unrotated BRIEF descriptors
// computed on the smoothed grayscale version of img. Keypoint coordinates
// are rounded to the nearest pixel.
func BRIEF[S improc.Sample[S]](img *improc.Image[S], kps []KeyPoint) []KeyPoint {
	g := grayU8(img)
	filter.GaussianBlur(g, 1, 1, filter.Repeat)

	out := make([]KeyPoint, len(kps))
	for i, kp := range kps {
		x, y := int(math.Round(kp.X)), int(math.Round(kp.Y))
		kp.Descriptor = describe(g, x, y, 0, PlainBRIEF)
		out[i] = kp
	}
	return out
}
