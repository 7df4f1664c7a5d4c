package features

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gogpu/improc"
)

// blocks returns a size×size single-channel image of random 4×4 blocks.
func blocks(size int, seed uint64) *improc.Image[improc.U8] {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	m := improc.New[improc.U8](size, size, 1)
	for by := 0; by < size; by += 4 {
		for bx := 0; bx < size; bx += 4 {
			v := improc.U8(rng.IntN(256))
			for y := by; y < min(by+4, size); y++ {
				for x := bx; x < min(bx+4, size); x++ {
					m.Pixel(x, y)[0] = v
				}
			}
		}
	}
	return m
}

func TestRotateOffset(t *testing.T) {
	sin, cos := math.Sincos(math.Pi / 6)

	// x' = 10·cos30° - 5·sin30° = 6.16, y' = 5·cos30° + 10·sin30° = 9.33.
	// Rotating y from the already rotated x would give 7.41 instead.
	if x, y := rotateOffset(10, 5, sin, cos); x != 6 || y != 9 {
		t.Errorf("rotateOffset(10, 5, 30°) = (%d, %d), want (6, 9)", x, y)
	}

	sin, cos = math.Sincos(math.Pi / 2)
	if x, y := rotateOffset(7, -3, sin, cos); x != 3 || y != 7 {
		t.Errorf("rotateOffset(7, -3, 90°) = (%d, %d), want (3, 7)", x, y)
	}

	sin, cos = math.Sincos(math.Pi)
	if x, y := rotateOffset(4, 9, sin, cos); x != -4 || y != -9 {
		t.Errorf("rotateOffset(4, 9, 180°) = (%d, %d), want (-4, -9)", x, y)
	}
}

func TestBriefPattern(t *testing.T) {
	p := briefPattern()
	if p != briefPattern() {
		t.Error("briefPattern should be shared")
	}
	if *newPattern(defaultPattern) != *p {
		t.Error("pattern is not deterministic")
	}

	lim := defaultPattern.extent
	distinct := 0
	for _, q := range p {
		for _, v := range []int{q.x1, q.y1, q.x2, q.y2} {
			if v < -lim || v > lim {
				t.Fatalf("offset %d outside ±%d", v, lim)
			}
		}
		if q.x1 != q.x2 || q.y1 != q.y2 {
			distinct++
		}
	}
	if distinct < DescriptorBits*9/10 {
		t.Errorf("only %d of %d pairs compare distinct pixels", distinct, DescriptorBits)
	}

	// Every rotation of the pattern must stay inside the ORB margin.
	if r := math.Sqrt2 * float64(lim); math.Round(r) >= orbMargin {
		t.Errorf("rotated extent %v reaches margin %d", r, orbMargin)
	}
}

func TestRotatedBRIEFInvariance(t *testing.T) {
	const n, c = 129, 64
	a := blocks(n, 9)

	// b is a rotated by 90°: b[c+v][c+u] = a[c-u][c+v].
	b := improc.New[improc.U8](n, n, 1)
	for v := -c; v <= c; v++ {
		for u := -c; u <= c; u++ {
			b.Pixel(c+u, c+v)[0] = a.At(c+v, c-u)
		}
	}

	da := describe(a, c, c, 0, RotatedBRIEF)
	db := describe(b, c, c, math.Pi/2, RotatedBRIEF)
	if d := da.Distance(&db); d != 0 {
		t.Errorf("descriptor distance after 90° rotation = %d, want 0", d)
	}

	other := describe(a, c+7, c-5, 0, RotatedBRIEF)
	if d := da.Distance(&other); d == 0 {
		t.Error("descriptors of different patches should differ")
	}
}

func TestOrientation(t *testing.T) {
	half := halfWidths(16)
	tests := []struct {
		name   string
		bright func(x, y int) bool
		want   float64
	}{
		{"right", func(x, _ int) bool { return x > 40 }, 0},
		{"below", func(_, y int) bool { return y > 40 }, math.Pi / 2},
		{"left", func(x, _ int) bool { return x < 40 }, math.Pi},
		{"above", func(_, y int) bool { return y < 40 }, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := improc.New[improc.U8](81, 81, 1)
			for y := range 81 {
				for x := range 81 {
					if tt.bright(x, y) {
						g.Pixel(x, y)[0] = 200
					}
				}
			}
			got := orientation(g, 40, 40, half)
			if d := math.Remainder(got-tt.want, 2*math.Pi); math.Abs(d) > 1e-9 {
				t.Errorf("orientation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientationBorder(t *testing.T) {
	g := blocks(40, 3)
	for _, p := range [][2]int{{0, 0}, {39, 39}, {2, 37}} {
		if a := orientation(g, p[0], p[1], halfWidths(16)); math.IsNaN(a) {
			t.Errorf("orientation at %v is NaN", p)
		}
	}
}

func TestHalfWidths(t *testing.T) {
	hw := halfWidths(16)
	if len(hw) != 17 || hw[0] != 16 || hw[16] != 0 {
		t.Fatalf("halfWidths(16) = %v", hw)
	}
	for v := 1; v < len(hw); v++ {
		if hw[v] > hw[v-1] {
			t.Errorf("halfWidths not decreasing at %d: %v", v, hw)
		}
	}
	if hw := halfWidths(0); len(hw) != 1 || hw[0] != 0 {
		t.Errorf("halfWidths(0) = %v, want [0]", hw)
	}
}

// Pyramid level pixels must come from base pixels at doubled coordinates,
// since ORB rescales level keypoints by 2^octave.
func TestPyramidCoordinates(t *testing.T) {
	base := improc.New[improc.U8](64, 64, 1)
	for y := range 64 {
		for x := range 64 {
			base.Pixel(x, y)[0] = improc.U8((7*x + 13*y) % 256)
		}
	}

	level := base
	for octave := 1; octave <= 3; octave++ {
		level = halve(level)
		if want := 64 >> octave; level.Width() != want || level.Height() != want {
			t.Fatalf("octave %d size = %dx%d, want %dx%d", octave, level.Width(), level.Height(), want, want)
		}
		for y := range level.Height() {
			for x := range level.Width() {
				bx, by := x<<octave, y<<octave
				if got, want := level.At(x, y), base.At(bx, by); got != want {
					t.Fatalf("octave %d pixel (%d, %d) = %d, want base (%d, %d) = %d",
						octave, x, y, got, bx, by, want)
				}
			}
		}
	}
}

func TestORB(t *testing.T) {
	img := blocks(256, 1)
	cfg := DefaultORBConfig()
	kps := ORB(img, cfg)
	if len(kps) == 0 {
		t.Fatal("no keypoints")
	}

	octaves := make(map[int]int)
	for _, k := range kps {
		if k.Descriptor.Kind != RotatedBRIEF {
			t.Fatalf("descriptor kind = %v, want RotatedBRIEF", k.Descriptor.Kind)
		}
		if k.X < float64(cfg.Margin) || k.Y < float64(cfg.Margin) || k.X >= 256 || k.Y >= 256 {
			t.Errorf("keypoint (%v, %v) outside the detection area", k.X, k.Y)
		}
		if k.Angle < -math.Pi || k.Angle > math.Pi {
			t.Errorf("Angle = %v outside [-π, π]", k.Angle)
		}
		octaves[k.Octave]++
	}
	if octaves[0] == 0 {
		t.Error("no keypoints on the base level")
	}
	for o := range octaves {
		// 256 → 128 → 64: the third level is too small for margin 46.
		if o < 0 || o > 1 {
			t.Errorf("unexpected octave %d", o)
		}
	}
}

func TestORBSmallImage(t *testing.T) {
	logs := captureLogs(t, slog.LevelWarn)

	if kps := ORB(blocks(64, 2), DefaultORBConfig()); len(kps) != 0 {
		t.Errorf("len(kps) = %d, want 0 for an image within the margin", len(kps))
	}
	if !strings.Contains(logs.String(), "orb level too small") {
		t.Errorf("small image not reported at warn level:\n%s", logs.String())
	}
}

func TestBRIEF(t *testing.T) {
	img := blocks(128, 4)
	in := []KeyPoint{kp(64, 64, 1), kp(70.4, 50.6, 2), kp(1, 1, 3)}
	out := BRIEF(img, in)

	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	for i, k := range out {
		if k.Descriptor.Kind != PlainBRIEF {
			t.Errorf("out[%d] kind = %v, want PlainBRIEF", i, k.Descriptor.Kind)
		}
		if in[i].Descriptor.Kind != NoDescriptor {
			t.Error("BRIEF modified its input")
		}
	}
	if d := out[0].Descriptor.Distance(&out[1].Descriptor); d == 0 {
		t.Error("different locations produced identical descriptors")
	}
}

func BenchmarkORB(b *testing.B) {
	img := blocks(256, 5)
	cfg := DefaultORBConfig()
	for b.Loop() {
		ORB(img, cfg)
	}
}
