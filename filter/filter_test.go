package filter

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gogpu/improc"
)

// ramp returns a smooth single-channel float image.
func ramp(h, w int) *improc.Image[improc.F32] {
	m := improc.New[improc.F32](h, w, 1)
	for y := range h {
		for x := range w {
			m.Pixel(x, y)[0] = improc.F32(0.25 + float32(x+y)/512)
		}
	}
	return m
}

func TestWindowPadding(t *testing.T) {
	m := improc.FromData(2, 2, 1, improc.Gray, []improc.U8{1, 2, 3, 4})

	tests := []struct {
		pad  Padding
		want []improc.U8
	}{
		{Zeros, []improc.U8{0, 0, 0, 0, 1, 2, 0, 3, 4}},
		{Repeat, []improc.U8{1, 1, 2, 1, 1, 2, 3, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.pad.String(), func(t *testing.T) {
			got := make([]improc.U8, 9)
			visited := 0
			Window(m, 0, 0, 1, 1, tt.pad, func(wx, wy int, px []improc.U8) {
				got[wy*3+wx] = px[0]
				visited++
			})
			if visited != 9 {
				t.Errorf("visited %d offsets, want 9", visited)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("window[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWindowRowMajor(t *testing.T) {
	m := improc.New[improc.U8](5, 5, 1)
	var order [][2]int
	Window(m, 2, 2, 1, 2, Repeat, func(wx, wy int, _ []improc.U8) {
		order = append(order, [2]int{wx, wy})
	})
	if len(order) != 15 {
		t.Fatalf("visited %d offsets, want 15", len(order))
	}
	for i, o := range order {
		if o[0] != i%5 || o[1] != i/5 {
			t.Errorf("offset %d = %v, want [%d %d]", i, o, i%5, i/5)
		}
	}
}

func TestConvolveIdentity(t *testing.T) {
	src := improc.New[improc.U8](9, 7, 3)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range src.Data() {
		src.Data()[i] = improc.U8(rng.IntN(256))
	}

	for _, pad := range []Padding{Zeros, Repeat} {
		m := Convolve(src.Clone(), 1, 2, IdentityKernel(1, 2), pad)
		if mse := improc.MSE(src, m); mse != 0 {
			t.Errorf("identity convolution with %v changed image, MSE = %v", pad, mse)
		}
	}
}

func TestConvolveKernelSize(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, improc.ErrKernelSize) {
			t.Errorf("panic = %v, want ErrKernelSize", r)
		}
	}()
	Convolve(improc.New[improc.F32](4, 4, 1), 1, 1, make([]float64, 8), Zeros)
}

func TestConvolveZerosPadding(t *testing.T) {
	m := improc.Ones[improc.F32](3, 3, 1)
	Blur(m, 1, Zeros)

	if got := m.At(1, 1); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("center = %v, want 1", got)
	}
	if got := m.At(0, 0); math.Abs(float64(got)-4.0/9) > 1e-6 {
		t.Errorf("corner = %v, want 4/9", got)
	}
}

func TestBlurConstant(t *testing.T) {
	m := improc.New[improc.U8](6, 6, 1)
	for i := range m.Data() {
		m.Data()[i] = 100
	}
	GaussianBlur(m, 2, 1.5, Repeat)
	for i, v := range m.Data() {
		if v != 100 {
			t.Fatalf("Data()[%d] = %d, want 100", i, v)
		}
	}
}

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		n     int
		sigma float64
	}{
		{1, 1},
		{2, 0.5},
		{3, 2},
	}

	for _, tt := range tests {
		k := GaussianKernel(tt.n, tt.sigma)
		side := 2*tt.n + 1
		if len(k) != side*side {
			t.Fatalf("len(GaussianKernel(%d)) = %d, want %d", tt.n, len(k), side*side)
		}

		sum := 0.0
		for _, v := range k {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("GaussianKernel(%d, %v) sums to %v, want 1", tt.n, tt.sigma, sum)
		}

		center := k[tt.n*side+tt.n]
		for i, v := range k {
			if v > center {
				t.Errorf("GaussianKernel(%d, %v)[%d] = %v exceeds center %v", tt.n, tt.sigma, i, v, center)
			}
			if mirror := k[len(k)-1-i]; math.Abs(v-mirror) > 1e-12 {
				t.Errorf("GaussianKernel(%d, %v) not symmetric at %d", tt.n, tt.sigma, i)
			}
		}
	}

	if k := GaussianKernel(1, 0); k[4] != 1 {
		t.Errorf("GaussianKernel(1, 0) = %v, want identity", k)
	}
}

func TestCachedGaussianKernelLogsMiss(t *testing.T) {
	orig := improc.Logger()
	t.Cleanup(func() { improc.SetLogger(orig) })

	var buf bytes.Buffer
	improc.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	CachedGaussianKernel(3, 0.77)
	CachedGaussianKernel(3, 0.77)
	if n := strings.Count(buf.String(), "gaussian kernel cache miss"); n != 1 {
		t.Errorf("cache miss logged %d times, want 1:\n%s", n, buf.String())
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(2, 1.25)
	b := CachedGaussianKernel(2, 1.25)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel should return the shared kernel")
	}
	want := GaussianKernel(2, 1.25)
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("cached[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestBoxKernel(t *testing.T) {
	k := BoxKernel(1)
	for i, v := range k {
		if math.Abs(v-1.0/9) > 1e-12 {
			t.Errorf("BoxKernel(1)[%d] = %v, want 1/9", i, v)
		}
	}
}

func TestMedianSaltAndPepper(t *testing.T) {
	clean := ramp(64, 64)
	noisy := clean.Clone().SaltAndPepper(25, rand.New(rand.NewPCG(3, 4)))

	before := improc.MSE(clean, noisy)
	Median(noisy, 2, Repeat)
	after := improc.MSE(clean, noisy)

	if after >= 1e-3 {
		t.Errorf("MSE after median = %v, want < 1e-3", after)
	}
	if after >= before {
		t.Errorf("median did not reduce error: %v -> %v", before, after)
	}
}

func TestMedianPicksMiddle(t *testing.T) {
	m := improc.FromData(1, 3, 1, improc.Gray, []improc.U8{9, 1, 5})
	NonLinear(m, 0, 1, median[improc.U8], Repeat)
	// Windows: [9 9 1], [9 1 5], [1 5 5]
	want := []improc.U8{9, 5, 5}
	for i, v := range m.Data() {
		if v != want[i] {
			t.Errorf("Data()[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestNonLinearPerChannel(t *testing.T) {
	m := improc.FromData(1, 2, 2, improc.RGB, []improc.U8{1, 10, 3, 30})
	NonLinear(m, 0, 1, func(s []improc.U8) improc.U8 {
		hi := s[0]
		for _, v := range s[1:] {
			hi = max(hi, v)
		}
		return hi
	}, Zeros)

	want := []improc.U8{3, 30, 3, 30}
	for i, v := range m.Data() {
		if v != want[i] {
			t.Errorf("Data()[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestGradients(t *testing.T) {
	// Dark left half, bright right half.
	m := improc.New[improc.F32](5, 6, 1)
	for y := range 5 {
		for x := 3; x < 6; x++ {
			m.Pixel(x, y)[0] = 1
		}
	}

	gx, gy := Gradients(m)
	if v := gx.At(2, 2); v != 4 {
		t.Errorf("gx at edge = %v, want 4", v)
	}
	if v := gx.At(0, 2); v != 0 {
		t.Errorf("gx in flat region = %v, want 0", v)
	}
	for i, v := range gy.Data() {
		if v != 0 {
			t.Fatalf("gy[%d] = %v, want 0", i, v)
		}
	}
	if m.At(3, 0) != 1 {
		t.Error("Gradients modified its input")
	}
}

func TestSobel(t *testing.T) {
	m := improc.New[improc.U8](6, 6, 3)
	for y := range 6 {
		for x := 3; x < 6; x++ {
			p := m.Pixel(x, y)
			p[0], p[1], p[2] = 200, 200, 200
		}
	}

	s := Sobel(m)
	if s.Channels() != 1 || s.Color() != improc.Gray {
		t.Fatalf("Sobel shape = %d/%v, want 1/Gray", s.Channels(), s.Color())
	}
	if improc.MaxValue(s) != 1 {
		t.Errorf("max = %v, want 1", improc.MaxValue(s))
	}
	if v := s.At(2, 3); v != 1 {
		t.Errorf("magnitude at edge = %v, want 1", v)
	}
	if v := s.At(0, 3); v != 0 {
		t.Errorf("magnitude in flat region = %v, want 0", v)
	}
}

func BenchmarkGaussianBlur(b *testing.B) {
	src := ramp(128, 128)
	for b.Loop() {
		GaussianBlur(src.Clone(), 2, 1.5, Repeat)
	}
}

func BenchmarkMedian(b *testing.B) {
	src := ramp(128, 128)
	for b.Loop() {
		Median(src.Clone(), 1, Repeat)
	}
}
