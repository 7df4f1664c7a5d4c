package features

import (
	"image/color"
	"testing"

	"github.com/gogpu/improc"
)

var red = color.RGBA{R: 255, A: 255}

func countColor(m *improc.Image[improc.U8], c color.RGBA) int {
	n := 0
	m.ForEachPixel(func(p []improc.U8) {
		if p[0] == improc.U8(c.R) && p[1] == improc.U8(c.G) && p[2] == improc.U8(c.B) {
			n++
		}
	})
	return n
}

func TestDrawKeyPoints(t *testing.T) {
	img := improc.New[improc.U8](20, 20, 3)
	kps := []KeyPoint{
		{X: 10, Y: 10, Color: red, Shape: Cross},
		{X: 0, Y: 0, Color: red, Shape: Square},
	}
	DrawKeyPoints(img, kps)

	// The square at the corner is clipped to 5 of its 16 pixels.
	if n := countColor(img, red); n != 9+5 {
		t.Errorf("%d red pixels, want 14", n)
	}
	if p := img.Pixel(12, 8); p[0] != 255 {
		t.Errorf("Pixel(12, 8) = %v, want red", p)
	}
}

func TestDrawMatches(t *testing.T) {
	a := improc.New[improc.U8](10, 15, 3)
	b := improc.New[improc.U8](10, 5, 3)
	m := Pair{
		From: KeyPoint{X: 2, Y: 5, Color: red, Shape: Dot},
		To:   KeyPoint{X: 2, Y: 5, Color: red, Shape: Dot},
	}

	out := DrawMatches(a, b, []Pair{m})
	if out.Width() != 20 || out.Height() != 10 {
		t.Fatalf("size = %dx%d, want 20x10", out.Width(), out.Height())
	}
	// Horizontal line from x=2 to x=17 on row 5.
	if n := countColor(out, red); n != 16 {
		t.Errorf("%d red pixels, want 16", n)
	}
	if p := out.Pixel(17, 5); p[0] != 255 {
		t.Errorf("matched endpoint not drawn: %v", p)
	}
	if a.Pixel(2, 5)[0] != 0 {
		t.Error("DrawMatches modified its input")
	}
}
