package improc

import (
	"fmt"
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Stop is a gradient control point.
type Stop struct {
	Color    color.RGBA
	Position uint32
}

// Gradient maps a normalized scalar to a color by linear RGB interpolation
// between control points. Use it to pseudo-color response maps.
//
// The zero value has no stops; ColorAt requires at least one.
type Gradient struct {
	stops []Stop
}

// NewGradient returns a gradient with the given stops.
func NewGradient(stops ...Stop) *Gradient {
	g := &Gradient{}
	for _, s := range stops {
		g.Add(s.Color, s.Position)
	}
	return g
}

// SimpleGradient places the colors at positions 0, 1, 2, ...
func SimpleGradient(colors ...color.RGBA) *Gradient {
	g := &Gradient{}
	for i, c := range colors {
		g.Add(c, uint32(i))
	}
	return g
}

// Add inserts a stop, keeping stops sorted by position.
func (g *Gradient) Add(c color.RGBA, position uint32) {
	g.stops = append(g.stops, Stop{Color: c, Position: position})
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].Position < g.stops[j].Position
	})
}

// Stops returns the stops in ascending position order.
func (g *Gradient) Stops() []Stop {
	return g.stops
}

// ColorAt returns the color at frac, which must lie in [0,1]. frac is
// mapped onto [first position, last position].
func (g *Gradient) ColorAt(frac float32) color.RGBA {
	if len(g.stops) == 0 {
		panic("improc: gradient has no stops")
	}
	if !(frac >= 0 && frac <= 1) {
		panic(fmt.Sprintf("improc: gradient position %v outside [0,1]", frac))
	}
	if len(g.stops) == 1 {
		return g.stops[0].Color
	}

	lo := float64(g.stops[0].Position)
	hi := float64(g.stops[len(g.stops)-1].Position)
	pos := lo + float64(frac)*(hi-lo)

	idx := sort.Search(len(g.stops), func(i int) bool {
		return float64(g.stops[i].Position) > pos
	})
	idx = max(1, min(idx, len(g.stops)-1))

	a, b := g.stops[idx-1], g.stops[idx]
	span := float64(b.Position) - float64(a.Position)
	if span <= 0 {
		return b.Color
	}

	t := (pos - float64(a.Position)) / span
	r, gg, bb := toColorful(a.Color).BlendRgb(toColorful(b.Color), t).RGB255()
	return color.RGBA{R: r, G: gg, B: bb, A: 255}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FakeColor maps a single-channel Gray image through g into a
// three-channel RGB image.
func FakeColor[S Sample[S]](m *Image[S], g *Gradient) *Image[U8] {
	m.requireChannels(1)
	m.requireColor(Gray)

	res := New[U8](m.height, m.width, 3)
	for i, v := range m.data {
		f := min(max(v.F32(), 0), 1)
		c := g.ColorAt(f)
		res.data[3*i] = U8(c.R)
		res.data[3*i+1] = U8(c.G)
		res.data[3*i+2] = U8(c.B)
	}
	return res
}
