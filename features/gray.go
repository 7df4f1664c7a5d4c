package features

import (
	"github.com/gogpu/improc"
	"github.com/gogpu/improc/internal/image"
)

// grayU8 returns a single-channel 8-bit grayscale copy of m.
func grayU8[S improc.Sample[S]](m *improc.Image[S]) *improc.Image[improc.U8] {
	g := m.Clone().Grayscale()
	if g.Channels() > 1 {
		g = g.ToSingleChannel()
	}
	return improc.ToU8(g)
}

// halve returns g downsampled by two with nearest-neighbor sampling.
func halve(g *improc.Image[improc.U8]) *improc.Image[improc.U8] {
	raw := make([]byte, len(g.Data()))
	for i, v := range g.Data() {
		raw[i] = byte(v)
	}
	buf, err := image.FromRaw(raw, g.Width(), g.Height(), image.FormatGray8)
	if err != nil {
		panic(err)
	}

	half := image.HalveGray(buf)
	data := make([]improc.U8, len(half.Data()))
	for i, v := range half.Data() {
		data[i] = improc.U8(v)
	}
	return improc.FromData(half.Height(), half.Width(), 1, improc.Gray, data)
}
