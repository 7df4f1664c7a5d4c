package image

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Banner geometry in pixels.
const (
	bannerHeight = 20
	bannerSize   = 13
	bannerPad    = 4
)

var (
	labelOnce sync.Once
	labelFace font.Face
	labelErr  error
)

func face() (font.Face, error) {
	labelOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			labelErr = fmt.Errorf("image: parse font: %w", err)
			return
		}
		labelFace, labelErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    bannerSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return labelFace, labelErr
}

// WithTitle returns an RGB8 copy of b with a black banner above it holding
// title in white. Text wider than the image is clipped.
func WithTitle(b *Buf, title string) (*Buf, error) {
	fc, err := face()
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, b.width, b.height+bannerHeight))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, bannerHeight, b.width, b.height+bannerHeight),
		b.ToStdImage(), image.Point{}, draw.Src)

	ascent := fc.Metrics().Ascent
	d := &font.Drawer{
		Dst:  canvas.SubImage(image.Rect(0, 0, b.width, bannerHeight)).(*image.RGBA),
		Src:  image.White,
		Face: fc,
		Dot:  fixed.Point26_6{X: fixed.I(bannerPad), Y: fixed.I(bannerPad/2) + ascent},
	}
	d.DrawString(title)

	return FromStdImage(canvas), nil
}
