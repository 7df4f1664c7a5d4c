// Package image holds the raw 8-bit buffers improc exchanges with image
// containers, and the raster helpers that operate on them directly:
// decoding and encoding, nearest-neighbor halving, title banners.
package image

import "errors"

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Buf is a tightly packed 8-bit image: rows follow each other without
// padding and channels are interleaved.
type Buf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewBuf allocates a zeroed buffer.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Buf{
		data:   make([]byte, width*height*format.BytesPerPixel()),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps data without copying.
func FromRaw(data []byte, width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	size := width * height * format.BytesPerPixel()
	if len(data) < size {
		return nil, ErrDataTooSmall
	}
	return &Buf{data: data[:size], width: width, height: height, format: format}, nil
}

// Width returns the image width in pixels.
func (b *Buf) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Buf) Height() int { return b.height }

// Format returns the pixel format.
func (b *Buf) Format() Format { return b.format }

// Data returns the raw pixel data.
func (b *Buf) Data() []byte { return b.data }

// RowBytes returns the bytes of row y, or nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	n := b.width * b.format.BytesPerPixel()
	return b.data[y*n : (y+1)*n]
}

// PixelBytes returns the bytes of pixel (x, y), or nil if out of bounds.
func (b *Buf) PixelBytes(x, y int) []byte {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	off := (y*b.width + x) * bpp
	return b.data[off : off+bpp]
}
