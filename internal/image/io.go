package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load decodes the image file at path into an RGB8 buffer. The container
// format is detected from content. It returns the format name reported by
// the registered decoder.
func Load(path string) (*Buf, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an in-memory image into an RGB8 buffer.
func DecodeBytes(data []byte) (*Buf, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r into an RGB8 buffer. PNG, JPEG, GIF, BMP,
// TIFF and WebP are recognized.
func Decode(r io.Reader) (*Buf, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("image: decode: %w", ErrUnsupportedFormat)
		}
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), format, nil
}

// Save writes the buffer as a PNG file.
func (b *Buf) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *Buf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage converts a standard library image into an RGB8 buffer.
// Alpha is dropped; translucent pixels keep their premultiplied color,
// which composites them over black.
func FromStdImage(img image.Image) *Buf {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf := &Buf{
		data:   make([]byte, width*height*3),
		width:  width,
		height: height,
		format: FormatRGB8,
	}

	switch src := img.(type) {
	case *image.Gray:
		for y := range height {
			row := src.Pix[y*src.Stride : y*src.Stride+width]
			dst := buf.RowBytes(y)
			for x, v := range row {
				dst[3*x], dst[3*x+1], dst[3*x+2] = v, v, v
			}
		}
		return buf

	case *image.NRGBA:
		for y := range height {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			dst := buf.RowBytes(y)
			for x := range width {
				a := uint32(row[4*x+3])
				dst[3*x] = byte(uint32(row[4*x]) * a / 255)
				dst[3*x+1] = byte(uint32(row[4*x+1]) * a / 255)
				dst[3*x+2] = byte(uint32(row[4*x+2]) * a / 255)
			}
		}
		return buf

	case *image.RGBA:
		for y := range height {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			dst := buf.RowBytes(y)
			for x := range width {
				copy(dst[3*x:3*x+3], row[4*x:4*x+3])
			}
		}
		return buf
	}

	for y := range height {
		dst := buf.RowBytes(y)
		for x := range width {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA() returns 16-bit values; the shift keeps the high byte.
			dst[3*x], dst[3*x+1], dst[3*x+2] = byte(r>>8), byte(g>>8), byte(b>>8)
		}
	}
	return buf
}

// ToStdImage converts the buffer to *image.Gray (Gray8) or an opaque
// *image.NRGBA (RGB8).
func (b *Buf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	for y := range b.height {
		row := b.RowBytes(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			dst[4*x] = row[3*x]
			dst[4*x+1] = row[3*x+1]
			dst[4*x+2] = row[3*x+2]
			dst[4*x+3] = 255
		}
	}
	return nrgba
}
