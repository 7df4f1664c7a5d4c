package improc

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gogpu/improc/internal/image"
)

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image into a
// three-channel RGB image.
func Decode(r io.Reader) (*Image[U8], error) {
	buf, format, err := image.Decode(r)
	return fromBuf(buf, format, err)
}

// Load reads the image file at path into a three-channel RGB image.
func Load(path string) (*Image[U8], error) {
	buf, format, err := image.Load(path)
	m, err := fromBuf(buf, format, err)
	if err != nil {
		return nil, err
	}
	Logger().Info("improc: loaded", "path", path, "format", format)
	return m, nil
}

func fromBuf(buf *image.Buf, format string, err error) (*Image[U8], error) {
	if err != nil {
		switch {
		case errors.Is(err, image.ErrUnsupportedFormat):
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		case errors.Is(err, image.ErrEmptyData):
			return nil, fmt.Errorf("%w: %w", ErrEmptyData, err)
		}
		return nil, fmt.Errorf("improc: decode: %w", err)
	}
	if buf.Width() == 0 || buf.Height() == 0 {
		return nil, fmt.Errorf("%w: %s image has no pixels", ErrEmptyData, format)
	}

	m := FromData(buf.Height(), buf.Width(), 3, RGB, bytesToU8(buf.Data()))
	Logger().Debug("improc: decoded", "format", format, "width", m.width, "height", m.height)
	return m, nil
}

// Encode writes img as PNG. Single-channel images are written as
// grayscale, three-channel images as RGB (the color tag is ignored).
func Encode(w io.Writer, img *Image[U8]) error {
	buf, err := toBuf(img)
	if err != nil {
		return err
	}
	return buf.EncodePNG(w)
}

// Save writes img to path. Only the .png extension is supported.
func Save(path string, img *Image[U8]) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	buf, err := toBuf(img)
	if err != nil {
		return err
	}
	if err := buf.Save(path); err != nil {
		return err
	}
	Logger().Debug("improc: saved", "path", path, "width", img.width, "height", img.height)
	return nil
}

func toBuf(img *Image[U8]) (*image.Buf, error) {
	format, ok := image.FormatForChannels(img.channels)
	if !ok {
		return nil, fmt.Errorf("%w: cannot encode %d channels", ErrChannels, img.channels)
	}
	return image.FromRaw(u8ToBytes(img.data), img.width, img.height, format)
}

func bytesToU8(b []byte) []U8 {
	s := make([]U8, len(b))
	for i, v := range b {
		s[i] = U8(v)
	}
	return s
}

func u8ToBytes(s []U8) []byte {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = byte(v)
	}
	return b
}
