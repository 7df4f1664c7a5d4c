package improc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/improc/internal/image"
)

// Sink receives titled images for display. Implementations decide what
// showing means: a window, a file, a test recorder.
type Sink interface {
	Show(title string, img *Image[U8]) error
}

// FileSink writes each shown image to Dir as a PNG named after a slug of
// its title, with the title rendered in a banner above the pixels.
type FileSink struct {
	Dir string
}

// Show implements Sink. The directory is created if needed.
func (s FileSink) Show(title string, img *Image[U8]) error {
	buf, err := toBuf(img)
	if err != nil {
		return err
	}
	titled, err := image.WithTitle(buf, title)
	if err != nil {
		return fmt.Errorf("improc: render title: %w", err)
	}

	path := s.Path(title)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("improc: create output dir: %w", err)
	}

	if err := titled.Save(path); err != nil {
		return err
	}
	Logger().Info("improc: shown", "title", title, "path", path)
	return nil
}

// Path returns the file FileSink.Show writes for title.
func (s FileSink) Path(title string) string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, image.Slug(title)+".png")
}

// Show converts img to 8 bits and passes it to sink. HSL images are shown
// as RGB; Bool and F32 images are scaled to the 8-bit range.
func Show[S Sample[S]](sink Sink, title string, img *Image[S]) error {
	if img.color == HSL {
		return sink.Show(title, ToU8(ToF32(img).RGB()))
	}
	return sink.Show(title, ToU8(img))
}
