package improc

import (
	"os"
	"path/filepath"
	"testing"
)

type recordSink struct {
	titles []string
	images []*Image[U8]
}

func (s *recordSink) Show(title string, img *Image[U8]) error {
	s.titles = append(s.titles, title)
	s.images = append(s.images, img)
	return nil
}

func TestShowConverts(t *testing.T) {
	sink := &recordSink{}

	m := FromData(1, 2, 1, Gray, []F32{0, 1})
	if err := Show(sink, "float", m); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	got := sink.images[0]
	if got.At(0, 0) != 0 || got.At(1, 0) != 255 {
		t.Errorf("Show converted %v, want [0 255]", got.Data())
	}

	hsl := FromData(1, 1, 3, RGB, []U8{200, 10, 10}).HSL()
	if err := Show(sink, "hsl", hsl); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if c := sink.images[1].Color(); c != RGB {
		t.Errorf("HSL shown as %v, want RGB", c)
	}
	if hsl.Color() != HSL {
		t.Error("Show modified its input")
	}
}

func TestShowHSLConvertsBeforeQuantizing(t *testing.T) {
	sink := &recordSink{}

	// Hue 36°: RGB (1, 0.6, 0). Rounding the hue to 8 bits first would
	// give a green of 156.
	hsl := FromData(1, 1, 3, HSL, []F32{0.1, 1, 0.5})
	if err := Show(sink, "hsl", hsl); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	got := sink.images[0].Pixel(0, 0)
	want := []U8{255, 153, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Show(HSL) = %v, want %v", got, want)
			break
		}
	}
	if hsl.Data()[0] != 0.1 {
		t.Error("Show modified its input")
	}
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := FileSink{Dir: dir}

	m := randomRGB[U8](30, 40, 8)
	if err := sink.Show("Matches: ORB", m); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	path := sink.Path("Matches: ORB")
	if filepath.Base(path) != "matches-orb.png" {
		t.Errorf("Path() = %q, want matches-orb.png", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output not written: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Width() != 40 || got.Height() <= 30 {
		t.Errorf("saved size = %dx%d, want 40 wide and taller than 30", got.Width(), got.Height())
	}
}
