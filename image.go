package improc

import "fmt"

// ColorSpace tags the interpretation of an image's channels.
type ColorSpace uint8

const (
	// RGB is red, green, blue in three channels.
	RGB ColorSpace = iota
	// Gray is luminance, in one channel or replicated across three.
	Gray
	// HSL is hue, saturation, lightness in three channels, each in [0,1].
	HSL
)

// String returns the color space name.
func (c ColorSpace) String() string {
	switch c {
	case RGB:
		return "RGB"
	case Gray:
		return "Gray"
	case HSL:
		return "HSL"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(c))
	}
}

// Image is a height×width×channels pixel buffer of samples S, stored
// row-major with interleaved channels. len(Data()) is always
// Height()*Width()*Channels().
//
// Image is not safe for concurrent mutation. Operations that need to read
// unmodified pixels while writing work from a Clone.
type Image[S Sample[S]] struct {
	height   int
	width    int
	channels int
	color    ColorSpace
	data     []S
}

// New allocates an image filled with the encoding's minimum value.
// Single-channel images are tagged Gray, all others RGB.
func New[S Sample[S]](height, width, channels int) *Image[S] {
	var zero S
	return filled(height, width, channels, zero.Min())
}

// Ones allocates an image filled with the encoding's maximum value.
func Ones[S Sample[S]](height, width, channels int) *Image[S] {
	var zero S
	return filled(height, width, channels, zero.Max())
}

func filled[S Sample[S]](height, width, channels int, v S) *Image[S] {
	if height <= 0 || width <= 0 || channels <= 0 {
		panic(fmt.Errorf("%w: %dx%dx%d", ErrDimensions, height, width, channels))
	}

	data := make([]S, height*width*channels)
	var zero S
	if v != zero {
		for i := range data {
			data[i] = v
		}
	}

	return &Image[S]{
		height:   height,
		width:    width,
		channels: channels,
		color:    defaultColor(channels),
		data:     data,
	}
}

// FromData wraps data as an image without copying. The length of data must
// be height*width*channels.
func FromData[S Sample[S]](height, width, channels int, cs ColorSpace, data []S) *Image[S] {
	if height <= 0 || width <= 0 || channels <= 0 || len(data) != height*width*channels {
		panic(fmt.Errorf("%w: %dx%dx%d with %d samples", ErrDimensions, height, width, channels, len(data)))
	}
	return &Image[S]{height: height, width: width, channels: channels, color: cs, data: data}
}

func defaultColor(channels int) ColorSpace {
	if channels == 1 {
		return Gray
	}
	return RGB
}

// Height returns the number of rows.
func (m *Image[S]) Height() int { return m.height }

// Width returns the number of columns.
func (m *Image[S]) Width() int { return m.width }

// Channels returns the number of samples per pixel.
func (m *Image[S]) Channels() int { return m.channels }

// Color returns the color space tag.
func (m *Image[S]) Color() ColorSpace { return m.color }

// SetColor retags the image without touching its samples.
func (m *Image[S]) SetColor(c ColorSpace) { m.color = c }

// Data returns the backing sample slice.
func (m *Image[S]) Data() []S { return m.data }

// Pixel returns the channel samples of the pixel at column x, row y.
// The slice aliases the image. Out-of-bounds coordinates panic.
func (m *Image[S]) Pixel(x, y int) []S {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, m.width, m.height))
	}
	i := (y*m.width + x) * m.channels
	return m.data[i : i+m.channels : i+m.channels]
}

// At returns the first channel of the pixel at (x, y).
func (m *Image[S]) At(x, y int) S {
	return m.Pixel(x, y)[0]
}

// ForEachPixel calls fn with every pixel's channel slice in row-major order.
func (m *Image[S]) ForEachPixel(fn func(px []S)) {
	c := m.channels
	for i := 0; i < len(m.data); i += c {
		fn(m.data[i : i+c : i+c])
	}
}

// Clone returns a deep copy.
func (m *Image[S]) Clone() *Image[S] {
	data := make([]S, len(m.data))
	copy(data, m.data)
	return &Image[S]{
		height:   m.height,
		width:    m.width,
		channels: m.channels,
		color:    m.color,
		data:     data,
	}
}

// SameShape reports whether two images have identical dimensions.
func SameShape[A Sample[A], B Sample[B]](a *Image[A], b *Image[B]) bool {
	return a.height == b.height && a.width == b.width && a.channels == b.channels
}

// Threshold returns a single-channel boolean image set where the sample
// is strictly greater than t.
func (m *Image[S]) Threshold(t S) *Image[Bool] {
	m.requireChannels(1)

	res := New[Bool](m.height, m.width, 1)
	for i, v := range m.data {
		res.data[i] = Bool(t.Less(v))
	}
	return res
}

// HorizontalStack places b to the right of a. Both images must have the
// same height and channel count; the result takes a's color tag.
func HorizontalStack[S Sample[S]](a, b *Image[S]) *Image[S] {
	if a.height != b.height || a.channels != b.channels {
		panic(fmt.Errorf("%w: cannot stack %dx%dx%d and %dx%dx%d", ErrDimensions,
			a.height, a.width, a.channels, b.height, b.width, b.channels))
	}

	res := New[S](a.height, a.width+b.width, a.channels)
	res.color = a.color
	rowA := a.width * a.channels
	rowB := b.width * b.channels
	for y := 0; y < a.height; y++ {
		dst := res.data[y*(rowA+rowB):]
		copy(dst[:rowA], a.data[y*rowA:(y+1)*rowA])
		copy(dst[rowA:rowA+rowB], b.data[y*rowB:(y+1)*rowB])
	}
	return res
}

// Normalize divides every sample by the image maximum so the largest value
// becomes 1. An image whose maximum is not positive is left unchanged.
func Normalize(m *Image[F32]) {
	hi := MaxValue(m)
	if !(hi > 0) {
		return
	}
	inv := 1 / hi
	for i := range m.data {
		m.data[i] *= inv
	}
}

// MaxValue returns the largest sample in the image.
func MaxValue[S Sample[S]](m *Image[S]) S {
	hi := m.data[0]
	for _, v := range m.data[1:] {
		if hi.Less(v) {
			hi = v
		}
	}
	return hi
}

func (m *Image[S]) requireChannels(n int) {
	if m.channels != n {
		panic(fmt.Errorf("%w: have %d, want %d", ErrChannels, m.channels, n))
	}
}

func (m *Image[S]) requireColor(c ColorSpace) {
	if m.color != c {
		panic(fmt.Errorf("%w: have %v, want %v", ErrColorSpace, m.color, c))
	}
}
