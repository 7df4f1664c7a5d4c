package improc

// Cast converts every sample of src into encoding D. The result keeps the
// shape and color tag of src.
func Cast[D Sample[D], S Sample[S]](src *Image[S]) *Image[D] {
	data := make([]D, len(src.data))
	for i, v := range src.data {
		data[i] = Convert[D](v)
	}
	return &Image[D]{
		height:   src.height,
		width:    src.width,
		channels: src.channels,
		color:    src.color,
		data:     data,
	}
}

// ToU8 returns an 8-bit copy of m.
func ToU8[S Sample[S]](m *Image[S]) *Image[U8] { return Cast[U8](m) }

// ToF32 returns a normalized float copy of m.
func ToF32[S Sample[S]](m *Image[S]) *Image[F32] { return Cast[F32](m) }

// ToBool returns a boolean copy of m (non-zero samples become true).
func ToBool[S Sample[S]](m *Image[S]) *Image[Bool] { return Cast[Bool](m) }
