package image

// HalveGray returns src scaled to half its width and height (rounded
// down, at least 1) with nearest-neighbor sampling. Output pixel (x, y)
// is source pixel (2x, 2y), so level coordinates map back to the base by
// doubling. src must be Gray8.
func HalveGray(src *Buf) *Buf {
	if src.format != FormatGray8 {
		panic("image: HalveGray requires Gray8")
	}

	w, h := max(1, src.width/2), max(1, src.height/2)
	dst, _ := NewBuf(w, h, FormatGray8)
	for y := range h {
		in := src.RowBytes(2 * y)
		out := dst.RowBytes(y)
		for x := range out {
			out[x] = in[2*x]
		}
	}
	return dst
}
