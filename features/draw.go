package features

import "github.com/gogpu/improc"

// DrawKeyPoints draws each keypoint's marker into img in its color.
// Markers are clipped at the border.
func DrawKeyPoints[S improc.Sample[S]](img *improc.Image[S], kps []KeyPoint) *improc.Image[S] {
	for _, kp := range kps {
		for _, p := range kp.ShapePoints() {
			img.SetRGB(p[0], p[1], kp.Color)
		}
	}
	return img
}

// DrawMatches places b to the right of a and joins every matched pair with
// a line in the color of its From keypoint.
func DrawMatches[S improc.Sample[S]](a, b *improc.Image[S], matches []Pair) *improc.Image[S] {
	out := improc.HorizontalStack(a, b)
	off := float64(a.Width())

	for _, m := range matches {
		to := m.To
		to.X += off
		out.DrawLine(int(m.From.X), int(m.From.Y), int(to.X), int(to.Y), m.From.Color)
		DrawKeyPoints(out, []KeyPoint{m.From, to})
	}
	return out
}
