package features

import (
	"fmt"
	"image/color"
)

// Shape is the marker drawn for a keypoint.
type Shape uint8

const (
	// Dot marks a single pixel.
	Dot Shape = iota
	// BigDot marks a 3×3 block.
	BigDot
	// Cross marks two 5-pixel diagonals.
	Cross
	// Square marks the outline of a 5×5 square.
	Square
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Dot:
		return "Dot"
	case BigDot:
		return "BigDot"
	case Cross:
		return "Cross"
	case Square:
		return "Square"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// KeyPoint is a detected image location.
//
// X and Y are in base-image pixel coordinates. Score ranks keypoints for
// suppression (higher is stronger); its scale depends on the detector.
// Octave is the pyramid level the keypoint was found on and Angle its
// orientation in radians (0 for detectors without orientation).
// Color and Shape only affect drawing.
type KeyPoint struct {
	X, Y       float64
	Score      int
	Octave     int
	Angle      float64
	Descriptor Descriptor
	Color      color.RGBA
	Shape      Shape
}

var defaultColor = color.RGBA{G: 255, A: 255}

func newKeyPoint(x, y, score int) KeyPoint {
	return KeyPoint{
		X:     float64(x),
		Y:     float64(y),
		Score: score,
		Color: defaultColor,
		Shape: Cross,
	}
}

// ShapePoints returns the pixels covered by the keypoint's marker.
func (k KeyPoint) ShapePoints() [][2]int {
	x, y := int(k.X), int(k.Y)

	switch k.Shape {
	case BigDot:
		pts := make([][2]int, 0, 9)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				pts = append(pts, [2]int{x + dx, y + dy})
			}
		}
		return pts

	case Cross:
		pts := [][2]int{{x, y}}
		for d := 1; d <= 2; d++ {
			pts = append(pts,
				[2]int{x - d, y - d}, [2]int{x + d, y + d},
				[2]int{x - d, y + d}, [2]int{x + d, y - d})
		}
		return pts

	case Square:
		pts := make([][2]int, 0, 16)
		for d := -2; d <= 2; d++ {
			pts = append(pts, [2]int{x - 2, y + d}, [2]int{x + 2, y + d})
		}
		for d := -1; d <= 1; d++ {
			pts = append(pts, [2]int{x + d, y + 2}, [2]int{x + d, y - 2})
		}
		return pts

	default:
		return [][2]int{{x, y}}
	}
}
