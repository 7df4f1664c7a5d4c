package features

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/gogpu/improc"
)

// Suppress keeps the keypoints that have no strictly higher-scoring
// neighbor within radius (Euclidean, inclusive). Equal-score neighbors
// both survive. A non-positive radius returns kps unchanged.
//
// The output keeps the input order.
func Suppress(kps []KeyPoint, radius float64) []KeyPoint {
	return suppressBy(kps, radius, func(i int) float64 { return float64(kps[i].Score) })
}

// suppressBy is Suppress ranking kps[i] by score(i) instead of its Score.
func suppressBy(kps []KeyPoint, radius float64, score func(i int) float64) []KeyPoint {
	if radius <= 0 || len(kps) < 2 {
		return kps
	}

	pts := make(kpPoints, len(kps))
	for i, kp := range kps {
		pts[i] = kpPoint{x: kp.X, y: kp.Y, idx: i}
	}
	tree := kdtree.New(pts, false)

	out := make([]KeyPoint, 0, len(kps))
	for i, kp := range kps {
		keep := kdtree.NewDistKeeper(radius * radius)
		tree.NearestSet(keep, kpPoint{x: kp.X, y: kp.Y, idx: i})

		own := score(i)
		strongest := true
		for _, n := range keep.Heap {
			if n.Comparable == nil {
				continue
			}
			if score(n.Comparable.(kpPoint).idx) > own {
				strongest = false
				break
			}
		}
		if strongest {
			out = append(out, kp)
		}
	}

	improc.Logger().Debug("features: suppress", "in", len(kps), "out", len(out), "radius", radius)
	return out
}

// kpPoint is a keypoint position in the k-d tree. idx refers back to the
// keypoint slice.
type kpPoint struct {
	x, y float64
	idx  int
}

// Compare returns the signed distance of p from c along dimension d.
func (p kpPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kpPoint)
	if d == 0 {
		return p.x - q.x
	}
	return p.y - q.y
}

// Dims returns 2.
func (p kpPoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between p and c.
func (p kpPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kpPoint)
	dx, dy := p.x-q.x, p.y-q.y
	return dx*dx + dy*dy
}

// kpPoints implements kdtree.Interface.
type kpPoints []kpPoint

func (p kpPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kpPoints) Len() int                      { return len(p) }
func (p kpPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot partitions p around the median along d.
func (p kpPoints) Pivot(d kdtree.Dim) int {
	pl := plane{kpPoints: p, dim: d}
	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

// plane orders kpPoints along one dimension.
type plane struct {
	kpPoints
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	if p.dim == 0 {
		return p.kpPoints[i].x < p.kpPoints[j].x
	}
	return p.kpPoints[i].y < p.kpPoints[j].y
}

func (p plane) Swap(i, j int) {
	p.kpPoints[i], p.kpPoints[j] = p.kpPoints[j], p.kpPoints[i]
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{kpPoints: p.kpPoints[start:end], dim: p.dim}
}
