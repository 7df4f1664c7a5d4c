package features

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/vptree"

	"github.com/gogpu/improc"
)

// Pair is a correspondence between a keypoint of the first set and its
// nearest neighbor in the second.
type Pair struct {
	From, To KeyPoint

	// Distance is the Hamming distance between the descriptors.
	Distance int
}

// Match pairs each keypoint of from with its nearest neighbor in to by
// descriptor Hamming distance, keeping only unambiguous pairs: the
// nearest distance divided by the second-nearest must be below ratio
// (Lowe's ratio test). Keypoints with fewer than two candidates are
// dropped. The result follows the order of from.
//
// All descriptors must be of one kind other than NoDescriptor.
func Match(from, to []KeyPoint, ratio float64) ([]Pair, error) {
	checkKinds(from, to)
	if len(from) == 0 || len(to) < 2 {
		return nil, nil
	}

	items := make([]vptree.Comparable, len(to))
	for i := range to {
		items[i] = descPoint{desc: &to[i].Descriptor, idx: i}
	}
	tree, err := vptree.New(items, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("features: build match index: %w", err)
	}

	var out []Pair
	for i := range from {
		keep := vptree.NewNKeeper(2)
		tree.NearestSet(keep, descPoint{desc: &from[i].Descriptor, idx: -1})

		nn := make([]vptree.ComparableDist, 0, 2)
		for _, c := range keep.Heap {
			if c.Comparable != nil {
				nn = append(nn, c)
			}
		}
		if len(nn) < 2 {
			continue
		}
		slices.SortFunc(nn, func(a, b vptree.ComparableDist) int {
			switch {
			case a.Dist < b.Dist:
				return -1
			case a.Dist > b.Dist:
				return 1
			default:
				return 0
			}
		})

		// 0/0 is NaN and fails the comparison: two exact matches are ambiguous.
		if nn[0].Dist/nn[1].Dist < ratio {
			best := nn[0].Comparable.(descPoint)
			out = append(out, Pair{From: from[i], To: to[best.idx], Distance: int(nn[0].Dist)})
		}
	}

	improc.Logger().Debug("features: match", "from", len(from), "to", len(to), "matches", len(out), "ratio", ratio)
	return out, nil
}

func checkKinds(sets ...[]KeyPoint) {
	kind := NoDescriptor
	for _, kps := range sets {
		for i := range kps {
			k := kps[i].Descriptor.Kind
			if k == NoDescriptor || (kind != NoDescriptor && k != kind) {
				panic(fmt.Errorf("%w: %v and %v", improc.ErrDescriptorMismatch, kind, k))
			}
			kind = k
		}
	}
}

// descPoint is a descriptor in the vantage-point tree. idx refers back to
// the keypoint slice.
type descPoint struct {
	desc *Descriptor
	idx  int
}

// Distance returns the Hamming distance between the descriptors.
func (p descPoint) Distance(c vptree.Comparable) float64 {
	return float64(p.desc.Distance(c.(descPoint).desc))
}
