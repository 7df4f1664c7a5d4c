package features

import (
	"fmt"

	"github.com/steakknife/hamming"

	"github.com/gogpu/improc"
)

// DescriptorBits is the length of a binary descriptor.
const DescriptorBits = 512

// DescriptorKind identifies how a descriptor was computed. Descriptors of
// different kinds are not comparable.
type DescriptorKind uint8

const (
	// NoDescriptor marks a keypoint that has not been described.
	NoDescriptor DescriptorKind = iota
	// PlainBRIEF is the unrotated binary test descriptor.
	PlainBRIEF
	// RotatedBRIEF is BRIEF steered by the keypoint orientation.
	RotatedBRIEF
)

// String returns the kind name.
func (k DescriptorKind) String() string {
	switch k {
	case NoDescriptor:
		return "None"
	case PlainBRIEF:
		return "BRIEF"
	case RotatedBRIEF:
		return "RotatedBRIEF"
	default:
		return fmt.Sprintf("DescriptorKind(%d)", uint8(k))
	}
}

// Descriptor is a 512-bit binary descriptor. Test i is stored in byte
// i/8 at bit i%8.
type Descriptor struct {
	Kind DescriptorKind
	Bits [DescriptorBits / 8]uint8
}

// Bit reports the result of test i.
func (d *Descriptor) Bit(i int) bool {
	return d.Bits[i/8]&(1<<(i%8)) != 0
}

// SetBit records test i as passed.
func (d *Descriptor) SetBit(i int) {
	d.Bits[i/8] |= 1 << (i % 8)
}

// Distance returns the Hamming distance between d and o. Both must carry
// the same kind, and neither may be NoDescriptor.
func (d *Descriptor) Distance(o *Descriptor) int {
	if d.Kind != o.Kind || d.Kind == NoDescriptor {
		panic(fmt.Errorf("%w: %v and %v", improc.ErrDescriptorMismatch, d.Kind, o.Kind))
	}
	return hamming.Bytes(d.Bits[:], o.Bits[:])
}
