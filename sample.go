package improc

import "github.com/gogpu/improc/internal/color"

// Sample is the capability contract of a pixel sample encoding. Every
// encoding converts to and from three shared domains (8-bit integer,
// normalized float in [0,1], boolean) and declares its bounds.
//
// The methods are defined on value receivers of distinct underlying types,
// so Image[U8], Image[F32] and Image[Bool] are each compiled for their own
// shape and the per-pixel calls stay concrete.
//
// Constructors ignore their receiver; the idiom is:
//
//	var zero S
//	v := zero.FromF32(0.5)
type Sample[S any] interface {
	comparable

	U8() uint8
	F32() float32
	Bool() bool

	FromU8(v uint8) S
	FromF32(v float32) S
	FromBool(v bool) S

	// Min and Max are the encoding's bounds.
	Min() S
	Max() S

	// Less orders samples; rank filters sort with it.
	Less(other S) bool
}

// U8 is an 8-bit unsigned sample with bounds 0 and 255.
type U8 uint8

func (v U8) U8() uint8          { return uint8(v) }
func (v U8) F32() float32       { return color.ByteToFloat(uint8(v)) }
func (v U8) Bool() bool         { return v != 0 }
func (U8) FromU8(v uint8) U8    { return U8(v) }
func (U8) FromF32(v float32) U8 { return U8(color.FloatToByte(v)) }
func (U8) FromBool(v bool) U8   { return U8(boolToByte(v)) }
func (U8) Min() U8              { return 0 }
func (U8) Max() U8              { return 255 }
func (v U8) Less(other U8) bool { return v < other }

// F32 is a normalized floating-point sample with bounds 0 and 1.
// Values outside the bounds are allowed as intermediate results (filter
// responses, gradients); they clamp when converted to U8.
type F32 float32

func (v F32) U8() uint8           { return color.FloatToByte(float32(v)) }
func (v F32) F32() float32        { return float32(v) }
func (v F32) Bool() bool          { return v != 0 }
func (F32) FromU8(v uint8) F32    { return F32(color.ByteToFloat(v)) }
func (F32) FromF32(v float32) F32 { return F32(v) }
func (F32) FromBool(v bool) F32   { return F32(float32(boolToByte(v)) / 255) }
func (F32) Min() F32              { return 0 }
func (F32) Max() F32              { return 1 }
func (v F32) Less(other F32) bool { return v < other }

// Bool is a binary sample; false and true map to the integer bounds.
type Bool bool

func (v Bool) U8() uint8            { return boolToByte(bool(v)) }
func (v Bool) F32() float32         { return float32(boolToByte(bool(v))) / 255 }
func (v Bool) Bool() bool           { return bool(v) }
func (Bool) FromU8(v uint8) Bool    { return v != 0 }
func (Bool) FromF32(v float32) Bool { return v != 0 }
func (Bool) FromBool(v bool) Bool   { return Bool(v) }
func (Bool) Min() Bool              { return false }
func (Bool) Max() Bool              { return true }
func (v Bool) Less(other Bool) bool { return !bool(v) && bool(other) }

func boolToByte(v bool) uint8 {
	if v {
		return 255
	}
	return 0
}

// Convert maps a sample into another encoding. Same-encoding conversions
// are identities; U8 and Bool sources go through the integer domain so no
// rounding is introduced.
func Convert[D Sample[D], S Sample[S]](s S) D {
	var zero D
	switch any(s).(type) {
	case U8, Bool:
		return zero.FromU8(s.U8())
	default:
		return zero.FromF32(s.F32())
	}
}
