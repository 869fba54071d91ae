// Package serialize is the field vocabulary spec.md section 4.4/9
// describes: one free function per primitive, each a thin wrapper over the
// matching stream.Stream method. This is the idiomatic Go replacement for
// yojimbo's serialize_* macros (a macro that expands to "call this, return
// false on failure" has no Go equivalent worth inventing — a normal
// function taking the stream plus a pointer does the same job without
// preprocessor tricks), so a Serialize method reads as a flat list of
// early-return calls:
//
//	func (p *Packet) Serialize(s stream.Stream) bool {
//		if !serialize.Varint32(s, &p.Sequence) {
//			return false
//		}
//		if !serialize.Check(s) {
//			return false
//		}
//		return true
//	}
package serialize

import (
	"github.com/Green-Sky/yojimbo/bits"
	"github.com/Green-Sky/yojimbo/stream"
)

// Int serializes *value, which must lie in [min,max].
func Int(s stream.Stream, value *int32, min, max int32) bool {
	return s.SerializeInteger(value, min, max)
}

// Bits serializes the low n bits of *value.
func Bits(s stream.Stream, value *uint32, n int) bool {
	return s.SerializeBits(value, n)
}

// Bool serializes *value as a single bit.
func Bool(s stream.Stream, value *bool) bool {
	return s.SerializeBool(value)
}

// Float32 serializes *value as 32 raw bits.
func Float32(s stream.Stream, value *float32) bool {
	return s.SerializeFloat32(value)
}

// Float64 serializes *value as 64 raw bits.
func Float64(s stream.Stream, value *float64) bool {
	return s.SerializeFloat64(value)
}

// Uint32 serializes *value as 32 raw bits.
func Uint32(s stream.Stream, value *uint32) bool {
	return s.SerializeUint32(value)
}

// Uint64 serializes *value as 64 raw bits.
func Uint64(s stream.Stream, value *uint64) bool {
	return s.SerializeUint64(value)
}

// Varint32 serializes *value using the varint encoding.
func Varint32(s stream.Stream, value *uint32) bool {
	return s.SerializeVarint32(value)
}

// Varint64 serializes *value using the varint encoding.
func Varint64(s stream.Stream, value *uint64) bool {
	return s.SerializeVarint64(value)
}

// Bytes aligns to a byte boundary then serializes len(data) bytes.
func Bytes(s stream.Stream, data []byte) bool {
	return s.SerializeBytes(data)
}

// Align pads/consumes up to 7 bits to reach a byte boundary.
func Align(s stream.Stream) bool {
	return s.SerializeAlign()
}

// Check serializes the safety-check magic.
func Check(s stream.Stream) bool {
	return s.SerializeCheck()
}

// BitsRequired returns the number of bits needed to serialize an integer in
// [min,max], yojimbo's bits_required exposed at the field-vocabulary
// surface instead of bits.Required's internal int-returning form.
func BitsRequired(min, max uint32) uint32 {
	return uint32(bits.Required(min, max))
}

// FixedString serializes a string bounded to maxLength bytes: the length is
// serialized as an integer in [0,maxLength] ahead of the raw bytes
// themselves, which go through SerializeBytes.
func FixedString(s stream.Stream, value *string, maxLength int) bool {
	var length int32
	if s.IsWriting() {
		length = int32(len(*value))
		if bits.Debug && length > int32(maxLength) {
			panic("serialize.FixedString: value exceeds maxLength")
		}
	}
	if !s.SerializeInteger(&length, 0, int32(maxLength)) {
		return false
	}
	if s.IsWriting() {
		return s.SerializeBytes([]byte(*value))
	}
	buf := make([]byte, length)
	if !s.SerializeBytes(buf) {
		return false
	}
	*value = string(buf)
	return true
}
