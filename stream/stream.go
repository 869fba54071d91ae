// Package stream provides the three stream abstractions — Writer, Reader,
// Measurer — that a single user-defined Serialize method compiles against
// interchangeably (spec section 4.4). Each stream exposes the same named
// operations; the direction a given call takes is decided at runtime by
// which concrete stream a Serializable was handed, not by template
// instantiation (Go has no templates — this is the option (a) answer
// spec.md section 9 recommends: an interface plus IsReading/IsWriting).
package stream

// Stream is implemented by Writer, Reader and Measurer. A Serializable's
// Serialize method is written once against this interface and produces
// three different behaviors depending on which concrete stream it runs
// against.
//
// Every method returns false to signal failure. On a Writer or Measurer
// that can only happen for programmer error (and in Debug mode those
// panic instead — see bits.Debug); on a Reader it can always happen
// because the input is untrusted, and callers MUST propagate false with
// an early return exactly as spec section 7 describes.
type Stream interface {
	// IsReading reports whether this stream consumes bits from a buffer.
	IsReading() bool
	// IsWriting reports whether this stream produces bits into a buffer.
	IsWriting() bool

	// Context returns the opaque value passed to the stream's
	// constructor, the Go analogue of spec.md's void* context pointer.
	// A Serialize method may type-assert it back to whatever type the
	// caller agreed on (e.g. protocol version, message type registry).
	Context() any

	// SerializeInteger serializes *value, which must lie in [min,max],
	// using bits_required(min,max) bits.
	SerializeInteger(value *int32, min, max int32) bool
	// SerializeBits serializes the low n bits of *value, 1 <= n <= 32.
	SerializeBits(value *uint32, n int) bool
	// SerializeBool serializes *value as a single bit.
	SerializeBool(value *bool) bool
	// SerializeFloat32 serializes *value as 32 raw bits.
	SerializeFloat32(value *float32) bool
	// SerializeFloat64 serializes *value as 64 raw bits (low word then
	// high word).
	SerializeFloat64(value *float64) bool
	// SerializeUint32 serializes *value as 32 raw bits.
	SerializeUint32(value *uint32) bool
	// SerializeUint64 serializes *value as 64 raw bits (low word then
	// high word).
	SerializeUint64(value *uint64) bool
	// SerializeVarint32 serializes *value using the varint encoding.
	SerializeVarint32(value *uint32) bool
	// SerializeVarint64 serializes *value using the varint encoding.
	SerializeVarint64(value *uint64) bool
	// SerializeBytes aligns to a byte boundary, then serializes exactly
	// len(data) bytes: on a Writer/Measurer data is the source, on a
	// Reader data is the destination to fill.
	SerializeBytes(data []byte) bool
	// SerializeAlign pads/consumes up to 7 bits to reach a byte boundary.
	// On a Reader it returns false if any padding bit read back non-zero.
	SerializeAlign() bool
	// SerializeCheck aligns, then serializes the 32 bit safety-check
	// magic. On a Reader it returns false if the decoded value doesn't
	// match.
	SerializeCheck() bool
}

// Serializable is implemented once per message type; calling Serialize
// against a *Writer, *Reader or *Measurer yields the three specializations
// spec.md section 9 describes.
type Serializable interface {
	Serialize(s Stream) bool
}

// CheckMagic is the literal safety-check value spec.md section 6 defines,
// written little-endian as 0x78 0x56 0x34 0x12 on the wire.
const CheckMagic uint32 = 0x12345678
