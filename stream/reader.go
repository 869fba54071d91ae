package stream

import (
	"math"

	"github.com/Green-Sky/yojimbo/bits"
	"github.com/Green-Sky/yojimbo/varint"
)

// Reader consumes bits from untrusted input. Every operation that can
// fail on malformed or truncated input returns false instead of panicking
// (spec section 7); callers (via the serialize package's early-return
// helpers) must propagate that false all the way out to discard the
// packet.
type Reader struct {
	br  *bits.Reader
	ctx any
}

// NewReader returns a Reader over buf. numBytes is the logical packet
// length; len(buf) must already be rounded up to a multiple of 4 bytes
// (see bits.PadLen / bits.NewReader).
func NewReader(buf []byte, numBytes int, ctx any) *Reader {
	return &Reader{br: bits.NewReader(buf, numBytes), ctx: ctx}
}

func (r *Reader) IsReading() bool { return true }
func (r *Reader) IsWriting() bool { return false }
func (r *Reader) Context() any    { return r.ctx }

// BitsReader exposes the underlying bit reader, e.g. for BitsRemaining
// diagnostics.
func (r *Reader) BitsReader() *bits.Reader { return r.br }

func (r *Reader) SerializeInteger(value *int32, min, max int32) bool {
	n := bits.Required(uint32(min), uint32(max))
	if n == 0 {
		*value = min
		return true
	}
	if r.br.WouldReadPastEnd(n) {
		return false
	}
	v := int32(r.br.ReadBits(n)) + min
	if v < min || v > max {
		return false
	}
	*value = v
	return true
}

func (r *Reader) SerializeBits(value *uint32, n int) bool {
	if r.br.WouldReadPastEnd(n) {
		return false
	}
	*value = r.br.ReadBits(n)
	return true
}

func (r *Reader) SerializeBool(value *bool) bool {
	if r.br.WouldReadPastEnd(1) {
		return false
	}
	*value = r.br.ReadBits(1) != 0
	return true
}

func (r *Reader) SerializeFloat32(value *float32) bool {
	if r.br.WouldReadPastEnd(32) {
		return false
	}
	*value = math.Float32frombits(r.br.ReadBits(32))
	return true
}

func (r *Reader) SerializeFloat64(value *float64) bool {
	if r.br.WouldReadPastEnd(64) {
		return false
	}
	lo := uint64(r.br.ReadBits(32))
	hi := uint64(r.br.ReadBits(32))
	*value = math.Float64frombits(lo | hi<<32)
	return true
}

func (r *Reader) SerializeUint32(value *uint32) bool {
	if r.br.WouldReadPastEnd(32) {
		return false
	}
	*value = r.br.ReadBits(32)
	return true
}

func (r *Reader) SerializeUint64(value *uint64) bool {
	if r.br.WouldReadPastEnd(64) {
		return false
	}
	lo := uint64(r.br.ReadBits(32))
	hi := uint64(r.br.ReadBits(32))
	*value = lo | hi<<32
	return true
}

func (r *Reader) SerializeVarint32(value *uint32) bool {
	v, ok := r.readVarint()
	if !ok {
		return false
	}
	if v > 0xFFFFFFFF {
		*value = 0xFFFFFFFF
	} else {
		*value = uint32(v)
	}
	return true
}

func (r *Reader) SerializeVarint64(value *uint64) bool {
	v, ok := r.readVarint()
	if !ok {
		return false
	}
	*value = v
	return true
}

// readVarint reads a varint byte-by-byte off the bit reader (the bytes
// themselves need not be aligned; varints are read as a sequence of 8-bit
// fields directly, same as the writer emits them).
func (r *Reader) readVarint() (uint64, bool) {
	var buf [varint.MaxLen]byte
	n := 0
	for n < varint.MaxLen {
		if r.br.WouldReadPastEnd(8) {
			return 0, false
		}
		b := byte(r.br.ReadBits(8))
		buf[n] = b
		n++
		if n == varint.MaxLen {
			break
		}
		if b&0x80 == 0 {
			break
		}
	}
	v, consumed := varint.Get(buf[:n])
	if consumed == 0 || int(consumed) != n {
		return 0, false
	}
	return v, true
}

func (r *Reader) SerializeBytes(data []byte) bool {
	if !r.SerializeAlign() {
		return false
	}
	if r.br.WouldReadPastEnd(len(data) * 8) {
		return false
	}
	r.br.ReadBytes(data)
	return true
}

func (r *Reader) SerializeAlign() bool {
	return r.br.ReadAlign()
}

func (r *Reader) SerializeCheck() bool {
	if !r.SerializeAlign() {
		return false
	}
	if r.br.WouldReadPastEnd(32) {
		return false
	}
	value := r.br.ReadBits(32)
	return value == CheckMagic
}
