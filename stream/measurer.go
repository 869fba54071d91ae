package stream

import (
	"github.com/Green-Sky/yojimbo/bits"
	"github.com/Green-Sky/yojimbo/varint"
)

// Measurer counts the bits a Serialize call would produce without writing
// anything, so a packet's size can be checked against a byte budget before
// any bytes commit to the wire. Like Writer, it runs the "write" branch of
// a shared Serialize method — IsWriting is true, IsReading is false — so
// it reads the real field values to compute variable-width costs (varints,
// relative integers) instead of merely summing fixed widths.
//
// Measurer never fails: every method always returns true. Its only
// observable effect is growing an internal bit counter.
type Measurer struct {
	bitCount int
	ctx      any
}

// NewMeasurer returns an empty Measurer.
func NewMeasurer(ctx any) *Measurer {
	return &Measurer{ctx: ctx}
}

func (m *Measurer) IsReading() bool { return false }
func (m *Measurer) IsWriting() bool { return true }
func (m *Measurer) Context() any    { return m.ctx }

// BitsMeasured returns the running total of bits a real write would
// produce.
func (m *Measurer) BitsMeasured() int { return m.bitCount }

// BytesMeasured returns ceil(BitsMeasured()/8), the packet size budget to
// check against before committing to a real write.
func (m *Measurer) BytesMeasured() int { return (m.bitCount + 7) / 8 }

func (m *Measurer) SerializeInteger(value *int32, min, max int32) bool {
	m.bitCount += bits.Required(uint32(min), uint32(max))
	return true
}

func (m *Measurer) SerializeBits(value *uint32, n int) bool {
	m.bitCount += n
	return true
}

func (m *Measurer) SerializeBool(value *bool) bool {
	m.bitCount++
	return true
}

func (m *Measurer) SerializeFloat32(value *float32) bool {
	m.bitCount += 32
	return true
}

func (m *Measurer) SerializeFloat64(value *float64) bool {
	m.bitCount += 64
	return true
}

func (m *Measurer) SerializeUint32(value *uint32) bool {
	m.bitCount += 32
	return true
}

func (m *Measurer) SerializeUint64(value *uint64) bool {
	m.bitCount += 64
	return true
}

func (m *Measurer) SerializeVarint32(value *uint32) bool {
	m.bitCount += varint.Measure(uint64(*value)) * 8
	return true
}

func (m *Measurer) SerializeVarint64(value *uint64) bool {
	m.bitCount += varint.Measure(*value) * 8
	return true
}

// SerializeBytes adds 7 bits (the worst-case alignment padding) plus 8
// bits per byte, a conservative upper bound on what a real write would
// cost regardless of the surrounding bit position.
func (m *Measurer) SerializeBytes(data []byte) bool {
	m.bitCount += 7 + 8*len(data)
	return true
}

// SerializeAlign adds the worst-case 7 padding bits.
func (m *Measurer) SerializeAlign() bool {
	m.bitCount += 7
	return true
}

// SerializeCheck adds the worst-case 7 align bits plus the 32 bit magic.
func (m *Measurer) SerializeCheck() bool {
	m.bitCount += 7 + 32
	return true
}
