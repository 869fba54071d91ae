package stream

import (
	"math"

	"github.com/Green-Sky/yojimbo/bits"
	"github.com/Green-Sky/yojimbo/varint"
)

// Writer produces bits into a caller-owned buffer. All of its failure
// modes are programmer errors (spec section 7): a Writer never returns
// false for any reason a reader would, because its inputs are assumed
// trusted and pre-measured by a Measurer run over the same Serialize
// method beforehand.
type Writer struct {
	bw  *bits.Writer
	ctx any
}

// NewWriter returns a Writer packing into buf, whose length must be a
// multiple of 4 (see bits.NewWriter).
func NewWriter(buf []byte, ctx any) *Writer {
	return &Writer{bw: bits.NewWriter(buf), ctx: ctx}
}

func (w *Writer) IsReading() bool { return false }
func (w *Writer) IsWriting() bool { return true }
func (w *Writer) Context() any    { return w.ctx }

// BitsWriter exposes the underlying bit writer for callers that need raw
// access (e.g. to call FlushBits once serialization completes).
func (w *Writer) BitsWriter() *bits.Writer { return w.bw }

func (w *Writer) SerializeInteger(value *int32, min, max int32) bool {
	n := bits.Required(uint32(min), uint32(max))
	if n == 0 {
		return true
	}
	w.bw.WriteBits(uint32(*value-min), n)
	return true
}

func (w *Writer) SerializeBits(value *uint32, n int) bool {
	w.bw.WriteBits(*value, n)
	return true
}

func (w *Writer) SerializeBool(value *bool) bool {
	var v uint32
	if *value {
		v = 1
	}
	w.bw.WriteBits(v, 1)
	return true
}

func (w *Writer) SerializeFloat32(value *float32) bool {
	v := math.Float32bits(*value)
	w.bw.WriteBits(v, 32)
	return true
}

func (w *Writer) SerializeFloat64(value *float64) bool {
	v := math.Float64bits(*value)
	w.bw.WriteBits(uint32(v), 32)
	w.bw.WriteBits(uint32(v>>32), 32)
	return true
}

func (w *Writer) SerializeUint32(value *uint32) bool {
	w.bw.WriteBits(*value, 32)
	return true
}

func (w *Writer) SerializeUint64(value *uint64) bool {
	w.bw.WriteBits(uint32(*value), 32)
	w.bw.WriteBits(uint32(*value>>32), 32)
	return true
}

func (w *Writer) SerializeVarint32(value *uint32) bool {
	return w.writeVarint(uint64(*value))
}

func (w *Writer) SerializeVarint64(value *uint64) bool {
	return w.writeVarint(*value)
}

func (w *Writer) writeVarint(v uint64) bool {
	var buf [varint.MaxLen]byte
	n := varint.Put(buf[:], v)
	for i := 0; i < n; i++ {
		w.bw.WriteBits(uint32(buf[i]), 8)
	}
	return true
}

func (w *Writer) SerializeBytes(data []byte) bool {
	w.bw.WriteAlign()
	w.bw.WriteBytes(data)
	return true
}

func (w *Writer) SerializeAlign() bool {
	w.bw.WriteAlign()
	return true
}

func (w *Writer) SerializeCheck() bool {
	w.bw.WriteAlign()
	w.bw.WriteBits(CheckMagic, 32)
	return true
}
