package serialize_test

import (
	"testing"

	"github.com/Green-Sky/yojimbo/bits"
	"github.com/Green-Sky/yojimbo/serialize"
	"github.com/Green-Sky/yojimbo/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStringRoundTrip(t *testing.T) {
	buf := make([]byte, bits.PadLen(64))
	w := stream.NewWriter(buf, nil)
	msg := "hello, packet"
	require.True(t, serialize.FixedString(w, &msg, 32))
	require.True(t, serialize.Check(w))
	w.BitsWriter().FlushBits()

	r := stream.NewReader(buf, w.BitsWriter().BytesWritten(), nil)
	var got string
	require.True(t, serialize.FixedString(r, &got, 32))
	require.True(t, serialize.Check(r))
	assert.Equal(t, msg, got)
}

func TestFixedStringRejectsOversizeOnWrite(t *testing.T) {
	bits.Debug = true
	buf := make([]byte, bits.PadLen(8))
	w := stream.NewWriter(buf, nil)
	msg := "this string is far too long for the bound"
	assert.Panics(t, func() {
		serialize.FixedString(w, &msg, 4)
	})
}

func TestFixedStringLengthOverrunOnReadFails(t *testing.T) {
	buf := make([]byte, bits.PadLen(4))
	w := stream.NewWriter(buf, nil)
	n := int32(100) // declares a length far past what's actually in the buffer
	require.True(t, w.SerializeInteger(&n, 0, 100))
	w.BitsWriter().FlushBits()

	r := stream.NewReader(buf, w.BitsWriter().BytesWritten(), nil)
	var got string
	assert.False(t, serialize.FixedString(r, &got, 100))
}

func TestBitsRequiredMatchesBitsPackage(t *testing.T) {
	assert.Equal(t, uint32(0), serialize.BitsRequired(5, 5))
	assert.Equal(t, uint32(7), serialize.BitsRequired(0, 100))
	assert.Equal(t, uint32(1), serialize.BitsRequired(0, 1))
}

// relativeRoundTrip writes previous/current through RelativeInt, then reads
// it back, returning the decoded value and the number of bits the write
// consumed.
func relativeRoundTrip(t *testing.T, previous, current uint32) (uint32, int) {
	t.Helper()
	buf := make([]byte, bits.PadLen(16))
	w := stream.NewWriter(buf, nil)
	c := current
	require.True(t, serialize.RelativeInt(w, previous, &c))
	w.BitsWriter().FlushBits()
	bitsWritten := w.BitsWriter().BitsWritten()

	r := stream.NewReader(buf, w.BitsWriter().BytesWritten(), nil)
	var got uint32
	require.True(t, serialize.RelativeInt(r, previous, &got))
	return got, bitsWritten
}

func TestRelativeIntBucketBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		previous   uint32
		difference uint32
		maxBits    int
	}{
		{"delta=1", 1000, 1, 1},
		{"delta=6", 1000, 6, 1 + 1 + 3},
		{"delta=7", 1000, 7, 1 + 1 + 1 + 5},
		{"delta=23", 1000, 23, 1 + 1 + 1 + 5},
		{"delta=24", 1000, 24, 1 + 1 + 1 + 1 + 9},
		{"delta=280", 1000, 280, 1 + 1 + 1 + 1 + 9},
		{"delta=281", 1000, 281, 1 + 1 + 1 + 1 + 1 + 13},
		{"delta=4377", 1000, 4377, 1 + 1 + 1 + 1 + 1 + 13},
		{"delta=4378", 1000, 4378, 1 + 1 + 1 + 1 + 1 + 1 + 17},
		{"delta=69914", 1000, 69914, 1 + 1 + 1 + 1 + 1 + 1 + 17},
		{"delta=69915 falls back to absolute", 1000, 69915, 1 + 1 + 1 + 1 + 1 + 1 + 32},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, bitsWritten := relativeRoundTrip(t, c.previous, c.previous+c.difference)
			assert.Equal(t, c.previous+c.difference, got)
			assert.LessOrEqual(t, bitsWritten, c.maxBits)
		})
	}
}

func TestRelativeAckRoundTripNearAndFar(t *testing.T) {
	roundTrip := func(sequence, ack uint16) uint16 {
		buf := make([]byte, bits.PadLen(8))
		w := stream.NewWriter(buf, nil)
		a := ack
		require.True(t, serialize.RelativeAck(w, sequence, &a))
		w.BitsWriter().FlushBits()

		r := stream.NewReader(buf, w.BitsWriter().BytesWritten(), nil)
		var got uint16
		require.True(t, serialize.RelativeAck(r, sequence, &got))
		return got
	}

	assert.Equal(t, uint16(995), roundTrip(1000, 995))   // delta=5, in-range
	assert.Equal(t, uint16(100), roundTrip(1000, 100))   // far back, absolute 16 bits
	assert.Equal(t, uint16(65530), roundTrip(5, 65530))  // ack wrapped behind sequence
}

func TestRelativeSequenceHandlesWraparound(t *testing.T) {
	roundTrip := func(sequence1, sequence2 uint16) uint16 {
		buf := make([]byte, bits.PadLen(16))
		w := stream.NewWriter(buf, nil)
		s2 := sequence2
		require.True(t, serialize.RelativeSequence(w, sequence1, &s2))
		w.BitsWriter().FlushBits()

		r := stream.NewReader(buf, w.BitsWriter().BytesWritten(), nil)
		var got uint16
		require.True(t, serialize.RelativeSequence(r, sequence1, &got))
		return got
	}

	assert.Equal(t, uint16(10), roundTrip(5, 10))
	// sequence2 has wrapped around past 65535 relative to sequence1.
	assert.Equal(t, uint16(2), roundTrip(65530, 2))
}
