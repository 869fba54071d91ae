package serialize

import "github.com/Green-Sky/yojimbo/stream"

// RelativeInt serializes current relative to previous, which must be
// smaller, using a cascade of size-discriminator bits: deltas of 1 cost a
// single bit, 2-6 cost five, 7-23 cost eight, 24-280 cost thirteen,
// 281-4377 cost eighteen, 4378-69914 cost twenty-three, and anything past
// that (including a current smaller than previous, whose uint32 difference
// wraps to a large value) falls back to a raw 32-bit absolute value with six
// bits of discriminator ahead of it. Small
// forward-moving deltas are the common case for sequence numbers and
// acks, so the cascade trades a handful of extra bits on the rare large
// jump for a large saving on the typical +1.
func RelativeInt(s stream.Stream, previous uint32, current *uint32) bool {
	var difference uint32
	if s.IsWriting() {
		difference = *current - previous
	}

	oneBit := difference == 1
	if !s.SerializeBool(&oneBit) {
		return false
	}
	if oneBit {
		if s.IsReading() {
			*current = previous + 1
		}
		return true
	}

	twoBits := difference <= 6
	if !s.SerializeBool(&twoBits) {
		return false
	}
	if twoBits {
		d := int32(difference)
		if !s.SerializeInteger(&d, 2, 6) {
			return false
		}
		if s.IsReading() {
			*current = previous + uint32(d)
		}
		return true
	}

	fourBits := difference <= 23
	if !s.SerializeBool(&fourBits) {
		return false
	}
	if fourBits {
		d := int32(difference)
		if !s.SerializeInteger(&d, 7, 23) {
			return false
		}
		if s.IsReading() {
			*current = previous + uint32(d)
		}
		return true
	}

	eightBits := difference <= 280
	if !s.SerializeBool(&eightBits) {
		return false
	}
	if eightBits {
		d := int32(difference)
		if !s.SerializeInteger(&d, 24, 280) {
			return false
		}
		if s.IsReading() {
			*current = previous + uint32(d)
		}
		return true
	}

	twelveBits := difference <= 4377
	if !s.SerializeBool(&twelveBits) {
		return false
	}
	if twelveBits {
		d := int32(difference)
		if !s.SerializeInteger(&d, 281, 4377) {
			return false
		}
		if s.IsReading() {
			*current = previous + uint32(d)
		}
		return true
	}

	sixteenBits := difference <= 69914
	if !s.SerializeBool(&sixteenBits) {
		return false
	}
	if sixteenBits {
		d := int32(difference)
		if !s.SerializeInteger(&d, 4378, 69914) {
			return false
		}
		if s.IsReading() {
			*current = previous + uint32(d)
		}
		return true
	}

	value := *current
	if !s.SerializeUint32(&value) {
		return false
	}
	if s.IsReading() {
		*current = value
	}
	return true
}

// RelativeAck serializes ack relative to sequence, both 16-bit values that
// wrap modulo 65536. Acks within 64 of sequence (the common case — most
// acks arrive for packets sent within the last few round trips) cost a bit
// plus six bits of delta; anything further back falls back to the full 16
// bit value.
func RelativeAck(s stream.Stream, sequence uint16, ack *uint16) bool {
	var ackDelta int32
	var ackInRange bool
	if s.IsWriting() {
		if *ack < sequence {
			ackDelta = int32(sequence) - int32(*ack)
		} else {
			ackDelta = int32(sequence) + 65536 - int32(*ack)
		}
		ackInRange = ackDelta <= 64
	}
	if !s.SerializeBool(&ackInRange) {
		return false
	}
	if ackInRange {
		if !s.SerializeInteger(&ackDelta, 1, 64) {
			return false
		}
		if s.IsReading() {
			*ack = uint16(int32(sequence) - ackDelta)
		}
		return true
	}
	value := uint32(*ack)
	if !s.SerializeBits(&value, 16) {
		return false
	}
	if s.IsReading() {
		*ack = uint16(value)
	}
	return true
}

// RelativeSequence serializes sequence2 relative to sequence1 through
// RelativeInt, widening sequence2 by 65536 on write whenever it has wrapped
// behind sequence1 so the underlying cascade always sees a positive
// difference, then demodulating the same widening back out on read.
func RelativeSequence(s stream.Stream, sequence1 uint16, sequence2 *uint16) bool {
	a := uint32(sequence1)
	if s.IsWriting() {
		b := uint32(*sequence2)
		if sequence1 > *sequence2 {
			b += 65536
		}
		return RelativeInt(s, a, &b)
	}

	var b uint32
	if !RelativeInt(s, a, &b) {
		return false
	}
	if b >= 65536 {
		b -= 65536
	}
	*sequence2 = uint16(b)
	return true
}
