// Package packet provides a minimal worked example of stream.Serializable:
// a ping message carrying a sequence number (relative-encoded against a
// previous one when the caller has one on hand), a timestamp, and a short
// payload string, followed by the trailing safety check. It exists to give
// the stream/serialize packages something concrete to compile against and
// something for cmd/yjbctl to measure and round-trip.
//
// PingPacket is not a reliability channel: it carries no acks and attempts
// no retransmission. That logic belongs to a layer above this core (spec.md
// section 1's connection/channel layer), which is out of scope here.
package packet

import (
	"github.com/Green-Sky/yojimbo/serialize"
	"github.com/Green-Sky/yojimbo/stream"
)

// MaxPayloadLength bounds PingPacket.Payload.
const MaxPayloadLength = 64

// PingPacket is a tiny heartbeat message: a sequence number, a send
// timestamp, and a short free-form payload.
type PingPacket struct {
	Sequence  uint16
	Timestamp float32
	Payload   string

	// When HasPrevious is true, Sequence is relative-encoded against
	// PreviousSequence using serialize.RelativeSequence instead of
	// spending a full 16 bits on it. A connection sending a steady stream
	// of pings sets this to the sequence it sent last time.
	//
	// PreviousSequence is never itself placed on the wire: relative
	// encoding only pays off because the reference sequence is carrier
	// state both ends already agree on (e.g. "the last sequence this
	// connection sent"), exactly as yojimbo's connection layer tracks it
	// above this packet. Callers preparing a Reader for Serialize MUST
	// set PreviousSequence to that shared reference themselves before
	// calling Serialize when HasPrevious will read back true; a bare
	// zero-value PingPacket has no reference and will decode garbage.
	PreviousSequence uint16
	HasPrevious      bool
}

var _ stream.Serializable = (*PingPacket)(nil)

// Serialize implements stream.Serializable. The same method runs against a
// *stream.Writer, *stream.Reader or *stream.Measurer; which one decides
// whether it reads, writes, or merely counts bits. When HasPrevious is
// true, the caller is responsible for PreviousSequence already holding the
// shared reference sequence on both the write and the read side — see the
// field doc comment.
func (p *PingPacket) Serialize(s stream.Stream) bool {
	if !s.SerializeBool(&p.HasPrevious) {
		return false
	}
	if p.HasPrevious {
		if !serialize.RelativeSequence(s, p.PreviousSequence, &p.Sequence) {
			return false
		}
	} else {
		seq := uint32(p.Sequence)
		if !serialize.Bits(s, &seq, 16) {
			return false
		}
		if s.IsReading() {
			p.Sequence = uint16(seq)
		}
	}

	if !serialize.Float32(s, &p.Timestamp) {
		return false
	}

	if !serialize.FixedString(s, &p.Payload, MaxPayloadLength) {
		return false
	}

	return serialize.Check(s)
}
