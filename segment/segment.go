// Package segment implements SegmentData, which ties a
// LogSegmentCheckpoint and a LogHeadCheckpoint together under one
// timestamp. Unlike checkpoint.LogSegmentCheckpoint/LogHeadCheckpoint,
// this wire form does not carry the checkpoints' Merkle roots directly
// — those are reconstructed by a verifier from the corresponding
// tree-data forms and the signature material.
package segment

import (
	"errors"

	"github.com/forestrie/ctlog/checkpoint"
	"github.com/forestrie/ctlog/sig"
	"github.com/forestrie/ctlog/wire"
)

var (
	// ErrShortBuffer is returned when fewer than 12 bytes are present
	// for the fixed-width prefix.
	ErrShortBuffer = errors.New("segment: buffer too short")
	// ErrBadSegmentSignature is returned when the first (prefix-parsed)
	// embedded signature fails to parse.
	ErrBadSegmentSignature = errors.New("segment: segment signature is malformed")
	// ErrBadHeadSignature is returned when the second (strict-parsed)
	// embedded signature fails to consume the remaining buffer exactly.
	ErrBadHeadSignature = errors.New("segment: head signature is malformed")
)

// SegmentData is {log_segment, log_head, timestamp}. Cross-invariant:
// after Deserialize, LogSegment.SequenceNumber == LogHead.SequenceNumber.
type SegmentData struct {
	LogSegment checkpoint.LogSegmentCheckpoint
	LogHead    checkpoint.LogHeadCheckpoint
	Timestamp  uint32
}

// SerializeSegmentInfo encodes:
// Uint(4) sequence_number || Uint(4) timestamp || Uint(4) segment_size ||
// DigitallySigned segment_sig || DigitallySigned head_sig.
func (s SegmentData) SerializeSegmentInfo() ([]byte, error) {
	segSig, err := s.LogSegment.Signature.Serialize()
	if err != nil {
		return nil, err
	}
	headSig, err := s.LogHead.Signature.Serialize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 12+len(segSig)+len(headSig))
	wire.PutUint32(buf[0:4], s.LogSegment.SequenceNumber)
	wire.PutUint32(buf[4:8], s.Timestamp)
	wire.PutUint32(buf[8:12], s.LogSegment.SegmentSize)
	copy(buf[12:12+len(segSig)], segSig)
	copy(buf[12+len(segSig):], headSig)
	return buf, nil
}

// DeserializeSegmentInfo parses the above order. The first embedded
// signature is parsed in prefix mode (consumes only its declared
// bytes); the second is parsed in strict mode (must consume all
// remaining bytes) — the canonical way this module disambiguates two
// variable-length trailers. On success, LogHead's
// SequenceNumber is set from LogSegment's; the Merkle roots of the
// embedded checkpoints are not present in this wire form and are left
// as the zero value, to be reconstructed by a verifier out-of-band.
func DeserializeSegmentInfo(buf []byte) (SegmentData, error) {
	if len(buf) < 12 {
		return SegmentData{}, ErrShortBuffer
	}
	sequenceNumber := wire.Uint32(buf[0:4])
	timestamp := wire.Uint32(buf[4:8])
	segmentSize := wire.Uint32(buf[8:12])

	segSig, n := sig.ReadFromString(buf[12:])
	if n == 0 {
		return SegmentData{}, ErrBadSegmentSignature
	}

	headSig, err := sig.Deserialize(buf[12+n:])
	if err != nil {
		return SegmentData{}, ErrBadHeadSignature
	}

	return SegmentData{
		LogSegment: checkpoint.LogSegmentCheckpoint{
			SequenceNumber: sequenceNumber,
			SegmentSize:    segmentSize,
			Signature:      segSig,
		},
		LogHead: checkpoint.LogHeadCheckpoint{
			SequenceNumber: sequenceNumber,
			Signature:      headSig,
		},
		Timestamp: timestamp,
	}, nil
}
