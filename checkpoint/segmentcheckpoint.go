package checkpoint

import (
	"errors"

	"github.com/forestrie/ctlog/sig"
	"github.com/forestrie/ctlog/wire"
)

var (
	// ErrShortBuffer is returned when fewer bytes remain than the fixed
	// header of a checkpoint requires.
	ErrShortBuffer = errors.New("checkpoint: buffer too short")
	// ErrBadSignature is returned when the embedded DigitallySigned
	// fails its prefix-parse.
	ErrBadSignature = errors.New("checkpoint: embedded signature is malformed")
	// ErrBadRoot is returned when the trailing root material is not
	// exactly 32 bytes.
	ErrBadRoot = errors.New("checkpoint: root is not exactly 32 bytes")
)

// LogSegmentCheckpoint is a signed commitment to the Merkle root over
// segment_size leaves of segment sequence_number.
type LogSegmentCheckpoint struct {
	SequenceNumber uint32
	SegmentSize    uint32
	Signature      sig.DigitallySigned
	Root           [wire.HashSize]byte
}

// Serialize encodes the signed form:
// Uint(4) sequence_number || Uint(4) segment_size || DigitallySigned signature || Hash root.
func (c LogSegmentCheckpoint) Serialize() ([]byte, error) {
	sigBytes, err := c.Signature.Serialize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 8+len(sigBytes)+wire.HashSize)
	wire.PutUint32(buf[0:4], c.SequenceNumber)
	wire.PutUint32(buf[4:8], c.SegmentSize)
	copy(buf[8:8+len(sigBytes)], sigBytes)
	copy(buf[8+len(sigBytes):], c.Root[:])
	return buf, nil
}

// SerializeTreeData encodes the hash-oracle preimage, distinct from
// the signed wire form: Uint(1) tree_type=LOG_SEGMENT_TREE ||
// Uint(4) sequence_number || Uint(4) segment_size || Hash root.
func (c LogSegmentCheckpoint) SerializeTreeData() []byte {
	buf := make([]byte, 1+4+4+wire.HashSize)
	wire.PutUint8(buf[0:1], uint8(LogSegmentTree))
	wire.PutUint32(buf[1:5], c.SequenceNumber)
	wire.PutUint32(buf[5:9], c.SegmentSize)
	copy(buf[9:], c.Root[:])
	return buf
}

// DeserializeLogSegmentCheckpoint parses the signed form of a LogSegmentCheckpoint. It
// fails if fewer than 8 bytes are present, if the embedded signature's
// prefix-parse fails, or if exactly 32 trailing bytes do not remain
// after the signature.
func DeserializeLogSegmentCheckpoint(buf []byte) (LogSegmentCheckpoint, error) {
	if len(buf) < 8 {
		return LogSegmentCheckpoint{}, ErrShortBuffer
	}
	seq := wire.Uint32(buf[0:4])
	size := wire.Uint32(buf[4:8])

	s, n := sig.ReadFromString(buf[8:])
	if n == 0 {
		return LogSegmentCheckpoint{}, ErrBadSignature
	}
	rest := buf[8+n:]
	if len(rest) != wire.HashSize {
		return LogSegmentCheckpoint{}, ErrBadRoot
	}
	root, err := wire.CopyHash(rest)
	if err != nil {
		return LogSegmentCheckpoint{}, err
	}
	return LogSegmentCheckpoint{
		SequenceNumber: seq,
		SegmentSize:    size,
		Signature:      s,
		Root:           root,
	}, nil
}
