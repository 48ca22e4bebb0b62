package checkpoint

import (
	"github.com/forestrie/ctlog/sig"
	"github.com/forestrie/ctlog/wire"
)

// LogHeadCheckpoint is a signed commitment to the Merkle root over the
// first sequence_number+1 segment checkpoints: the "log of logs".
type LogHeadCheckpoint struct {
	SequenceNumber uint32
	Signature      sig.DigitallySigned
	Root           [wire.HashSize]byte
}

// Serialize encodes the signed form:
// Uint(4) sequence_number || DigitallySigned signature || Hash root.
func (c LogHeadCheckpoint) Serialize() ([]byte, error) {
	sigBytes, err := c.Signature.Serialize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 4+len(sigBytes)+wire.HashSize)
	wire.PutUint32(buf[0:4], c.SequenceNumber)
	copy(buf[4:4+len(sigBytes)], sigBytes)
	copy(buf[4+len(sigBytes):], c.Root[:])
	return buf, nil
}

// SerializeTreeData encodes the hash-oracle preimage:
// Uint(1) tree_type=SEGMENT_INFO_TREE || Uint(4) sequence_number || Hash root.
func (c LogHeadCheckpoint) SerializeTreeData() []byte {
	buf := make([]byte, 1+4+wire.HashSize)
	wire.PutUint8(buf[0:1], uint8(SegmentInfoTree))
	wire.PutUint32(buf[1:5], c.SequenceNumber)
	copy(buf[5:], c.Root[:])
	return buf
}

// DeserializeLogHeadCheckpoint parses the signed form of a
// LogHeadCheckpoint. It fails if fewer than 4 bytes are present, if
// the embedded signature's prefix-parse fails, or if exactly 32
// trailing bytes do not remain after the signature.
func DeserializeLogHeadCheckpoint(buf []byte) (LogHeadCheckpoint, error) {
	if len(buf) < 4 {
		return LogHeadCheckpoint{}, ErrShortBuffer
	}
	seq := wire.Uint32(buf[0:4])

	s, n := sig.ReadFromString(buf[4:])
	if n == 0 {
		return LogHeadCheckpoint{}, ErrBadSignature
	}
	rest := buf[4+n:]
	if len(rest) != wire.HashSize {
		return LogHeadCheckpoint{}, ErrBadRoot
	}
	root, err := wire.CopyHash(rest)
	if err != nil {
		return LogHeadCheckpoint{}, err
	}
	return LogHeadCheckpoint{
		SequenceNumber: seq,
		Signature:      s,
		Root:           root,
	}, nil
}
