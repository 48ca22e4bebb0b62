// Package auditproof implements AuditProof: a proof path relative to a
// named tree-type, with a variable-length path of 32-byte Merkle
// nodes. The tree-type is not self-describing on the wire: callers
// must know out-of-band which tree a proof belongs to and pass it in
// to Deserialize.
package auditproof

import (
	"errors"

	"github.com/forestrie/ctlog/checkpoint"
	"github.com/forestrie/ctlog/sig"
	"github.com/forestrie/ctlog/wire"
)

var (
	// ErrShortBuffer is returned when fewer bytes remain than a
	// fixed-width field requires.
	ErrShortBuffer = errors.New("auditproof: buffer too short")
	// ErrBadSignature is returned when the embedded DigitallySigned
	// fails its prefix-parse.
	ErrBadSignature = errors.New("auditproof: embedded signature is malformed")
	// ErrAlignment is returned when the bytes remaining after the
	// signature are not an exact multiple of 32.
	ErrAlignment = errors.New("auditproof: audit path is not 32-byte aligned")
)

// AuditProof is the sibling-hash witness that leaf_index is a member
// of a tree of size tree_size under a committed root.
type AuditProof struct {
	TreeType       checkpoint.TreeType
	SequenceNumber uint32
	TreeSize       uint32
	LeafIndex      uint32
	Signature      sig.DigitallySigned
	AuditPath      [][wire.HashSize]byte
}

// Serialize encodes, in order: Uint(4) sequence_number; Uint(4)
// tree_size (only when TreeType == LogSegmentTree — for
// SegmentInfoTree, tree_size is implicit and never appears on the
// wire); Uint(4) leaf_index; DigitallySigned signature; the raw
// concatenation of audit_path entries.
func (p AuditProof) Serialize() ([]byte, error) {
	sigBytes, err := p.Signature.Serialize()
	if err != nil {
		return nil, err
	}

	size := 4
	if p.TreeType == checkpoint.LogSegmentTree {
		size += 4
	}
	size += 4 + len(sigBytes) + len(p.AuditPath)*wire.HashSize

	buf := make([]byte, size)
	off := 0
	wire.PutUint32(buf[off:off+4], p.SequenceNumber)
	off += 4
	if p.TreeType == checkpoint.LogSegmentTree {
		wire.PutUint32(buf[off:off+4], p.TreeSize)
		off += 4
	}
	wire.PutUint32(buf[off:off+4], p.LeafIndex)
	off += 4
	copy(buf[off:off+len(sigBytes)], sigBytes)
	off += len(sigBytes)
	for _, node := range p.AuditPath {
		copy(buf[off:off+wire.HashSize], node[:])
		off += wire.HashSize
	}
	return buf, nil
}

// Deserialize decodes buf into an AuditProof for the given tree_type,
// which is supplied out-of-band by the caller (the receiver knows
// which tree the proof is for). If tree_type is
// SegmentInfoTree, tree_size is synthesized as sequence_number+1.
// After the signature, the remaining bytes must be divisible by 32
// (zero is allowed: a degenerate single-leaf proof has an empty
// path); they are chunked into audit_path in order.
func Deserialize(treeType checkpoint.TreeType, buf []byte) (AuditProof, error) {
	if len(buf) < 4 {
		return AuditProof{}, ErrShortBuffer
	}
	off := 0
	sequenceNumber := wire.Uint32(buf[off : off+4])
	off += 4

	var treeSize uint32
	if treeType == checkpoint.LogSegmentTree {
		if len(buf) < off+4 {
			return AuditProof{}, ErrShortBuffer
		}
		treeSize = wire.Uint32(buf[off : off+4])
		off += 4
	} else {
		treeSize = sequenceNumber + 1
	}

	if len(buf) < off+4 {
		return AuditProof{}, ErrShortBuffer
	}
	leafIndex := wire.Uint32(buf[off : off+4])
	off += 4

	signature, n := sig.ReadFromString(buf[off:])
	if n == 0 {
		return AuditProof{}, ErrBadSignature
	}
	off += n

	residual := buf[off:]
	if len(residual)%wire.HashSize != 0 {
		return AuditProof{}, ErrAlignment
	}

	path := make([][wire.HashSize]byte, len(residual)/wire.HashSize)
	for i := range path {
		copy(path[i][:], residual[i*wire.HashSize:(i+1)*wire.HashSize])
	}

	return AuditProof{
		TreeType:       treeType,
		SequenceNumber: sequenceNumber,
		TreeSize:       treeSize,
		LeafIndex:      leafIndex,
		Signature:      signature,
		AuditPath:      path,
	}, nil
}
