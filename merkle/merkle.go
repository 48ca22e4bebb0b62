// Package merkle supplies the SHA-256 hash oracle that the codec
// packages in this module treat as external: hash_leaf and hash_node.
// It uses the RFC 6962 domain-separation convention
// (0x00 prefix for leaves, 0x01 prefix for interior nodes) so that the
// tree-data preimages produced by checkpoint.SerializeTreeData hash to
// values consistent with the rest of the Certificate Transparency
// ecosystem.
package merkle

import (
	"crypto/sha256"

	"github.com/forestrie/ctlog/wire"
)

const (
	leafHashPrefix = 0x00
	nodeHashPrefix = 0x01
)

// HashLeaf computes the Merkle leaf hash of data.
func HashLeaf(data []byte) [wire.HashSize]byte {
	h := sha256.New()
	h.Write([]byte{leafHashPrefix})
	h.Write(data)
	var out [wire.HashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashNode computes the Merkle interior-node hash of a left/right
// child pair.
func HashNode(left, right [wire.HashSize]byte) [wire.HashSize]byte {
	h := sha256.New()
	h.Write([]byte{nodeHashPrefix})
	h.Write(left[:])
	h.Write(right[:])
	var out [wire.HashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
