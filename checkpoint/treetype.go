package checkpoint

// TreeType discriminates which Merkle scheme a record belongs to: the
// per-segment leaf tree, or the tree-of-segment-checkpoints ("head"
// tree). The numeric assignments below are part of the wire contract
// and MUST NOT be renumbered: they are fixed in this source order.
type TreeType uint8

const (
	// LogSegmentTree is the Merkle tree over the entries of a single
	// log segment.
	LogSegmentTree TreeType = iota
	// SegmentInfoTree is the Merkle tree over the sequence of segment
	// checkpoints (the "log of logs").
	SegmentInfoTree
)
