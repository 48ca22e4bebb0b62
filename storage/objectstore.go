// Package storage provides a path-based persistence layer for the
// opaque encoded bytes the codec packages (checkpoint, segment,
// auditproof) produce. It never decodes what it stores: the codec
// remains a pure, I/O-free codec, and this package is one of its
// external collaborators.
package storage

import (
	"context"

	"github.com/google/uuid"
)

// ObjectType distinguishes the record kinds this store persists. The
// store never parses the bytes involved; the type only selects a
// naming convention (see BlobName).
type ObjectType uint8

const (
	ObjectUndefined ObjectType = iota
	ObjectSegmentCheckpoint
	ObjectHeadCheckpoint
	ObjectSegmentInfo
)

// ObjectStore persists and retrieves opaque encoded records by
// sequence number. Implementations are expected to be safe for
// concurrent use across distinct sequence numbers.
type ObjectStore interface {
	// Put writes data for (logID, sequenceNumber, otype), replacing
	// any existing object at that identity.
	Put(ctx context.Context, logID uuid.UUID, sequenceNumber uint32, otype ObjectType, data []byte) error

	// Get retrieves the bytes previously written for (logID,
	// sequenceNumber, otype). It returns ErrDoesNotExist if nothing has
	// been written there.
	Get(ctx context.Context, logID uuid.UUID, sequenceNumber uint32, otype ObjectType) ([]byte, error)

	// Head returns the highest sequence number stored for logID and
	// otype. It returns ErrLogEmpty if nothing has been written yet.
	Head(ctx context.Context, logID uuid.UUID, otype ObjectType) (uint32, error)
}

// StorageFeature represents storage-specific capabilities an
// implementation may advertise.
type StorageFeature int

const (
	// OptimisticWrite indicates support for optimistic concurrency
	// control on writes.
	OptimisticWrite StorageFeature = iota
	// TagBasedFiltering indicates support for filtering objects based
	// on metadata tags.
	TagBasedFiltering
)
