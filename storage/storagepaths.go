package storage

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	segmentCheckpointBlobNameFmt = "segment-%08d.checkpoint"
	headCheckpointBlobNameFmt    = "head-%08d.checkpoint"
	segmentInfoBlobNameFmt       = "segment-%08d.info"
)

// BlobName returns the deterministic blob name for sequenceNumber's
// object of the given type, scoped under a per-log prefix derived
// from logID.
func BlobName(logID uuid.UUID, sequenceNumber uint32, otype ObjectType) (string, error) {
	prefix := logID.String() + "/"
	switch otype {
	case ObjectSegmentCheckpoint:
		return prefix + fmt.Sprintf(segmentCheckpointBlobNameFmt, sequenceNumber), nil
	case ObjectHeadCheckpoint:
		return prefix + fmt.Sprintf(headCheckpointBlobNameFmt, sequenceNumber), nil
	case ObjectSegmentInfo:
		return prefix + fmt.Sprintf(segmentInfoBlobNameFmt, sequenceNumber), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownObjectType, otype)
	}
}
