package storage

import (
	"bytes"
	"context"
	"errors"
	"io"

	azblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

// AzureBlobStore is an ObjectStore backed by a single Azure Blob
// Storage container, split between a thin transport client here and a
// path-naming layer in storagepaths.go, targeting the official azblob
// SDK directly.
type AzureBlobStore struct {
	client    *azblob.Client
	container string
	log       logger.Logger
}

// NewAzureBlobStore constructs a store using client, logging through
// log. The container name defaults to "ctlog" and can be overridden
// with WithContainerName.
func NewAzureBlobStore(client *azblob.Client, log logger.Logger, opts ...Option) *AzureBlobStore {
	o := Options{ContainerName: "ctlog"}
	for _, opt := range opts {
		opt(&o)
	}
	return &AzureBlobStore{client: client, container: o.ContainerName, log: log}
}

func (s *AzureBlobStore) Put(ctx context.Context, logID uuid.UUID, sequenceNumber uint32, otype ObjectType, data []byte) error {
	name, err := BlobName(logID, sequenceNumber, otype)
	if err != nil {
		return err
	}
	s.log.Debugf("storage: writing %s (%d bytes)", name, len(data))
	_, err = s.client.UploadBuffer(ctx, s.container, name, data, nil)
	return err
}

func (s *AzureBlobStore) Get(ctx context.Context, logID uuid.UUID, sequenceNumber uint32, otype ObjectType) ([]byte, error) {
	name, err := BlobName(logID, sequenceNumber, otype)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.DownloadStream(ctx, s.container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrDoesNotExist
		}
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// Head is not implemented directly against blob listing here:
// establishing the highest sequence number requires a paged list call
// against the container, which this thin client does not perform.
// Head is left to a higher layer that tracks the current sequence
// number explicitly; sequence tracking is not owned by the codec or its
// storage collaborator.
func (s *AzureBlobStore) Head(ctx context.Context, logID uuid.UUID, otype ObjectType) (uint32, error) {
	return 0, errors.New("storage: Head is not supported by AzureBlobStore; track sequence numbers explicitly")
}

var _ ObjectStore = (*AzureBlobStore)(nil)

// memoryStore is an in-process ObjectStore used by tests and local
// development, avoiding a live Azure dependency while exercising the
// same interface as AzureBlobStore.
type memoryStore struct {
	objects map[string][]byte
}

// NewMemoryStore constructs an in-memory ObjectStore.
func NewMemoryStore() ObjectStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Put(_ context.Context, logID uuid.UUID, sequenceNumber uint32, otype ObjectType, data []byte) error {
	name, err := BlobName(logID, sequenceNumber, otype)
	if err != nil {
		return err
	}
	m.objects[name] = bytes.Clone(data)
	return nil
}

func (m *memoryStore) Get(_ context.Context, logID uuid.UUID, sequenceNumber uint32, otype ObjectType) ([]byte, error) {
	name, err := BlobName(logID, sequenceNumber, otype)
	if err != nil {
		return nil, err
	}
	data, ok := m.objects[name]
	if !ok {
		return nil, ErrDoesNotExist
	}
	return bytes.Clone(data), nil
}

// Head scans upward from sequence number 0 and returns the last number
// before the first missing object; objects stored beyond a gap are not
// considered.
func (m *memoryStore) Head(_ context.Context, logID uuid.UUID, otype ObjectType) (uint32, error) {
	var head uint32
	found := false
	for seq := uint32(0); ; seq++ {
		name, err := BlobName(logID, seq, otype)
		if err != nil {
			return 0, err
		}
		if _, ok := m.objects[name]; !ok {
			break
		}
		head = seq
		found = true
	}
	if !found {
		return 0, ErrLogEmpty
	}
	return head, nil
}
