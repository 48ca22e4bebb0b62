package storage

import "errors"

var (
	ErrLogEmpty          = errors.New("the log is empty")
	ErrDoesNotExist      = errors.New("object does not exist")
	ErrUnknownObjectType = errors.New("unknown object type")
	ErrExistsOC          = errors.New("optimistic concurrency failure, subject already exists")
)
