package domain

import "errors"

// ErrAlreadyExists is an error thrown when a catalog entry already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrVideoNotFound is an error thrown when a video is not found in the catalog
var ErrVideoNotFound = errors.New("video not found")

// ErrChunkNotFound is an error thrown when a stored chunk is missing
var ErrChunkNotFound = errors.New("chunk not found")

// ErrEmptyTitle is an error thrown when an ingest has no title
var ErrEmptyTitle = errors.New("title is required")

// ErrEmptyPayload is an error thrown when an ingest has no payload bytes
var ErrEmptyPayload = errors.New("video payload is empty")

// ErrStoreWrite is an error thrown when the persistence layer rejects a chunk write
var ErrStoreWrite = errors.New("chunk store write failed")

// ErrStoreRead is an error thrown when a chunk cannot be read back
var ErrStoreRead = errors.New("chunk store read failed")

// ErrMalformedRange is an error thrown when a range header cannot be parsed
var ErrMalformedRange = errors.New("malformed range header")

// ErrUnsatisfiableRange is an error thrown when a range lies outside the video
var ErrUnsatisfiableRange = errors.New("range not satisfiable")
