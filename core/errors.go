package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex key
	// absent from the backend's fixed key space. It is a contract
	// violation by the caller (stale or foreign key), never transient,
	// and is always propagated unmodified.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrIteratorExhausted indicates Iterator.Next was called after the
	// last adjacent key was produced.
	ErrIteratorExhausted = errors.New("core: iterator exhausted")
)
