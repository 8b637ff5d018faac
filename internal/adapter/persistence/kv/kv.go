// Package kv provides the durable string-keyed substrate behind the record
// store. Each key holds one whole serialized collection; writes replace the
// value atomically and are guarded by a version number.
package kv

import (
	"context"
	"errors"
)

// ErrVersionConflict is returned by Put when the stored version differs from
// the expected one.
var ErrVersionConflict = errors.New("kv: version conflict")

// Entry is a stored value and the version it was written with.
type Entry struct {
	Value   []byte
	Version int64
}

// Store is the key-value substrate.
//
// Put with expectedVersion 0 creates the key and fails if it already exists;
// otherwise the stored version must equal expectedVersion. The returned
// version is the one now stored.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error)
}
