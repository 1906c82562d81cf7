// Package storage is the persistence boundary of the kiosk: whole collections
// are serialized into versioned JSON documents and stored under fixed keys.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when the key was never written.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a key-value document store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Close() error
}
