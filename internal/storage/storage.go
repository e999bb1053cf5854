package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Storage is the durable string-keyed store behind the wishlist, the
// receipt hand-off and the mock order book. Values are JSON documents.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Key joins a base key with an owner namespace: "platypus_wishlist:abc".
func Key(base, owner string) string {
	if owner == "" {
		return base
	}
	return base + ":" + owner
}
