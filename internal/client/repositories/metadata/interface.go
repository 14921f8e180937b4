// Package metadata is the client's key-value store. Values are opaque bytes;
// Get returns (nil, nil) for an absent key and Set is an upsert, so a key
// behaves as a single-slot register with last-writer-wins semantics.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
