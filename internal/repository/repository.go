package repository

import (
	"context"
)

// Well-known keys
const (
	KeyLikes = "likes"
	KeyList  = "list"
)

// Store is a key/value store of encoded blobs
type Store interface {
	// Load returns the blob stored under key, or nil if there is none
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores data under key, replacing any previous value
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists stored keys in lexical order
	Keys(ctx context.Context) ([]string, error)

	// Close releases resources
	Close() error
}
