// Package session keeps per-session values keyed by opaque ids.
package session

import "context"

// Store holds values of one type by id. Implementations must be safe for
// concurrent use; the values themselves are not protected.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	All(ctx context.Context) ([]T, error)
	NewID() string
}
