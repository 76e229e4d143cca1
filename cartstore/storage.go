package cartstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Storage.Get when the key has never been written or was removed.
var ErrNotFound = errors.New("cartstore: key not found")

// Storage is a key-scoped string store. Values are opaque to the storage.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Change describes a write observed by a ChangeFeed. Origin is the id of the store that
// made the write, or empty when the writer did not identify itself.
type Change struct {
	Key    string `json:"key"`
	Origin string `json:"origin,omitempty"`
}

// ChangeFeed is implemented by storages that can observe writes, including writes made by
// other processes sharing the same backing store. Watch blocks until ctx is done.
type ChangeFeed interface {
	Watch(ctx context.Context, fn func(Change)) error
}

type originKey struct{}

// WithOrigin tags writes made with the returned context as coming from origin.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFrom returns the origin set by WithOrigin, if any.
func OriginFrom(ctx context.Context) string {
	origin, _ := ctx.Value(originKey{}).(string)
	return origin
}
