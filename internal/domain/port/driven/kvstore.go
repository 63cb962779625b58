package driven

import "context"

// KeyValueStore defines the driven port for small string values kept under
// fixed keys. It stands in for browser-local storage: the repository cache and
// the theme preference are both persisted through it.
// Get returns found=false with a nil error when the key has never been set.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
