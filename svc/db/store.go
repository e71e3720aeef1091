package db

import (
	"context"
)

// Store is the durable key-value substrate history persists to: string
// values addressed by a fixed key name, surviving across runs. Get
// reports absence through the bool, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
