package kvstore

import (
	"context"
)

// Store is the local persistence collaborator: a flat string key-value
// surface. Get reports presence separately from failure so a missing key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKeyPrefix = "cart"
)
