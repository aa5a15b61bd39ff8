// Package metadata is the client's persistent key/value store. The session
// mirrors its credential token here so it survives a restart.
package metadata

import (
	"context"
)

// Repository stores small opaque values by key. Get returns (nil, nil) for a
// missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
