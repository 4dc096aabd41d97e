// Package statestore provides the key-value storage the storefront uses
// for client-visible state (session, delivery location). It plays the
// role browser local storage plays in the original UI: a small string
// store with no versioning, where absent or corrupt values are treated
// as empty state by callers.
package statestore

import (
	"context"
	"errors"
)

// Well-known keys. The names are kept from the original storefront so
// persisted state stays recognizable across implementations.
const (
	KeySession          = "amazon-user"
	KeyDeliveryLocation = "delivery-location"
)

// ErrKeyNotFound is returned by Get when the key has no stored value
var ErrKeyNotFound = errors.New("statestore: key not found")

// Store is the persistence boundary for client state. Mutations are an
// explicit effect so tests can substitute the in-memory implementation
// and observe writes.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
