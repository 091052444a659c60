package core

import (
	"context"

	"order-up/internal/domain/models"
)

// Collection names as they appear in the backing store. Each one is persisted
// and replaced as a whole; collections never reference each other.
const (
	CollectionUsers  = "users"
	CollectionMenu   = "menu"
	CollectionOrders = "orders"
)

// Store loads and replaces whole named collections. Load fills v (a pointer
// to a slice) and leaves it empty when the collection has not been created
// yet; data that exists but cannot be read or decoded wraps ErrStoreFailure.
// Save fully replaces the collection, there is no partial or append mode.
type Store interface {
	Load(ctx context.Context, collection string, v any) error
	Save(ctx context.Context, collection string, v any) error
	Close() error
}

// Publisher fans out accepted orders to interested consumers.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order models.Order) error
	Close() error
}
