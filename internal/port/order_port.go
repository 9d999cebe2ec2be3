package port

import (
	"context"
	"time"

	"github.com/nikolayk812/orderdocs/internal/domain"
)

// OrderRepository wraps a single collection of order documents.
// Every method is a direct passthrough to the store: no retries, no transactions, no caching.
type OrderRepository interface {
	InsertOrder(ctx context.Context, order domain.Order) (domain.OrderID, error)

	// GetOrder returns domain.ErrNotFound when no document has the given id.
	GetOrder(ctx context.Context, orderID domain.OrderID) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// UpdateOrderStatus returns the number of modified documents.
	// A document whose status already equals the new one is not modified.
	UpdateOrderStatus(ctx context.Context, orderID domain.OrderID, status domain.OrderStatus, updatedAt time.Time) (int64, error)

	DeleteOrder(ctx context.Context, orderID domain.OrderID) (int64, error)

	// DeleteAll resets the collection, used by test fixtures.
	DeleteAll(ctx context.Context) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, rawID string) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, rawID string, status domain.OrderStatus) (domain.Order, error)
	DeleteOrder(ctx context.Context, rawID string) error
}
