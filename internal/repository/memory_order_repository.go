package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/nikolayk812/orderdocs/internal/port"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[domain.OrderID]domain.Order
	// insertion order, ListOrders follows it
	ids []domain.OrderID
}

func NewMemoryOrder() port.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[domain.OrderID]domain.Order),
	}
}

func (r *memoryOrderRepository) InsertOrder(_ context.Context, order domain.Order) (domain.OrderID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = domain.NewOrderID()
	r.orders[order.ID] = cloneOrder(order)
	r.ids = append(r.ids, order.ID)

	return order.ID, nil
}

func (r *memoryOrderRepository) GetOrder(_ context.Context, orderID domain.OrderID) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return domain.Order{}, fmt.Errorf("orders[%s]: %w", orderID.Hex(), domain.ErrNotFound)
	}

	return cloneOrder(order), nil
}

func (r *memoryOrderRepository) ListOrders(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.ids))
	for _, id := range r.ids {
		result = append(result, cloneOrder(r.orders[id]))
	}

	return result, nil
}

func (r *memoryOrderRepository) UpdateOrderStatus(_ context.Context, orderID domain.OrderID, status domain.OrderStatus, updatedAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok || order.Status == status {
		return 0, nil
	}

	order.Status = status
	order.UpdatedAt = updatedAt
	r.orders[orderID] = order

	return 1, nil
}

func (r *memoryOrderRepository) DeleteOrder(_ context.Context, orderID domain.OrderID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return 0, nil
	}

	delete(r.orders, orderID)
	r.ids = slices.DeleteFunc(r.ids, func(id domain.OrderID) bool {
		return id == orderID
	})

	return 1, nil
}

func (r *memoryOrderRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.orders)
	r.ids = nil

	return nil
}

func cloneOrder(order domain.Order) domain.Order {
	if order.Items == nil {
		order.Items = []domain.Item{}
	} else {
		order.Items = slices.Clone(order.Items)
	}
	return order
}
