package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/nikolayk812/orderdocs/internal/port"
)

type orderService struct {
	repo  port.OrderRepository
	clock func() time.Time
}

type Option func(*orderService)

// WithClock replaces time.Now, tests use it to pin timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *orderService) {
		s.clock = clock
	}
}

func NewOrder(repo port.OrderRepository, opts ...Option) (port.OrderService, error) {
	if repo == nil {
		return nil, errors.New("repo is nil")
	}

	s := &orderService{
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *orderService) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := order.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("order.Validate: %w", err)
	}

	now := s.now()
	order.ID = domain.NilOrderID
	order.CreatedAt = now
	order.UpdatedAt = now

	if !order.TotalMatchesItems() {
		slog.WarnContext(ctx, "total_price differs from items subtotal",
			"method", "orderService.CreateOrder",
			"user_id", order.UserID,
			"total_price", order.TotalPrice,
			"items_subtotal", order.ItemsSubtotal().String())
	}

	orderID, err := s.repo.InsertOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.InsertOrder: %w", err)
	}

	created, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetOrder: %w", err)
	}

	return created, nil
}

func (s *orderService) GetOrder(ctx context.Context, rawID string) (domain.Order, error) {
	orderID, err := domain.ParseOrderID(rawID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.ParseOrderID: %w", err)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetOrder: %w", err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListOrders: %w", err)
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return orders, nil
}

// UpdateOrderStatus reports domain.ErrNotFound when nothing was modified,
// including when the order already has the requested status.
func (s *orderService) UpdateOrderStatus(ctx context.Context, rawID string, status domain.OrderStatus) (domain.Order, error) {
	orderID, err := domain.ParseOrderID(rawID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.ParseOrderID: %w", err)
	}

	modified, err := s.repo.UpdateOrderStatus(ctx, orderID, status, s.now())
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.UpdateOrderStatus: %w", err)
	}

	if modified != 1 {
		return domain.Order{}, fmt.Errorf("repo.UpdateOrderStatus: %w", domain.ErrNotFound)
	}

	updated, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetOrder: %w", err)
	}

	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, rawID string) error {
	orderID, err := domain.ParseOrderID(rawID)
	if err != nil {
		return fmt.Errorf("domain.ParseOrderID: %w", err)
	}

	deleted, err := s.repo.DeleteOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("repo.DeleteOrder: %w", err)
	}

	if deleted != 1 {
		return fmt.Errorf("repo.DeleteOrder: %w", domain.ErrNotFound)
	}

	return nil
}

// now is UTC with millisecond precision, the resolution of BSON datetimes.
func (s *orderService) now() time.Time {
	return s.clock().UTC().Truncate(time.Millisecond)
}
