package handler

import (
	"time"

	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/samber/lo"
)

// Required fields are pointers, so "missing" and "zero" stay distinguishable.
type itemRequest struct {
	ProductID *string  `json:"product_id" binding:"required"`
	Name      *string  `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Quantity  *int     `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	UserID     *string       `json:"user_id" binding:"required"`
	Items      []itemRequest `json:"items" binding:"required,dive"`
	TotalPrice *float64      `json:"total_price" binding:"required"`
	Status     *string       `json:"status"`
}

type updateOrderStatusRequest struct {
	Status *string `json:"status" binding:"required"`
}

func (r createOrderRequest) toDomain() domain.Order {
	return domain.Order{
		UserID: lo.FromPtr(r.UserID),
		Items: lo.Map(r.Items, func(item itemRequest, _ int) domain.Item {
			return domain.Item{
				ProductID: lo.FromPtr(item.ProductID),
				Name:      lo.FromPtr(item.Name),
				Price:     lo.FromPtr(item.Price),
				Quantity:  lo.FromPtr(item.Quantity),
			}
		}),
		TotalPrice: lo.FromPtr(r.TotalPrice),
		Status:     r.status(),
	}
}

// status defaults to Pending only when the field is absent; "" is kept.
func (r createOrderRequest) status() domain.OrderStatus {
	if r.Status == nil {
		return domain.OrderStatusPending
	}
	return domain.OrderStatus(*r.Status)
}

type itemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Items      []itemResponse `json:"items"`
	TotalPrice float64        `json:"total_price"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func newOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:     o.ID.Hex(),
		UserID: o.UserID,
		Items: lo.Map(o.Items, func(item domain.Item, _ int) itemResponse {
			return itemResponse{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}),
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// newOrderResponses never returns nil, an empty listing renders as [].
func newOrderResponses(orders []domain.Order) []orderResponse {
	return lo.Map(orders, func(o domain.Order, _ int) orderResponse {
		return newOrderResponse(o)
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type fieldErrorResponse struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

type validationErrorResponse struct {
	Detail []fieldErrorResponse `json:"detail"`
}
