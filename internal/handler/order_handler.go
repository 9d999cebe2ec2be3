package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/nikolayk812/orderdocs/internal/port"
)

type orderHandler struct {
	svc    port.OrderService
	logger *slog.Logger
}

func (h *orderHandler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, bindError(err))
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *orderHandler) listOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponses(orders))
}

func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	// the id is checked before the body, a malformed id is 400 whatever the body
	if _, err := domain.ParseOrderID(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, bindError(err))
		return
	}

	order, err := h.svc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(*req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *orderHandler) deleteOrder(c *gin.Context) {
	if err := h.svc.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}

func (h *orderHandler) writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse{Detail: newFieldErrorResponses(vErr)})
	case errors.Is(err, domain.ErrMalformedID):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid order ID format"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: "Order not found"})
	default:
		h.logger.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			requestIDKey, c.GetString(requestIDKey),
			"error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "Internal Server Error"})
	}
}
