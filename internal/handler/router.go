package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/orderdocs/internal/port"
)

func NewRouter(svc port.OrderService, logger *slog.Logger) *gin.Engine {
	useJSONFieldNames()

	h := &orderHandler{
		svc:    svc,
		logger: logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger))

	orders := r.Group("/orders")
	orders.POST("", h.createOrder)
	orders.GET("", h.listOrders)
	orders.GET("/:id", h.getOrder)
	orders.PUT("/:id", h.updateOrderStatus)
	orders.DELETE("/:id", h.deleteOrder)

	return r
}
