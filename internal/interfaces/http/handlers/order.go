// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/order"
	"github.com/your-org/mealbox-backend/internal/interfaces/http/middleware"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// OrderHandler handles order history and admin fulfilment endpoints
type OrderHandler struct {
	orderService *order.Service
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		config:       cfg,
	}
}

// GetOrders handles GET /orders — the authenticated user's history
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}
	locale := requestLocale(c)

	orders := h.orderService.ListForUser(userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.withStatusLabels(orders, locale),
	})
}

// GetOrder handles GET /orders/:id. Users see only their own orders;
// admins see everything.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}
	locale := requestLocale(c)

	o, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	if o.UserID != userID && role != "admin" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data": gin.H{
			"order":        o,
			"status_label": o.Status.DisplayName(locale),
		},
	})
}

// GetAllOrders handles GET /admin/orders
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	locale := requestLocale(c)

	orders := h.orderService.ListAll()

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.withStatusLabels(orders, locale),
	})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	locale := requestLocale(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.UpdateStatus(c.Param("id"), order.Status(req.Status))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data": gin.H{
			"order":        o,
			"status_label": o.Status.DisplayName(locale),
		},
	})
}

func (h *OrderHandler) withStatusLabels(orders []order.Order, locale i18n.Locale) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, gin.H{
			"order":        orders[i],
			"status_label": orders[i].Status.DisplayName(locale),
		})
	}
	return out
}
