// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/checkout"
	"github.com/your-org/mealbox-backend/internal/interfaces/http/middleware"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// GetSummary handles GET /checkout/summary. The delivery method comes from
// the "delivery_method" query parameter, defaulting to delivery.
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	locale := requestLocale(c)

	method := checkout.DeliveryMethod(c.DefaultQuery("delivery_method", string(checkout.DeliveryMethodDelivery)))
	if !method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown delivery method",
		})
		return
	}

	cartSnapshot, totals, err := h.checkoutService.Summary(sessionID, method)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute checkout summary",
		})
		return
	}

	feeLabel := fmt.Sprintf("%.2f SAR", totals.DeliveryFee)
	if totals.DeliveryFee == 0 {
		feeLabel = i18n.Resolve(i18n.MsgDeliveryFree, locale)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data": gin.H{
			"cart":               cartSnapshot,
			"delivery_method":    method,
			"totals":             totals,
			"delivery_fee_label": feeLabel,
		},
	})
}

// GetPaymentMethods handles GET /checkout/payment-methods
func (h *CheckoutHandler) GetPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment methods retrieved successfully",
		"data":    h.checkoutService.GetPaymentMethods(),
	})
}

// PlaceOrder handles POST /checkout/orders
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	locale := requestLocale(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.checkoutService.PlaceOrder(sessionID, userID, &req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.Resolve(i18n.MsgOrderPlaced, locale),
		"data":    placed,
	})
}
