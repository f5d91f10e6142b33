// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// CartHandler handles cart endpoints. Carts are keyed by the shopping
// session cookie, not by user identity.
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	cartSnapshot, err := h.cartService.GetCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartSnapshot,
	})
}

// AddMeal handles POST /cart/meals/:id
func (h *CartHandler) AddMeal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	locale := requestLocale(c)

	cartSnapshot, err := h.cartService.AddMeal(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add meal to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.Resolve(i18n.MsgItemAddedToCart, locale),
		"data":    cartSnapshot,
	})
}

// DecreaseMeal handles POST /cart/meals/:id/decrease
func (h *CartHandler) DecreaseMeal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	cartSnapshot, err := h.cartService.DecreaseMeal(sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data":    cartSnapshot,
	})
}

// RemoveMeal handles DELETE /cart/meals/:id
func (h *CartHandler) RemoveMeal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	locale := requestLocale(c)

	cartSnapshot, err := h.cartService.RemoveMeal(sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove meal from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.Resolve(i18n.MsgItemRemovedFromCart, locale),
		"data":    cartSnapshot,
	})
}

// RemoveSubscription handles DELETE /cart/subscription
func (h *CartHandler) RemoveSubscription(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	locale := requestLocale(c)

	cartSnapshot, err := h.cartService.ClearSubscription(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove subscription from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.Resolve(i18n.MsgSubscriptionRemoved, locale),
		"data":    cartSnapshot,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	locale := requestLocale(c)

	if err := h.cartService.Clear(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.Resolve(i18n.MsgCartCleared, locale),
	})
}

// GetItemCount handles GET /cart/count
func (h *CartHandler) GetItemCount(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cartService.ItemCount(sessionID),
		},
	})
}
