// internal/interfaces/http/handlers/subscription.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// SubscriptionHandler drives the plan configurator over HTTP. Every endpoint
// resolves the configurator through the shopping session that opened it.
type SubscriptionHandler struct {
	subscriptionService *subscription.Service
	catalogService      *catalog.Service
	cartService         *cart.Service
	config              *config.Config
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(
	subscriptionService *subscription.Service,
	catalogService *catalog.Service,
	cartService *cart.Service,
	cfg *config.Config,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		catalogService:      catalogService,
		cartService:         cartService,
		config:              cfg,
	}
}

// StartConfiguration handles POST /subscriptions/configurator
func (h *SubscriptionHandler) StartConfiguration(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req struct {
		PlanID string `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	configuratorID, configurator, err := h.subscriptionService.Start(c.Request.Context(), sessionID, req.PlanID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Subscription plan not found",
			})
			return
		}
		if errors.Is(err, subscription.ErrInvalidPlan) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Subscription plan cannot be configured",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to start configuration",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Configuration started",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// GetConfiguration handles GET /subscriptions/configurator/:id
func (h *SubscriptionHandler) GetConfiguration(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	configurator, err := h.subscriptionService.Get(sessionID, configuratorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Configurator session not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration retrieved successfully",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// AdjustSizing handles POST /subscriptions/configurator/:id/sizing.
// Out-of-bounds adjustments are clamped, never rejected.
func (h *SubscriptionHandler) AdjustSizing(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	var req struct {
		Field     string `json:"field" binding:"required,oneof=meals_per_day days_per_week"`
		Direction string `json:"direction" binding:"required,oneof=increase decrease"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	configurator, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		switch {
		case req.Field == "meals_per_day" && req.Direction == "increase":
			cfg.IncreaseMealsPerDay()
		case req.Field == "meals_per_day" && req.Direction == "decrease":
			cfg.DecreaseMealsPerDay()
		case req.Field == "days_per_week" && req.Direction == "increase":
			cfg.IncreaseDaysPerWeek()
		case req.Field == "days_per_week" && req.Direction == "decrease":
			cfg.DecreaseDaysPerWeek()
		}
		return nil
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sizing updated",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// Proceed handles POST /subscriptions/configurator/:id/proceed
func (h *SubscriptionHandler) Proceed(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	configurator, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		return cfg.Proceed()
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Moved to meal selection",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// Back handles POST /subscriptions/configurator/:id/back
func (h *SubscriptionHandler) Back(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	configurator, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		return cfg.Back()
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Returned to sizing",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// Cancel handles POST /subscriptions/configurator/:id/cancel
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	_, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		cfg.Cancel()
		return nil
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration cancelled",
	})
}

// SetActiveDay handles PUT /subscriptions/configurator/:id/active-day
func (h *SubscriptionHandler) SetActiveDay(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	var req struct {
		Day int `json:"day" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	configurator, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		cfg.SetActiveDay(req.Day)
		return nil
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Active day updated",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// IncreaseMeal handles POST /subscriptions/configurator/:id/meals/:mealId/increase
func (h *SubscriptionHandler) IncreaseMeal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")

	meal, err := h.catalogService.GetMeal(c.Request.Context(), c.Param("mealId"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to look up meal",
		})
		return
	}

	configurator, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		cfg.IncreaseMealQuantity(*meal)
		return nil
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal selection updated",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// DecreaseMeal handles POST /subscriptions/configurator/:id/meals/:mealId/decrease
func (h *SubscriptionHandler) DecreaseMeal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")
	mealID := c.Param("mealId")

	configurator, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		cfg.DecreaseMealQuantity(mealID)
		return nil
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal selection updated",
		"data":    h.configuratorState(configuratorID, configurator),
	})
}

// Commit handles POST /subscriptions/configurator/:id/commit. A successful
// commit attaches the selection to the cart, replacing any subscription
// already there.
func (h *SubscriptionHandler) Commit(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	configuratorID := c.Param("id")
	locale := requestLocale(c)

	var selection *subscription.Selection
	_, err := h.subscriptionService.Update(sessionID, configuratorID, func(cfg *subscription.Configurator) error {
		committed, err := cfg.Commit()
		if err != nil {
			return err
		}
		selection = committed
		return nil
	})
	if err != nil {
		if errors.Is(err, subscription.ErrNotReady) {
			c.JSON(http.StatusConflict, gin.H{
				"error": i18n.Resolve(i18n.MsgPlanNotComplete, locale),
			})
			return
		}
		h.respondSessionError(c, err)
		return
	}

	cartSnapshot, err := h.cartService.SetSubscription(sessionID, selection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add subscription to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.Resolve(i18n.MsgSubscriptionAdded, locale),
		"data": gin.H{
			"selection": selection,
			"cart":      cartSnapshot,
		},
	})
}

// configuratorState serializes a configurator for API responses
func (h *SubscriptionHandler) configuratorState(configuratorID string, cfg *subscription.Configurator) gin.H {
	days := cfg.SelectedMeals()
	dayStates := make([]gin.H, 0, len(days))
	for _, day := range days {
		dayStates = append(dayStates, gin.H{
			"day":      day.Day,
			"meals":    day.Meals,
			"complete": cfg.IsDayComplete(day.Day),
		})
	}

	return gin.H{
		"configurator_id":   configuratorID,
		"step":              cfg.Step(),
		"plan":              cfg.Plan(),
		"customization":     cfg.Customization(),
		"total_price":       cfg.TotalPrice(),
		"active_day":        cfg.ActiveDay(),
		"days":              dayStates,
		"all_days_complete": cfg.AllDaysComplete(),
	}
}

func (h *SubscriptionHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, subscription.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Configurator session not found",
		})
	case errors.Is(err, subscription.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Operation not valid in current step",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update configuration",
		})
	}
}
