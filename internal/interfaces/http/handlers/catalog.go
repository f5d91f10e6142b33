// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
)

// CatalogHandler handles menu and subscription plan endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		config:         cfg,
	}
}

// GetCategories handles GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetMeals handles GET /catalog/meals with an optional category filter
func (h *CatalogHandler) GetMeals(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		meals []catalog.Meal
		err   error
	)
	if categoryID := c.Query("category"); categoryID != "" {
		meals, err = h.catalogService.GetMealsByCategory(ctx, categoryID)
	} else {
		meals, err = h.catalogService.GetMeals(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve meals",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meals retrieved successfully",
		"data":    meals,
	})
}

// GetMeal handles GET /catalog/meals/:id
func (h *CatalogHandler) GetMeal(c *gin.Context) {
	meal, err := h.catalogService.GetMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve meal",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal retrieved successfully",
		"data":    meal,
	})
}

// GetPlans handles GET /catalog/plans
func (h *CatalogHandler) GetPlans(c *gin.Context) {
	locale := requestLocale(c)

	plans, err := h.catalogService.GetPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve subscription plans",
		})
		return
	}

	data := make([]gin.H, 0, len(plans))
	for _, plan := range plans {
		data = append(data, gin.H{
			"plan":         plan,
			"period_label": plan.Period.DisplayName(locale),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription plans retrieved successfully",
		"data":    data,
	})
}

// GetPlan handles GET /catalog/plans/:id
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	locale := requestLocale(c)

	plan, err := h.catalogService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Subscription plan not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve subscription plan",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription plan retrieved successfully",
		"data": gin.H{
			"plan":         plan,
			"period_label": plan.Period.DisplayName(locale),
		},
	})
}
