// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/checkout"
	"github.com/your-org/mealbox-backend/internal/domain/order"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
	"github.com/your-org/mealbox-backend/internal/domain/user"
	"github.com/your-org/mealbox-backend/internal/interfaces/http/handlers"
	"github.com/your-org/mealbox-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the route handlers depend on.
// Everything is constructed once in main and shared across requests.
type Services struct {
	Catalog      *catalog.Service
	Subscription *subscription.Service
	Cart         *cart.Service
	Checkout     *checkout.Service
	Order        *order.Service
	User         *user.Service
}

// SetupRoutes wires every route group onto the API router group
func SetupRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	SetupAuthRoutes(rg, services, cfg)
	SetupCatalogRoutes(rg, services, cfg)
	SetupCartRoutes(rg, services, cfg)
	SetupSubscriptionRoutes(rg, services, cfg)
	SetupCheckoutRoutes(rg, services, cfg)
	SetupOrderRoutes(rg, services, cfg)
	SetupAdminRoutes(rg, services, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(services.User, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/forgot-password", authHandler.ForgotPassword)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupCatalogRoutes sets up the public menu and plan browsing routes
func SetupCatalogRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(services.Catalog, cfg)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/categories", catalogHandler.GetCategories)
		catalog.GET("/meals", catalogHandler.GetMeals)
		catalog.GET("/meals/:id", catalogHandler.GetMeal)
		catalog.GET("/plans", catalogHandler.GetPlans)
		catalog.GET("/plans/:id", catalogHandler.GetPlan)
	}
}

// SetupCartRoutes sets up cart routes. Carts work for guests and
// authenticated users alike; the session cookie is the key.
func SetupCartRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(services.Cart, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetItemCount)
		cart.POST("/meals/:id", cartHandler.AddMeal)
		cart.POST("/meals/:id/decrease", cartHandler.DecreaseMeal)
		cart.DELETE("/meals/:id", cartHandler.RemoveMeal)
		cart.DELETE("/subscription", cartHandler.RemoveSubscription)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupSubscriptionRoutes sets up the plan configurator routes
func SetupSubscriptionRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	subscriptionHandler := handlers.NewSubscriptionHandler(services.Subscription, services.Catalog, services.Cart, cfg)

	configurator := rg.Group("/subscriptions/configurator")
	configurator.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		configurator.POST("", subscriptionHandler.StartConfiguration)
		configurator.GET("/:id", subscriptionHandler.GetConfiguration)
		configurator.POST("/:id/sizing", subscriptionHandler.AdjustSizing)
		configurator.POST("/:id/proceed", subscriptionHandler.Proceed)
		configurator.POST("/:id/back", subscriptionHandler.Back)
		configurator.POST("/:id/cancel", subscriptionHandler.Cancel)
		configurator.PUT("/:id/active-day", subscriptionHandler.SetActiveDay)
		configurator.POST("/:id/meals/:mealId/increase", subscriptionHandler.IncreaseMeal)
		configurator.POST("/:id/meals/:mealId/decrease", subscriptionHandler.DecreaseMeal)
		configurator.POST("/:id/commit", subscriptionHandler.Commit)
	}
}

// SetupCheckoutRoutes sets up checkout routes. The summary and payment
// options are open to guests; placing an order requires authentication.
func SetupCheckoutRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(services.Checkout, cfg)

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		checkout.GET("/summary", checkoutHandler.GetSummary)
		checkout.GET("/payment-methods", checkoutHandler.GetPaymentMethods)

		protected := checkout.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/orders", checkoutHandler.PlaceOrder)
		}
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(services.Order, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

// SetupAdminRoutes sets up admin related routes
func SetupAdminRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(services.Order, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.GetAllOrders)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		}
	}
}
