// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/domain/cart"
	"github.com/your-org/mealbox-backend/internal/domain/catalog"
	"github.com/your-org/mealbox-backend/internal/domain/checkout"
	"github.com/your-org/mealbox-backend/internal/domain/order"
	"github.com/your-org/mealbox-backend/internal/domain/subscription"
	"github.com/your-org/mealbox-backend/internal/domain/user"
	"github.com/your-org/mealbox-backend/internal/infrastructure/database/redis"
	"github.com/your-org/mealbox-backend/internal/interfaces/http"
	"github.com/your-org/mealbox-backend/internal/interfaces/http/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis (rate limiting)
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Construct domain services. All shopping state is in-process and
	// transient; nothing below opens a database.
	catalogService := catalog.NewService(cfg)
	cartService := cart.NewService(catalogService)
	subscriptionService := subscription.NewService(catalogService)
	orderService := order.NewService()
	checkoutService := checkout.NewService(cartService, orderService)
	userService := user.NewService(cfg)

	services := &routes.Services{
		Catalog:      catalogService,
		Subscription: subscriptionService,
		Cart:         cartService,
		Checkout:     checkoutService,
		Order:        orderService,
		User:         userService,
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, services, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("Server shutdown completed")
}
