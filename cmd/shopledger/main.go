package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopledger/internal/api/handlers"
	"shopledger/internal/api/middleware"
	"shopledger/internal/config"
	"shopledger/internal/health"
	"shopledger/internal/metrics"
	repository "shopledger/internal/repositories"
	service "shopledger/internal/services"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisRepo, err := repository.NewRedisRepo(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	productService := service.NewProductService(repos.Product, repos.Sale)
	productHandler := handlers.NewProductHandler(productService)
	customerService := service.NewCustomerService(repos.Customer)
	customerHandler := handlers.NewCustomerHandler(customerService)
	saleService := service.NewSaleService(repos.Sale, repos.Product)
	saleHandler := handlers.NewSaleHandler(saleService)
	dashboardService := service.NewDashboardService(repos.Product, repos.Sale)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating the health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("DELETE /products/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("GET /customers", customerHandler.ListCustomers())
	routerMux.HandleFunc("POST /customers", customerHandler.CreateCustomer())
	routerMux.HandleFunc("PUT /customers/{id}", customerHandler.UpdateCustomer())
	routerMux.HandleFunc("DELETE /customers/{id}", customerHandler.DeleteCustomer())
	routerMux.HandleFunc("GET /sales", saleHandler.ListSales())
	routerMux.HandleFunc("POST /sales", saleHandler.CreateSale())
	routerMux.HandleFunc("GET /dashboard-summary", dashboardHandler.Summary())
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.RateLimit(redisRepo)(handler)
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
