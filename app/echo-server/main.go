package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toolsPlaza/app/echo-server/metrics"
	"toolsPlaza/app/echo-server/router"
	ordersService "toolsPlaza/business/orders"
	paymentsService "toolsPlaza/business/payments"
	reviewsService "toolsPlaza/business/reviews"
	toolsService "toolsPlaza/business/tools"
	userService "toolsPlaza/business/user"
	"toolsPlaza/internal/middleware"
	mongoRepo "toolsPlaza/internal/repository/mongodb"
	"toolsPlaza/internal/repository/stripe"
	"toolsPlaza/internal/rest"
	"toolsPlaza/pkg/config"
	"toolsPlaza/pkg/database"
	"toolsPlaza/pkg/logger"
	"toolsPlaza/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting ToolsPlaza", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	client, err := database.InitMongo(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	stripeRepo := stripe.NewStripeRepository(
		stripe.StripeConfig{
			StripeApi: cfg.Stripe.SecretKey,
			StripeUrl: cfg.Stripe.ApiUrl,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := mongoRepo.NewUserRepository(client)
	userInfoRepo := mongoRepo.NewUserInfoRepository(client)
	toolsRepo := mongoRepo.NewToolsRepository(client)
	ordersRepo := mongoRepo.NewOrdersRepository(client)
	paymentsRepo := mongoRepo.NewPaymentsRepository(client)
	reviewRepo := mongoRepo.NewReviewRepository(client)

	// Init service
	users := userService.NewUserService(userRepo, userInfoRepo)
	tools := toolsService.NewToolsService(toolsRepo, validate)
	orders := ordersService.NewOrdersService(ordersRepo, paymentsRepo, validate)
	payments := paymentsService.NewPaymentsService(stripeRepo)
	reviews := reviewsService.NewReviewsService(reviewRepo, validate)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	toolsHandler := rest.NewToolsHandler(tools)
	ordersHandler := rest.NewOrdersHandler(orders)
	paymentsHandler := rest.NewPaymentsHandler(payments)
	reviewsHandler := rest.NewReviewsHandler(reviews)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly(users)

	// Setup routes
	router.SetupRootRoutes(e)
	router.SetupToolsRoutes(e, toolsHandler, authRequired)
	router.SetupUserRoutes(e, userHandler, authRequired, adminOnly)
	router.SetupOrdersRoutes(e, ordersHandler, authRequired)
	router.SetupPaymentsRoutes(e, paymentsHandler)
	router.SetupReviewsRoutes(e, reviewsHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Database disconnect error", "error", err)
	}

	logger.Info("Server stopped")
}
