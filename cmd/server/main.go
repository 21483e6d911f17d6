package main

import (
	"context"
	"fmt"
	"log"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/config"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/handlers"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/middleware"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/repositories"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/services"
	"github.com/jaijaish98/invoice-generator-business-management-backend/pkg/database"
)

func main() {
	cfg, generatedSecret, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if generatedSecret {
		logger.Warn("JWT_SECRET not set, using a generated secret; issued tokens will not survive a restart")
	}

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	paymentRepo := repositories.NewPaymentRepo(pool)
	quotationRepo := repositories.NewQuotationRepo(pool)
	ewayBillRepo := repositories.NewEwayBillRepo(pool)

	// Services
	tokenSvc := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	authSvc := services.NewAuthService(userRepo, tokenSvc, cfg.BcryptCost)
	invoiceSvc := services.NewInvoiceService(invoiceRepo)
	paymentSvc := services.NewPaymentService(paymentRepo)
	quotationSvc := services.NewQuotationService(quotationRepo)
	ewayBillSvc := services.NewEwayBillService(ewayBillRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	invoiceHandlers := handlers.NewInvoiceHandlers(invoiceSvc)
	paymentHandlers := handlers.NewPaymentHandlers(paymentSvc)
	quotationHandlers := handlers.NewQuotationHandlers(quotationSvc)
	ewayBillHandlers := handlers.NewEwayBillHandlers(ewayBillSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger)

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	v1 := e.Group("/api/v1")

	// Authentication routes (no JWT required for register/login)
	auth := v1.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)

	// Protected routes
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(tokenSvc)))
	protected.Use(middleware.ResolveIdentity(userRepo))

	protected.GET("/auth/me", authHandlers.Me)
	protected.PUT("/auth/change-password", authHandlers.ChangePassword)
	protected.PUT("/auth/account", authHandlers.UpdateAccount)

	protected.GET("/invoices", invoiceHandlers.ListInvoices)
	protected.POST("/invoices", invoiceHandlers.CreateInvoice)
	protected.GET("/invoices/:id", invoiceHandlers.GetInvoice)
	protected.PUT("/invoices/:id", invoiceHandlers.UpdateInvoice)
	protected.DELETE("/invoices/:id", invoiceHandlers.DeleteInvoice)

	protected.GET("/payments", paymentHandlers.ListPayments)
	protected.POST("/payments", paymentHandlers.CreatePayment)
	protected.GET("/payments/:id", paymentHandlers.GetPayment)
	protected.PUT("/payments/:id", paymentHandlers.UpdatePayment)
	protected.DELETE("/payments/:id", paymentHandlers.DeletePayment)

	protected.GET("/quotations", quotationHandlers.ListQuotations)
	protected.POST("/quotations", quotationHandlers.CreateQuotation)
	protected.GET("/quotations/:id", quotationHandlers.GetQuotation)
	protected.PUT("/quotations/:id", quotationHandlers.UpdateQuotation)
	protected.DELETE("/quotations/:id", quotationHandlers.DeleteQuotation)

	protected.GET("/eway-bills", ewayBillHandlers.ListEwayBills)
	protected.POST("/eway-bills", ewayBillHandlers.CreateEwayBill)
	protected.GET("/eway-bills/:id", ewayBillHandlers.GetEwayBill)
	protected.PUT("/eway-bills/:id", ewayBillHandlers.UpdateEwayBill)
	protected.DELETE("/eway-bills/:id", ewayBillHandlers.DeleteEwayBill)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", cfg.Port)))
}
