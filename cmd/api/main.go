package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/invoice-service/internal/api/http"
	"github.com/spec-kit/invoice-service/internal/api/http/handlers"
	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/config"
	"github.com/spec-kit/invoice-service/internal/events"
	"github.com/spec-kit/invoice-service/internal/observability"
	"github.com/spec-kit/invoice-service/internal/persistence"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/internal/service"
	"github.com/spec-kit/invoice-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	vendorRepo := repository.NewVendorRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		VendorRepo: vendorRepo,
		Dispatcher: dispatcher,
	})
	customerService := service.NewCustomerService(customerRepo)
	invoiceService := service.NewInvoiceService(service.InvoiceDependencies{
		InvoiceRepo:  invoiceRepo,
		CustomerRepo: customerRepo,
		PaymentRepo:  paymentRepo,
		Dispatcher:   dispatcher,
	})
	templateService := service.NewTemplateService(templateRepo)
	paymentService := service.NewPaymentService(service.PaymentDependencies{
		PaymentRepo: paymentRepo,
		InvoiceRepo: invoiceRepo,
		Dispatcher:  dispatcher,
	})

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), vendorRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Invoices:       handlers.NewInvoicesHandler(invoiceService),
		Templates:      handlers.NewTemplatesHandler(templateService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
