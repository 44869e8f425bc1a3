package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/craftside/marketplace/internal/api/http"
	"github.com/craftside/marketplace/internal/api/http/handlers"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/config"
	"github.com/craftside/marketplace/internal/events"
	"github.com/craftside/marketplace/internal/observability"
	"github.com/craftside/marketplace/internal/persistence"
	"github.com/craftside/marketplace/internal/repository"
	"github.com/craftside/marketplace/internal/service"
	"github.com/craftside/marketplace/internal/storage"
	"github.com/craftside/marketplace/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	cartRepo := repository.NewCartRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Session, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, productRepo, dispatcher)
	reviewService := service.NewReviewService(reviewRepo, catalogService, dispatcher)
	imageStore, err := storage.NewImageStore(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to init image storage", zap.Error(err))
	}

	resolver := auth.NewSessionResolver(authService.Codec(), logger)
	guard := auth.NewRouteGuard(resolver, cfg.Session.ProtectedPaths, cfg.Session.LoginPath)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	secureCookie := cfg.App.IsProduction()
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:     handlers.NewAuthHandler(authService, secureCookie),
		Pages:    handlers.NewPagesHandler(authService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Cart:     handlers.NewCartHandler(cartService),
		Wishlist: handlers.NewWishlistHandler(wishlistRepo),
		Orders:   handlers.NewOrdersHandler(orderService),
		Reviews:  handlers.NewReviewsHandler(reviewService),
		Uploads:  handlers.NewUploadsHandler(imageStore),
		Guard:    guard,
		Resolver: resolver,
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
