package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	EventBus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/tendas-mozambique/api/internal/handlers"
	"github.com/tendas-mozambique/api/internal/mail"
	"github.com/tendas-mozambique/api/internal/platform/config"
	"github.com/tendas-mozambique/api/internal/platform/observability"
	"github.com/tendas-mozambique/api/internal/repositories"
	boltrepo "github.com/tendas-mozambique/api/internal/repositories/bolt"
	"github.com/tendas-mozambique/api/internal/services"
)

func main() {
	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	if dir := filepath.Dir(cfg.Store.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			logger.Fatal("failed to create store directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	repo, err := boltrepo.NewCatalogRepository(cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to open catalog store", zap.String("path", cfg.Store.Path), zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("catalog store close error", zap.Error(err))
		}
	}()

	bus := EventBus.New()
	changeLogger := logger.Named("catalog")
	if err := bus.Subscribe(services.TopicCatalogChanged, func(change services.CatalogChange) {
		changeLogger.Info("catalog changed",
			zap.Uint64("revision", change.Revision),
			zap.String("reason", change.Reason),
		)
	}); err != nil {
		logger.Fatal("failed to subscribe catalog events", zap.Error(err))
	}

	catalogService, err := services.NewCatalogService(services.CatalogServiceDeps{
		Repository:       repo,
		Events:           services.NewBusPublisher(bus),
		MaxImageRefBytes: cfg.Catalog.MaxImageRefBytes,
		DefaultLanguage:  cfg.I18N.DefaultLanguage,
	})
	if err != nil {
		logger.Fatal("failed to build catalog service", zap.Error(err))
	}

	queryService, err := services.NewCatalogQueryService(services.CatalogQueryDeps{
		Catalog:      catalogService,
		RelatedLimit: cfg.Catalog.RelatedLimit,
	})
	if err != nil {
		logger.Fatal("failed to build catalog query service", zap.Error(err))
	}

	notifier, err := mail.NewNotifier(cfg.Mail, cfg.Inquiry.Recipient)
	if err != nil {
		logger.Fatal("failed to build mail notifier", zap.Error(err))
	}
	var inquiryNotifier services.InquiryNotifier
	if notifier != nil {
		inquiryNotifier = notifier
		logger.Info("inquiry mail notifications enabled", zap.String("host", cfg.Mail.Host))
	} else {
		logger.Info("inquiry mail notifications disabled")
	}

	inquiryService := services.NewInquiryService(services.InquiryServiceDeps{
		Notifier:        inquiryNotifier,
		ProcessingDelay: cfg.Inquiry.ProcessingDelay,
		Logger:          logger.Named("inquiries"),
	})

	publicHandlers := handlers.NewPublicHandlers(
		handlers.WithPublicCatalogService(catalogService),
		handlers.WithPublicQueryService(queryService),
	)
	adminHandlers := handlers.NewAdminHandlers(
		handlers.WithAdminCatalogService(catalogService),
		handlers.WithAdminQueryService(queryService),
		handlers.WithAdminImageFolderRoot(cfg.Catalog.ImageFolderRoot),
		handlers.WithAdminMaxImageRefBytes(cfg.Catalog.MaxImageRefBytes),
	)
	inquiryHandlers := handlers.NewInquiryHandlers(inquiryService)

	health := handlers.NewHealthHandlers(
		handlers.WithReadyCheck("store", func(ctx context.Context) error {
			if _, err := repo.Language(ctx); err != nil && !repositories.IsNotFound(err) {
				return err
			}
			return nil
		}),
	)

	router := handlers.NewRouter(
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.RequestLoggerMiddleware(),
			observability.RecoveryMiddleware(logger),
		),
		handlers.WithHealthHandlers(health),
		handlers.WithPublicRoutes(publicHandlers.Routes),
		handlers.WithAdminRoutes(adminHandlers.Routes),
		handlers.WithInquiryRoutes(inquiryHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("tendas catalog api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
