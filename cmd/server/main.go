package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cartapp "github.com/shopfront/backend/internal/application/cart"
	catalogapp "github.com/shopfront/backend/internal/application/catalog"
	checkoutapp "github.com/shopfront/backend/internal/application/checkout"
	identityapp "github.com/shopfront/backend/internal/application/identity"
	"github.com/shopfront/backend/internal/domain/identity"
	"github.com/shopfront/backend/internal/infrastructure/catalogdata"
	"github.com/shopfront/backend/internal/infrastructure/config"
	"github.com/shopfront/backend/internal/infrastructure/logger"
	"github.com/shopfront/backend/internal/infrastructure/statestore"
	"github.com/shopfront/backend/internal/interfaces/http/handler"
	"github.com/shopfront/backend/internal/interfaces/http/middleware"
	"github.com/shopfront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shopfront Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Load the embedded product catalog
	catalog, err := catalogdata.Load()
	if err != nil {
		log.Fatal("Failed to load product catalog", zap.Error(err))
	}
	log.Info("Product catalog loaded", zap.Int("products", catalog.Len()))

	// Select the client-state backend
	store, cleanup, err := newStateStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize state store", zap.Error(err))
	}
	defer cleanup()

	// Application services
	searchSvc := catalogapp.NewSearchService(catalog, log)
	cartSvc := cartapp.NewCartService(catalog, log)
	authSvc := identityapp.NewAuthService(identity.MockVerifier{}, store, cfg.Auth.LoginDelay, log)
	prefsSvc := identityapp.NewPreferenceService(store, log)
	checkoutSvc := checkoutapp.NewCheckoutService(cartSvc, catalog, log)

	// Restore any session persisted by a previous run
	authSvc.Rehydrate(context.Background())

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.RegisterValidations()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsCfg))

	// Routes
	router.NewRouter(engine).
		Register(handler.NewCatalogHandler(searchSvc)).
		Register(handler.NewCartHandler(cartSvc)).
		Register(handler.NewAuthHandler(authSvc)).
		Register(handler.NewCheckoutHandler(checkoutSvc)).
		Register(handler.NewLocationHandler(prefsSvc)).
		Register(handler.NewSystemHandler()).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newStateStore builds the configured state backend. The returned cleanup
// closes backend resources and is safe to call for every backend.
func newStateStore(cfg *config.Config, log *zap.Logger) (statestore.Store, func(), error) {
	switch cfg.State.Backend {
	case "file":
		store := statestore.NewFileStore(cfg.State.FilePath)
		log.Info("Using file state store", zap.String("path", store.Path()))
		return store, func() {}, nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err := statestore.NewRedisStore(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using redis state store", zap.String("addr", cfg.Redis.Addr()))
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing redis store", zap.Error(err))
			}
		}, nil
	default:
		log.Info("Using in-memory state store")
		return statestore.NewMemoryStore(), func() {}, nil
	}
}
