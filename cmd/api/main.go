package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"property-advisor/internal/api/handlers"
	"property-advisor/internal/api/middleware"
	"property-advisor/internal/config"
	"property-advisor/internal/history"
	"property-advisor/internal/predict"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := loadConfig()

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("API_ENV"),
		}); err != nil {
			zap.L().Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	var store *history.Store
	if cfg.History.Path != "" {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			zap.L().Fatal("failed to open history store",
				zap.String("path", cfg.History.Path), zap.Error(err))
		}
		defer store.Close()
	} else {
		zap.L().Info("history store disabled (no history.path configured)")
	}

	var predictClient *predict.Client
	if cfg.Prediction.BaseURL != "" {
		predictClient = predict.NewClient(
			cfg.Prediction.BaseURL,
			cfg.Prediction.APIKey,
			time.Duration(cfg.Prediction.TimeoutSeconds)*time.Second,
		)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	if os.Getenv("SENTRY_DSN") != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	analyzeHandler := handlers.NewAnalyzeHandler(cfg.Market, store)
	rankHandler := handlers.NewRankHandler(cfg.Market)
	historyHandler := handlers.NewHistoryHandler(store)
	predictHandler := handlers.NewPredictHandler(predictClient)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"history":    store != nil,
			"prediction": predictClient != nil,
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/analyze/compare", analyzeHandler.Compare)
		api.POST("/rank", rankHandler.Rank)

		api.GET("/markets", handlers.ListMarkets)

		api.GET("/analyses", historyHandler.List)
		api.GET("/analyses/:id", historyHandler.Get)
		api.GET("/analyses/:id/report", historyHandler.Report)

		api.POST("/predict", predictHandler.Predict)
	}

	serveStatic(router, cfg.Server.StaticDir)

	port := cfg.Server.Port
	if env := os.Getenv("API_PORT"); env != "" {
		port = env
	}
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zap.L().Info("starting API server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	stopper := make(chan os.Signal, 1)
	signal.Notify(stopper, os.Interrupt, syscall.SIGTERM)
	<-stopper

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown failed", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("API_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// loadConfig reads CONFIG_PATH (default examples/config.yaml). A missing
// default file is not an error: the server runs on engine defaults.
func loadConfig() *config.Config {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if path == "" {
		path = "examples/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			zap.L().Info("no config file, using defaults", zap.String("path", path))
			return &config.Config{}
		}
		zap.L().Fatal("failed to load config", zap.String("path", path), zap.Error(err))
	}
	zap.L().Info("config loaded", zap.String("path", path), zap.String("market", cfg.Market.Name))
	return cfg
}

// serveStatic mounts the dashboard build output, if present, and routes
// unknown non-API paths to index.html for SPA routing.
func serveStatic(router *gin.Engine, staticDir string) {
	if staticDir == "" {
		staticDir = os.Getenv("STATIC_DIR")
	}
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err != nil {
		zap.L().Info("static directory not found, skipping", zap.String("dir", staticDir))
		return
	}

	router.Static("/assets", staticDir+"/assets")
	router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(staticDir + "/index.html")
	})
	zap.L().Info("serving static files", zap.String("dir", staticDir))
}
