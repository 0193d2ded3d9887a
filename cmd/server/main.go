// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pramou/campaign-backend/internal/app"
	"github.com/pramou/campaign-backend/internal/auth"
	"github.com/pramou/campaign-backend/internal/cache"
	"github.com/pramou/campaign-backend/internal/config"
	"github.com/pramou/campaign-backend/internal/db"
	"github.com/pramou/campaign-backend/internal/handler"
	"github.com/pramou/campaign-backend/internal/repository"
	"github.com/pramou/campaign-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	conn, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer conn.Close()

	migrator, err := app.NewMigrator(conn, "migrations", logger)
	if err != nil {
		logger.Fatal("migrator init failed", zap.Error(err))
	}
	if err := migrator.Run(context.Background()); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// Redis is optional: without it the service reads straight from
	// postgres.
	var campaignCache cache.Store
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewClient(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		defer rdb.Close()
		campaignCache = cache.NewCampaignCache(rdb, cfg.CacheTTL)
	}

	campaignRepo := &repository.CampaignRepository{DB: conn}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		Cache:        campaignCache,
		Logger:       logger,
	}
	campaignHandler := &handler.CampaignHandler{
		Service: campaignService,
		Logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		if cfg.GoogleClientID != "" {
			verifier := auth.NewGoogleVerifier(cfg.GoogleClientID)
			r.Use(auth.Middleware(verifier, auth.NewTokenCache(), logger))
		} else {
			logger.Warn("GOOGLE_CLIENT_ID not set, API is unauthenticated")
		}
		campaignHandler.Routes(r)
	})

	log.Println("🚀 Server running on", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
