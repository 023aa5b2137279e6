package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"stations-server/internal/auth/providers"
	"stations-server/internal/faction"
	"stations-server/internal/middleware"
	"stations-server/internal/player"
	"stations-server/internal/server"
	"stations-server/internal/shared/config"
	"stations-server/internal/shared/database"
	"stations-server/internal/shared/logger"
	"stations-server/internal/shared/redis"
	"stations-server/internal/station"
	"stations-server/internal/store"
	"stations-server/internal/store/jsonfile"
	"stations-server/internal/store/postgres"

	"golang.org/x/oauth2"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()
	cfg := config.GlobalConfig

	log := slog.With("component", "main")
	log.Info("Starting stations server",
		"environment", cfg.Server.Environment,
		"store_backend", cfg.Store.Backend)

	st, err := openStore(cfg, log)
	if err != nil {
		log.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("Failed to close store", "error", err)
		}
	}()

	redisClient, err := redis.Connect()
	if err != nil {
		// The snapshot cache is optional; run without it rather than die
		log.Warn("Redis unavailable, continuing without snapshot cache", "error", err)
		redisClient = nil
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", "error", err)
		}
	}()

	factionService := faction.NewService(st, slog.Default())
	playerService := player.NewService(st, factionService, slog.Default())
	stationCache := station.NewCache(redisClient, slog.Default())
	stationService := station.NewService(st, stationCache, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := factionService.Seed(ctx); err != nil {
		cancel()
		log.Error("Failed to seed faction catalogue", "error", err)
		os.Exit(1)
	}
	cancel()

	discordProvider := providers.NewDiscordProvider(&oauth2.Config{
		ClientID:     cfg.OAuth.Discord.ClientID,
		ClientSecret: cfg.OAuth.Discord.ClientSecret,
		RedirectURL:  cfg.OAuth.Discord.RedirectURL,
		Scopes:       cfg.OAuth.Discord.Scopes,
		Endpoint:     providers.DiscordEndpoint,
	})

	routes := server.NewRoutes(
		st,
		factionService,
		playerService,
		stationService,
		discordProvider,
		cfg.DiscordOAuthConfigured(),
		time.Now,
		slog.Default(),
	)
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
		TrustProxy:        cfg.Server.Environment == "production",
	})
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Info("Server listening", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("Server terminated", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case "jsonfile":
		log.Info("Using jsonfile store", "data_dir", cfg.Store.DataDir)
		return jsonfile.Open(cfg.Store.DataDir, slog.Default())
	default:
		db, err := database.Connect()
		if err != nil {
			return nil, err
		}

		log.Info("Running database migrations")
		if err := db.RunMigrations(); err != nil {
			return nil, err
		}

		return postgres.New(db, slog.Default()), nil
	}
}
