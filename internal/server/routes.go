package server

import (
	"log/slog"
	"net/http"
	"time"

	authHandlers "stations-server/internal/auth/handlers"
	"stations-server/internal/auth/providers"
	"stations-server/internal/faction"
	factionHandlers "stations-server/internal/faction/handlers"
	"stations-server/internal/middleware"
	"stations-server/internal/player"
	playerHandlers "stations-server/internal/player/handlers"
	serverHandlers "stations-server/internal/server/handlers"
	"stations-server/internal/station"
	stationHandlers "stations-server/internal/station/handlers"
	"stations-server/internal/store"
)

type Routes struct {
	store           store.Store
	factionService  *faction.Service
	playerService   *player.Service
	stationService  *station.Service
	discordProvider *providers.DiscordProvider
	oauthConfigured bool
	now             func() time.Time
	logger          *slog.Logger
}

func NewRoutes(
	store store.Store,
	factionService *faction.Service,
	playerService *player.Service,
	stationService *station.Service,
	discordProvider *providers.DiscordProvider,
	oauthConfigured bool,
	now func() time.Time,
	logger *slog.Logger,
) *Routes {
	return &Routes{
		store:           store,
		factionService:  factionService,
		playerService:   playerService,
		stationService:  stationService,
		discordProvider: discordProvider,
		oauthConfigured: oauthConfigured,
		now:             now,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.store)
	factionsHandler := factionHandlers.NewFactionsHandler(r.factionService)
	joinHandler := playerHandlers.NewJoinHandler(r.playerService)
	meHandler := playerHandlers.NewMeHandler(r.playerService)
	stationsHandler := stationHandlers.NewStationsHandler(r.stationService)
	membersHandler := stationHandlers.NewMembersHandler(r.stationService)
	resourcesHandler := stationHandlers.NewResourcesHandler(r.stationService)
	discordAuthHandler := authHandlers.NewDiscordAuthHandler(r.discordProvider, r.oauthConfigured)

	openHours := middleware.OpenHours(r.now)
	gated := func(h http.Handler) http.Handler {
		return openHours(middleware.JWTMiddleware(h))
	}

	// Health and auth stay reachable around the clock
	mux.Handle("GET /api/server/health", healthHandler)
	mux.HandleFunc("GET /auth/discord", discordAuthHandler.HandleAuth)
	mux.HandleFunc("GET /auth/discord/callback", discordAuthHandler.HandleCallback)
	mux.HandleFunc("POST /auth/logout", authHandlers.HandleLogout)

	// Player-facing endpoints, gated by the open-hours window
	mux.Handle("GET /api/factions", gated(http.HandlerFunc(factionsHandler.List)))
	mux.Handle("POST /api/factions/join", gated(joinHandler))
	mux.Handle("GET /api/players/me", gated(meHandler))

	mux.Handle("GET /api/stations", gated(http.HandlerFunc(stationsHandler.List)))
	mux.Handle("POST /api/stations", gated(http.HandlerFunc(stationsHandler.Create)))
	mux.Handle("GET /api/stations/{id}", gated(http.HandlerFunc(stationsHandler.Info)))
	mux.Handle("DELETE /api/stations/{id}", gated(http.HandlerFunc(stationsHandler.Delete)))
	mux.Handle("PUT /api/stations/{id}/type", gated(http.HandlerFunc(stationsHandler.SetType)))
	mux.Handle("PUT /api/stations/{id}/condition", gated(http.HandlerFunc(stationsHandler.SetCondition)))
	mux.Handle("PUT /api/stations/{id}/protection", gated(http.HandlerFunc(stationsHandler.SetProtection)))

	mux.Handle("GET /api/stations/{id}/members", gated(http.HandlerFunc(membersHandler.List)))
	mux.Handle("POST /api/stations/{id}/members", gated(http.HandlerFunc(membersHandler.Add)))
	mux.Handle("DELETE /api/stations/{id}/members/{userID}", gated(http.HandlerFunc(membersHandler.Remove)))

	mux.Handle("GET /api/stations/{id}/resources", gated(http.HandlerFunc(resourcesHandler.Show)))
	mux.Handle("POST /api/stations/{id}/resources/add", gated(http.HandlerFunc(resourcesHandler.Add)))
	mux.Handle("POST /api/stations/{id}/resources/take", gated(http.HandlerFunc(resourcesHandler.Take)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health"},
		"gated_endpoints", []string{"/api/factions", "/api/players/me", "/api/stations"},
		"auth_endpoints", []string{"/auth/discord", "/auth/logout"},
	)

	return mux
}
