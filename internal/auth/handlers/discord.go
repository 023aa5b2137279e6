package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"stations-server/internal/auth"
	"stations-server/internal/auth/providers"
	"stations-server/internal/shared/config"
	"stations-server/internal/shared/cookies"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
)

// DiscordAuthHandler runs the Discord OAuth flow with the identify
// scope. There is no account table behind this: the Discord user id is
// the identity, and the staff flag is resolved from configuration when
// the session token is minted.
type DiscordAuthHandler struct {
	provider     *providers.DiscordProvider
	isConfigured bool
}

func NewDiscordAuthHandler(provider *providers.DiscordProvider, isConfigured bool) *DiscordAuthHandler {
	return &DiscordAuthHandler{
		provider:     provider,
		isConfigured: isConfigured,
	}
}

func (h *DiscordAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "discord_oauth_init")

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External("Discord OAuth is not properly configured"))
		return
	}

	state, err := auth.GenerateOAuthState("discord", r.UserAgent())
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	url := h.provider.GetAuthURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *DiscordAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	errorParam := r.URL.Query().Get("error")

	logger := slog.With(
		"handler", "discord_oauth_callback",
		"user_agent", r.UserAgent(),
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	if errorParam != "" {
		logger.Warn("Discord OAuth authorization denied",
			"oauth_error", errorParam,
			"error_description", r.URL.Query().Get("error_description"))
		redirectWithError(w, r, "oauth_denied")
		return
	}

	if code == "" {
		logger.Error("Discord OAuth callback missing authorization code")
		redirectWithError(w, r, "oauth_error")
		return
	}

	if err := auth.ValidateOAuthState(state, "discord", r.UserAgent()); err != nil {
		logger.Error("OAuth state validation failed", "error", err)
		redirectWithError(w, r, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange Discord authorization code", "error", err)
		redirectWithError(w, r, "oauth_error")
		return
	}

	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info from Discord", "error", err)
		redirectWithError(w, r, "oauth_error")
		return
	}

	cfg := config.GlobalConfig
	staff := cfg.IsStaffUser(userInfo.ID)

	userLogger := logger.With(
		"discord_user_id", userInfo.ID,
		"user_name", userInfo.Name,
		"staff", staff)

	jwtToken, err := auth.GenerateJWT(userInfo.ID, userInfo.Name, staff)
	if err != nil {
		userLogger.Error("Failed to generate JWT token", "error", err)
		redirectWithError(w, r, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, jwtToken)

	userLogger.Info("Discord OAuth authentication successful")

	successURL := fmt.Sprintf("%s/auth/callback?success=true", cfg.Frontend.URL)
	http.Redirect(w, r, successURL, http.StatusTemporaryRedirect)
}
