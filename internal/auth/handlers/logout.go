package handlers

import (
	"log/slog"
	"net/http"

	"stations-server/internal/shared/cookies"
	"stations-server/internal/shared/response"
)

func HandleLogout(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout")

	cookies.ClearAuthCookie(w)
	logger.Debug("Auth cookie cleared")

	response.Success(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
