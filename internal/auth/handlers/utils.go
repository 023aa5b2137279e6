package handlers

import (
	"fmt"
	"net/http"

	"stations-server/internal/shared/config"
)

// redirectWithError redirects to frontend with error parameters
func redirectWithError(w http.ResponseWriter, r *http.Request, errorType string) {
	cfg := config.GlobalConfig
	errorURL := fmt.Sprintf("%s/auth/error?error=%s", cfg.Frontend.URL, errorType)

	http.Redirect(w, r, errorURL, http.StatusTemporaryRedirect)
}
