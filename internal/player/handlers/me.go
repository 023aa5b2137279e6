package handlers

import (
	"log/slog"
	"net/http"

	"stations-server/internal/middleware"
	"stations-server/internal/player"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
)

type MeHandler struct {
	service *player.Service
}

func NewMeHandler(service *player.Service) *MeHandler {
	return &MeHandler{service: service}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "me")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	p, err := h.service.WhoAmI(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	resp := map[string]interface{}{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"staff":    claims.Staff,
		"faction":  nil,
	}
	if p != nil {
		resp["faction"] = p.FactionKey
	}

	response.Success(w, http.StatusOK, resp)
}
