package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stations-server/internal/middleware"
	"stations-server/internal/player"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
)

type JoinHandler struct {
	service *player.Service
}

func NewJoinHandler(service *player.Service) *JoinHandler {
	return &JoinHandler{service: service}
}

type joinRequest struct {
	Faction string `json:"faction"`
}

func (h *JoinHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "join_faction")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	p, err := h.service.JoinFaction(r.Context(), claims.UserID, claims.Username, req.Faction)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}
