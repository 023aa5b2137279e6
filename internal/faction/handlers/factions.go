package handlers

import (
	"log/slog"
	"net/http"

	"stations-server/internal/faction"
	"stations-server/internal/shared/response"
)

type FactionsHandler struct {
	service *faction.Service
}

func NewFactionsHandler(service *faction.Service) *FactionsHandler {
	return &FactionsHandler{service: service}
}

func (h *FactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "factions_list")
	logger.Debug("Faction catalogue requested")

	factions, err := h.service.List(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, factions)
}
