package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stations-server/internal/domain"
	"stations-server/internal/middleware"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
	"stations-server/internal/station"
)

type ResourcesHandler struct {
	service *station.Service
}

func NewResourcesHandler(service *station.Service) *ResourcesHandler {
	return &ResourcesHandler{service: service}
}

type resourceRequest struct {
	Zone   string `json:"zone"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

type resourceResponse struct {
	StationID string `json:"station_id"`
	Zone      string `json:"zone"`
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
}

func (h *ResourcesHandler) Show(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "resources_show")

	ledger, err := h.service.ShowResources(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, ledger)
}

func (h *ResourcesHandler) Add(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "resources_add")

	var req resourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	quantity, err := h.service.AddResource(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), req.Zone, req.Item, req.Amount)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, resourceResponse{
		StationID: domain.NormalizeStationID(r.PathValue("id")),
		Zone:      domain.NormalizeZone(req.Zone),
		Item:      domain.NormalizeItem(req.Item),
		Quantity:  quantity,
	})
}

func (h *ResourcesHandler) Take(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "resources_take")

	var req resourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	quantity, err := h.service.TakeResource(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), req.Zone, req.Item, req.Amount)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, resourceResponse{
		StationID: domain.NormalizeStationID(r.PathValue("id")),
		Zone:      domain.NormalizeZone(req.Zone),
		Item:      domain.NormalizeItem(req.Item),
		Quantity:  quantity,
	})
}
