package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stations-server/internal/middleware"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
	"stations-server/internal/station"
)

type StationsHandler struct {
	service *station.Service
}

func NewStationsHandler(service *station.Service) *StationsHandler {
	return &StationsHandler{service: service}
}

type createStationRequest struct {
	StationID    string `json:"station_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	OwnerFaction string `json:"owner_faction"`
	MemberCount  int    `json:"member_count"`
}

type setTypeRequest struct {
	Type string `json:"type"`
}

type setConditionRequest struct {
	Condition int `json:"condition"`
}

type setProtectionRequest struct {
	Hours int `json:"hours"`
}

func (h *StationsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_list")
	logger.Debug("Station list requested")

	stations, err := h.service.List(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, stations)
}

func (h *StationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_create")

	var req createStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	created, err := h.service.Create(r.Context(), middleware.ActorFromContext(r), station.CreateInput{
		ID:                  req.StationID,
		Name:                req.Name,
		Type:                req.Type,
		OwnerFaction:        req.OwnerFaction,
		ReportedMemberCount: req.MemberCount,
	})
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, created)
}

func (h *StationsHandler) Info(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_info")

	snap, err := h.service.Info(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, snap)
}

func (h *StationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_delete")

	if err := h.service.Delete(r.Context(), middleware.ActorFromContext(r), r.PathValue("id")); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *StationsHandler) SetType(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_set_type")

	var req setTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	updated, err := h.service.SetType(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), req.Type)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, updated)
}

func (h *StationsHandler) SetCondition(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_set_condition")

	var req setConditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	updated, err := h.service.SetCondition(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), req.Condition)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, updated)
}

func (h *StationsHandler) SetProtection(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "stations_set_protection")

	var req setProtectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	updated, err := h.service.SetProtection(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), req.Hours)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, updated)
}
