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

type MembersHandler struct {
	service *station.Service
}

func NewMembersHandler(service *station.Service) *MembersHandler {
	return &MembersHandler{service: service}
}

type addMemberRequest struct {
	UserID string `json:"user_id"`
}

func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "members_list")

	members, err := h.service.ListMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if members == nil {
		members = []string{}
	}

	response.Success(w, http.StatusOK, members)
}

func (h *MembersHandler) Add(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "members_add")

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}
	if req.UserID == "" {
		response.Error(w, r, logger, errors.Validation("user_id must not be empty"))
		return
	}

	if err := h.service.AddMember(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), req.UserID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"status": "member_added"})
}

func (h *MembersHandler) Remove(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "members_remove")

	userID := r.PathValue("userID")
	if userID == "" {
		response.Error(w, r, logger, errors.Validation("user_id must not be empty"))
		return
	}

	if err := h.service.RemoveMember(r.Context(), middleware.ActorFromContext(r), r.PathValue("id"), userID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"status": "member_removed"})
}
