package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"stations-server/internal/shared/response"
	"stations-server/internal/store"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
}

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(store store.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	storeStatus := "disconnected"
	if err := h.store.Ping(r.Context()); err == nil {
		storeStatus = "connected"
	} else {
		logger.Warn("Store ping failed", "error", err)
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Store:     storeStatus,
	}

	response.Success(w, http.StatusOK, resp)
}
