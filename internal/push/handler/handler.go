package handler

import (
	"encoding/json"
	"net/http"

	"ratepush/internal/domain"

	"github.com/google/uuid"
)

type SyncService interface {
	TriggerSync() (uuid.UUID, error)
	LastRun() (domain.RunReport, error)
	TrackedCurrencies() []string
}

type Handler struct {
	service SyncService
}

func NewSyncHandler(service SyncService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}
