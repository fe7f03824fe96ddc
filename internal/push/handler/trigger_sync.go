package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ratepush/internal/domain"

	"github.com/sirupsen/logrus"
)

type TriggerSyncResponse struct {
	RunID string `json:"run_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
}

// TriggerSync godoc
// @Summary Trigger a sync run
// @Description Start an asynchronous feed-to-Notion sync run
// @Tags Sync
// @Produce json
// @Success 202 {object} TriggerSyncResponse
// @Failure 409 {object} errorResponse "sync already in progress"
// @Failure 500 {object} errorResponse
// @Router /sync [post]
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	runID, err := h.service.TriggerSync()
	if err != nil {
		if errors.Is(err, domain.ErrSyncInProgress) {
			writeError(w, http.StatusConflict, "sync already in progress")
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "TriggerSync"}).Error("sync wasn't triggered")
		writeError(w, http.StatusInternalServerError, "failed to trigger sync")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(TriggerSyncResponse{
		RunID: runID.String(),
	})
}
