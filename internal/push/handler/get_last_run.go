package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ratepush/internal/domain"
)

type GetLastRunResponse struct {
	RunID       string    `json:"run_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	StartedAt   time.Time `json:"started_at" example:"2025-09-29T07:00:00Z"`
	FinishedAt  time.Time `json:"finished_at" example:"2025-09-29T07:00:03Z"`
	FeedDate    string    `json:"feed_date" example:"2025-09-29"`
	Created     int       `json:"created" example:"0"`
	Updated     int       `json:"updated" example:"1"`
	Failed      int       `json:"failed" example:"0"`
	FailedCodes []string  `json:"failed_codes,omitempty"`
	Status      string    `json:"status" example:"succeeded"`
	Error       string    `json:"error,omitempty"`
}

// GetLastRun godoc
// @Summary Last sync run report
// @Description Report of the most recent sync run
// @Tags Sync
// @Produce json
// @Success 200 {object} GetLastRunResponse
// @Failure 404 {object} errorResponse "no runs executed yet"
// @Router /sync/last [get]
func (h *Handler) GetLastRun(w http.ResponseWriter, _ *http.Request) {
	report, err := h.service.LastRun()
	if err != nil {
		if errors.Is(err, domain.ErrNoRunsYet) {
			writeError(w, http.StatusNotFound, "no runs executed yet")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read last run")
		return
	}

	res := GetLastRunResponse{
		RunID:       report.RunID,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		FeedDate:    report.FeedDate,
		Created:     report.Created,
		Updated:     report.Updated,
		Failed:      report.Failed,
		FailedCodes: report.FailedCodes,
		Status:      string(report.Status),
		Error:       report.Err,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
