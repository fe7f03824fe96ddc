package handler

import (
	"encoding/json"
	"net/http"
)

type GetCurrenciesResponse struct {
	Codes []string `json:"codes" example:"USD,EUR,JPY"`
}

// GetCurrencies godoc
// @Summary List tracked currencies
// @Description Currency codes the sync is filtered to; empty means every currency in the feed
// @Tags Sync
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GetCurrenciesResponse{
		Codes: h.service.TrackedCurrencies(),
	})
}
