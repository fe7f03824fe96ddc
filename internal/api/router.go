package api

import (
	_ "ratepush/docs"
	"ratepush/internal/push/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(syncHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Post("/api/v1/sync", syncHandler.TriggerSync)
	router.Get("/api/v1/sync/last", syncHandler.GetLastRun)
	router.Get("/api/v1/currencies", syncHandler.GetCurrencies)
	return router
}
