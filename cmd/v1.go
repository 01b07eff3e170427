package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/tcp_snm/raffle/middleware"
)

func NewV1Router() *chi.Mux {
	v1 := chi.NewRouter()

	// configure all endpoints
	v1.Get("/healthz", middleware.AdminMiddleware(apiConfig.HandlerReadiness))

	// auth layer
	v1.Post("/auth/login", apiConfig.HandlerLogin)

	// prizes layer
	// public reads, the participant page lists prizes too
	v1.Get("/prizes", apiConfig.HandlerListPrizes)
	v1.Get("/prizes/{id}", apiConfig.HandlerGetPrize)
	// admin writes
	v1.Post("/prizes", middleware.AdminMiddleware(apiConfig.HandlerCreatePrize))
	v1.Put("/prizes/{id}", middleware.AdminMiddleware(apiConfig.HandlerUpdatePrize))
	v1.Delete("/prizes/{id}", middleware.AdminMiddleware(apiConfig.HandlerDeletePrize))
	v1.Post("/prizes/{id}/publish-now", middleware.AdminMiddleware(apiConfig.HandlerPublishNow))

	// entries layer
	v1.Get("/entries", middleware.AdminMiddleware(apiConfig.HandlerListEntries))
	v1.Get("/entries/count", middleware.AdminMiddleware(apiConfig.HandlerCountEntries))
	v1.Post("/entries", middleware.AdminMiddleware(apiConfig.HandlerCreateEntry))
	v1.Put("/entries/upsert", middleware.AdminMiddleware(apiConfig.HandlerUpsertEntry))
	v1.Post("/entries/bulk", middleware.AdminMiddleware(apiConfig.HandlerBulkImport))

	// lottery layer
	v1.Post("/lottery/check", apiConfig.HandlerLotteryCheck)
	v1.Get("/lottery/status/{prizeId}", middleware.AdminMiddleware(apiConfig.HandlerPublishStatus))

	return v1
}
