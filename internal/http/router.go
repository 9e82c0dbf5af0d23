package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/xyloai/xylo/internal/http/decision"
	"github.com/xyloai/xylo/internal/http/invoice"
)

func New(
	invoicesV1 *invoice.Handler,
	decisionsV1 *decision.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/invoices", func(r chi.Router) {
			invoicesV1.Routes(r)
		})

		r.Route("/decisions", func(r chi.Router) {
			decisionsV1.Routes(r)
		})
	})

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
