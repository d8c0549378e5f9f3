package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ruimartins/billow/internal/http/auth"
	"github.com/ruimartins/billow/internal/http/document"
	"github.com/ruimartins/billow/internal/http/export"
	"github.com/ruimartins/billow/internal/http/importcsv"
	"github.com/ruimartins/billow/internal/http/status"
)

func New(
	documentsV1 *document.Handler,
	statusesV1 *status.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if authSecret != "" {
			r.Use(auth.Middleware(authSecret))
		}

		r.Route("/documents/{type}", func(r chi.Router) {
			documentsV1.Routes(r)
			statusesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
