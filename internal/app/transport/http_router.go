package transport

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/config"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Use(
		httptransport.RequestID(),
		httptransport.RequestLogger(slog.Default()),
		httptransport.Recoverer(slog.Default()),
		httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
	)

	router.Get("/health", httptransport.MakeHandlerFunc(
		endpts.Health,
		httptransport.DecodeNothing,
		httptransport.ResponseWithBody,
	))

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(render.SetContentType(render.ContentTypeJSON))

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.Search,
			httptransport.DecodeRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/locations", httptransport.MakeHandlerFunc(
			endpts.Locations,
			httptransport.DecodeQuery[dto.LocationQuery],
			httptransport.ResponseWithBody,
		))

		router.Post("/fx/convert", httptransport.MakeHandlerFunc(
			endpts.FXConvert,
			httptransport.DecodeRequest[dto.ConvertRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
