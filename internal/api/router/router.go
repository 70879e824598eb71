package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"storefront/internal/api"
	m "storefront/internal/api/middleware"
	"storefront/internal/pkg/metrics"
)

func SetupRouter(server *api.Server, logger zerolog.Logger, serverMetrics *metrics.ServerMetrics) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger, serverMetrics))
	r.Use(middleware.Recoverer)

	r.Method("GET", "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.PlaceOrder)
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/{orderNumber}", server.OrderHandler.GetOrder)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{productID}", server.ProductHandler.GetProduct)
		})
		r.Get("/currencies", server.CurrencyHandler.ListCurrencies)
	})

	return r
}
