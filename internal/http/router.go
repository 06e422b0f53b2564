package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khawla-14/markyticket/internal/http/auth"
	"github.com/khawla-14/markyticket/internal/http/importcsv"
	"github.com/khawla-14/markyticket/internal/http/ticket"
	"github.com/khawla-14/markyticket/internal/http/wallet"
	"github.com/khawla-14/markyticket/internal/metrics"
)

type Options struct {
	AllowedOrigins []string
	Auth           *auth.Authenticator
	Idempotency    func(http.Handler) http.Handler
	Metrics        *metrics.Collector
	Gatherer       prometheus.Gatherer
}

func New(
	opts Options,
	ticketsV1 *ticket.Handler,
	walletV1 *wallet.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(opts.Metrics.Instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-access-token", "Idempotency-Key"},
		AllowCredentials: true,
	}))

	router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(opts.Auth.Middleware)

		r.Route("/tickets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ticketsV1.Routes(r, opts.Idempotency)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Route("/import", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin))
				importV1.Routes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				walletV1.Routes(r, opts.Idempotency)
			})
		})
	})

	return router
}
