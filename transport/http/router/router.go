package router

import (
	_ "hostly/docs" //nolint:revive
	"hostly/internal/handlers/booking"
	"hostly/internal/handlers/health"
	"hostly/internal/handlers/invoice"
	"hostly/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health  health.Handler
	Booking booking.Handler
	Invoice invoice.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
}

// SetupRoutes mounts the public probes at the root and the API under /v1.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing, r.App.CORS(), r.App.RateLimit())

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.APIKey, r.Auth.Auth, r.Auth.RBAC)

		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
