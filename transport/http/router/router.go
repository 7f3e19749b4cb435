package router

import (
	"salon/internal/handlers/availability"
	"salon/internal/handlers/booking"
	"salon/internal/handlers/catalog"
	"salon/internal/handlers/draft"
	"salon/internal/handlers/health"
	"salon/internal/handlers/upload"
	"salon/internal/handlers/webhook"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Catalog      catalog.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Webhook      webhook.Handler
	Upload       upload.Handler
	Draft        draft.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Webhook.Router(routerGroup)
		r.DomainHandlers.Upload.Router(routerGroup)
		r.DomainHandlers.Draft.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
