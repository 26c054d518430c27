package router

import (
	"darshan/internal/handlers/event"
	"darshan/internal/handlers/museum"
	"darshan/internal/handlers/payment"
	"darshan/internal/handlers/ticket"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Museum  museum.Handler
	Event   event.Handler
	Ticket  ticket.Handler
	Payment payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Museum.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Ticket.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
