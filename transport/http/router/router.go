package router

import (
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/cleaning"
	"hotel/internal/handlers/consumable"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/handlers/employee"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Room       room.Handler
	Guest      guest.Handler
	Employee   employee.Handler
	Consumable consumable.Handler
	Booking    booking.Handler
	Cleaning   cleaning.Handler
	Dashboard  dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Consumable.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Cleaning.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
