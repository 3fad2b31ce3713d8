package router

import (
	"roombooking/internal/handlers/auth"
	"roombooking/internal/handlers/booking"
	"roombooking/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the client routes at the root: the booking view on "/",
// the room catalogue, sign-in and the user's own bookings.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Auth.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
