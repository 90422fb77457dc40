package wire

import (
	"cinix-booking/internal/adaptor"
	"cinix-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	// ==================== PROTECTED ROUTES (require user) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser())

		// GET /api/user/tickets - Ticket history, newest first
		r.Get("/api/user/tickets", ticketHandler.GetUserTickets)
	})
}
