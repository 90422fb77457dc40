package wire

import (
	"cinix-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/studios/{studioId}/seats - Seat layout grouped by row
	r.Get("/api/studios/{studioId}/seats", bookingHandler.GetSeatLayout)

	// ==================== BOOKING SESSION ROUTES ====================
	r.Route("/api/booking/sessions", func(r chi.Router) {
		// POST /api/booking/sessions - Open the seat selection screen for a studio
		r.Post("/", bookingHandler.OpenSession)

		r.Route("/{sessionId}", func(r chi.Router) {
			r.Get("/", bookingHandler.GetSession)
			r.Delete("/", bookingHandler.CloseSession)

			r.Post("/seats/{seatNumber}/toggle", bookingHandler.ToggleSeat)
			r.Post("/reload", bookingHandler.ReloadSession)

			// POST .../pay - Submit selection, returns payment redirect_url
			r.Post("/pay", bookingHandler.SubmitSession)
		})
	})
}
